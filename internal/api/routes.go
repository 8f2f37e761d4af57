package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nicaris/backoffice/internal/models"
)

// SetupRoutes mounts the JSON API. Everything except login sits behind the
// session middleware; the documents route additionally filters by role
// inside the store.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.POST("/login", handler.Login)

		authed := api.Group("", handler.RequireSession)
		{
			authed.POST("/logout", handler.Logout)
			authed.GET("/session", handler.GetSession)
			authed.GET("/nav", handler.GetNav)

			authed.GET("/dashboard/stats", handler.GetDashboardStats)

			authed.GET("/properties", handler.GetProperties)
			authed.GET("/properties/draft", handler.GetDraft)
			authed.POST("/properties/draft", handler.SaveDraft)
			authed.GET("/properties/:id", handler.GetProperty)
			authed.POST("/properties",
				handler.RequireRole(models.RoleAdmin, models.RoleManager, models.RoleCaptador),
				handler.CreateProperty)

			authed.GET("/captadores", handler.GetCaptadores)
			authed.GET("/ranking", handler.GetRanking)
			authed.GET("/documents", handler.GetDocuments)
			authed.GET("/faq", handler.GetFAQs)

			authed.GET("/messages", handler.GetContacts)
			authed.GET("/messages/:contact", handler.GetThread)
			authed.POST("/messages/:contact", handler.SendMessage)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Página no encontrada"})
	})
}
