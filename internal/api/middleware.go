package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"nicaris/backoffice/internal/models"
)

const userContextKey = "user"

// RequireSession rejects requests carrying no valid session cookie and
// binds the signed-in user into the request context.
func (h *Handler) RequireSession(c *gin.Context) {
	user, err := h.sessions.Get(c.Request)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
		return
	}
	c.Set(userContextKey, user)
	c.Next()
}

// RequireRole gates a route to the given roles. Runs after RequireSession.
func (h *Handler) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		h.logger.WithFields(logrus.Fields{
			"user": user.ID,
			"role": user.Role,
			"path": c.FullPath(),
		}).Warn("Role denied for route")
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acceso denegado"})
	}
}

// currentUser returns the session user bound by RequireSession.
func currentUser(c *gin.Context) *models.Session {
	user, _ := c.Get(userContextKey)
	if s, ok := user.(*models.Session); ok {
		return s
	}
	return &models.Session{}
}
