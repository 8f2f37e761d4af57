package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"nicaris/backoffice/config"
	"nicaris/backoffice/internal/api"
	"nicaris/backoffice/internal/auth"
	"nicaris/backoffice/internal/documents"
	"nicaris/backoffice/internal/listing"
	"nicaris/backoffice/internal/messages"
	"nicaris/backoffice/internal/ranking"
	"nicaris/backoffice/internal/session"
	"nicaris/backoffice/internal/sheet"
	"nicaris/backoffice/internal/submit"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if err := config.LoadFAQConfig(); err != nil {
		logger.WithError(err).Fatal("Failed to load FAQ configuration")
	}

	directory, err := auth.LoadDirectory(cfg.Auth.UsersFile, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load credential directory")
	}

	timeout := time.Duration(cfg.Sheet.TimeoutSeconds) * time.Second
	media := sheet.MediaConfig{
		URLTemplate: cfg.Media.URLTemplate,
		APIKey:      cfg.Media.APIKey,
	}

	listingSource, err := sheet.NewSource(cfg.Sheet.Mode, cfg.Sheet.ListingURL, sheet.PropertyColumns, timeout, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build listing source")
	}
	rankingSource, err := sheet.NewSource(cfg.Sheet.Mode, cfg.Sheet.RankingURL, sheet.CaptadorColumns, timeout, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build ranking source")
	}

	decoder := sheet.NewDecoder(sheet.PropertyColumns, media, logger)
	captadorDecoder := sheet.NewDecoder(sheet.CaptadorColumns, media, logger)

	pipeline := listing.NewPipeline(listingSource, decoder, cfg.Listing.PageSize, logger)
	if err := pipeline.Refresh(context.Background()); err != nil {
		logger.WithError(err).Warn("Initial listing fetch failed, starting with an empty snapshot")
	}

	drafts, err := submit.NewDraftStore(cfg.Storage.DraftDBPath, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open draft store")
	}

	docs, err := documents.NewStore(cfg.Storage.DocumentDBPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open document store")
	}
	defer docs.Close()
	if err := docs.Seed(documents.DefaultDocuments()); err != nil {
		logger.WithError(err).Fatal("Failed to seed document store")
	}

	handler := api.NewHandler(api.Deps{
		Sessions:  session.NewStore(cfg.Session.Secret, cfg.Session.CookieName),
		Verifier:  directory,
		Pipeline:  pipeline,
		Resolver:  listing.NewResolver(listingSource, decoder, logger),
		Board:     ranking.NewBoard(rankingSource, captadorDecoder, logger),
		Submitter: submit.NewSubmitter(cfg.Sheet.SubmitURL, timeout, logger),
		Drafts:    drafts,
		Documents: docs,
		Messages:  messages.SeedStore(),
		Logger:    logger,
	})

	janitor := cron.New()
	ttl := time.Duration(cfg.Storage.DraftTTLDays) * 24 * time.Hour
	_, err = janitor.AddFunc(cfg.Storage.JanitorSchedule, func() {
		if _, err := drafts.PurgeOlderThan(ttl); err != nil {
			logger.WithError(err).Error("Draft purge failed")
		}
	})
	if err != nil {
		logger.WithError(err).Fatal("Invalid janitor schedule")
	}
	janitor.Start()
	defer janitor.Stop()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
