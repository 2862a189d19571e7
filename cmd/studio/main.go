package main

import (
	"log"
	"log/slog"

	"github.com/jshotsmedia/studio/internal/assistant"
	anthropicchat "github.com/jshotsmedia/studio/internal/assistant/anthropic"
	ollamachat "github.com/jshotsmedia/studio/internal/assistant/ollama"
	"github.com/jshotsmedia/studio/internal/config"
	"github.com/jshotsmedia/studio/internal/db"
	"github.com/jshotsmedia/studio/internal/gate"
	"github.com/jshotsmedia/studio/internal/logging"
	"github.com/jshotsmedia/studio/internal/mediastore/local"
	"github.com/jshotsmedia/studio/internal/platform"
	"github.com/jshotsmedia/studio/internal/service"
	"github.com/jshotsmedia/studio/internal/store"
	"github.com/jshotsmedia/studio/internal/web"
	"github.com/jshotsmedia/studio/internal/web/templates"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	media, err := local.NewLocalMediaStore(cfg.MediaPath)
	if err != nil {
		logger.Error("failed to initialize media store", "error", err)
		return
	}

	bridge := assistant.NewBridge(newResponder(cfg, logger), logger)

	studioService := service.NewStudioService(
		store.NewRosterStore(database),
		store.NewCompanyStore(database),
		store.NewBoardStore(database),
		store.NewReviewStore(database),
		media,
		logger,
	)
	server := web.NewServer(web.Options{
		Studio:    studioService,
		Booking:   service.NewBookingService(cfg.BookingDelay, logger),
		Gallery:   service.NewGalleryService(store.NewGalleryStore(database), media, gate.NewFoldingCase(cfg.GalleryPIN), logger),
		Chat:      service.NewChatService(store.NewChatStore(database), bridge),
		Bridge:    bridge,
		Media:     media,
		AdminGate: gate.New(cfg.AdminPIN),
		Install:   platform.NewInstallPrompt(),
		SiteURL:   cfg.SiteURL,
		Templates: templates.FS,
		Logger:    logger,
	})

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newResponder(cfg *config.Config, logger *slog.Logger) assistant.Responder {
	switch cfg.ChatBackend {
	case "ollama":
		logger.Info("using Ollama chat backend", "model", cfg.OllamaModel)
		return ollamachat.NewOllamaResponder(cfg.OllamaHost, cfg.OllamaModel)
	default:
		if cfg.AnthropicAPIKey == "" {
			logger.Warn("ANTHROPIC_API_KEY is empty; assistant replies will fall back")
		}
		logger.Info("using Anthropic chat backend", "model", cfg.AnthropicModel)
		return anthropicchat.NewAnthropicResponder(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	}
}
