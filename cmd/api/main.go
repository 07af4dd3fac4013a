package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-sirius-backend/config"
	_ "go-sirius-backend/docs" // Important for Swagger
	v1 "go-sirius-backend/internal/delivery/http/v1"
	"go-sirius-backend/internal/usecase"
	"go-sirius-backend/pkg/assist"
	"go-sirius-backend/pkg/i18n"
	"go-sirius-backend/pkg/logger"
	"go-sirius-backend/pkg/mail"
	"go-sirius-backend/pkg/redis"
	"go-sirius-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Sirius Semiconductors Site API
// @version         1.0
// @description     Backend for the Sirius Semiconductors marketing site: contact form delivery and writing assistant.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting sirius site backend", "port", cfg.Port)

	// 3. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory store", "error", err)
	}
	defer redis.Close()

	// 4. Register custom validators on gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 5. Setup Localization
	translator, err := i18n.New()
	if err != nil {
		logger.Log.Error("Failed to load locale bundles", "error", err)
		os.Exit(1)
	}

	// 6. Setup Mail Delivery
	mailer := mail.NewGmailSender(cfg)
	if !mailer.IsConfigured() {
		logger.Log.Warn("Mail relay not fully configured - contact form delivery will be refused")
	}

	// 7. Setup Writing Assistant (optional)
	var improver assist.Improver
	if cfg.GeminiAPIKey != "" {
		gemini, err := assist.NewGeminiImprover(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log.Warn("Writing assistant unavailable", "error", err)
		} else {
			improver = gemini
		}
	} else {
		logger.Log.Warn("GEMINI_API_KEY not set - writing assistant disabled")
	}

	// 8. Setup UseCases
	contactUC := usecase.NewContactUsecase(mailer)
	assistUC := usecase.NewAssistUsecase(improver)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:  contactUC,
		AssistUC:   assistUC,
		Translator: translator,
		Config:     cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
