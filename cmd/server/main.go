package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wordweaver-ai/wordweaver/internal/api"
	"github.com/wordweaver-ai/wordweaver/internal/infra/config"
	"github.com/wordweaver-ai/wordweaver/internal/infra/httpclient"
	"github.com/wordweaver-ai/wordweaver/internal/infra/limiter"
	"github.com/wordweaver-ai/wordweaver/internal/infra/logger"
	"github.com/wordweaver-ai/wordweaver/internal/service/completion"
	"github.com/wordweaver-ai/wordweaver/internal/service/orchestrator"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Init logger
	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.Provider.APIKey == "" {
		zapLogger.Warn("GROQ_API_KEY is not set, generation requests will fail")
	}

	// Init HTTP client
	httpClient := httpclient.New(httpclient.Options{
		Timeout: time.Duration(cfg.HTTPClient.TimeoutSeconds) * time.Second,
		Logger:  zapLogger,
	})

	// Init limiter
	lim := limiter.New(cfg.Limiter.MaxConcurrent, cfg.Limiter.RatePerSecond)

	// Init services
	completionSvc := completion.New(cfg.Provider.APIKey, cfg.Provider.BaseURL, cfg.Provider.Model, httpClient, zapLogger)

	// Init orchestrator
	orch := orchestrator.New(completionSvc, lim, zapLogger)

	// Init router
	router := api.NewRouter(orch, zapLogger, api.Options{AllowOrigins: cfg.Server.AllowOrigins})

	// Create server
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	// Start server
	go func() {
		zapLogger.Info("starting server",
			"addr", cfg.Server.Addr,
			"model", completionSvc.Model(),
			"limiter", lim.Enabled(),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown", "error", err)
	}
	zapLogger.Info("server stopped")
}
