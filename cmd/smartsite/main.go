// Package main is the entry point for the SmartSite generation server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartsite/internal/ai"
	"smartsite/internal/cache"
	"smartsite/internal/config"
	"smartsite/internal/database"
	"smartsite/internal/generator"
	"smartsite/internal/handlers"
	"smartsite/internal/photos"
	"smartsite/internal/router"
	"smartsite/internal/scraper"
	"smartsite/internal/session"
	"smartsite/internal/storage"
	"smartsite/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache + session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize session store backed by Valkey.
	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	websiteStore := store.NewWebsiteStore(db)
	pageStore := store.NewPageStore(db)

	// S3-compatible object storage is optional. Without it, photo URLs
	// hotlink their source CDN instead of being mirrored.
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, photos will hotlink their source CDN")
	}

	// Initialize the AI provider registry with all configured providers.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"openai":  {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
		"gemini":  {APIKey: cfg.GeminiKey, Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL},
		"claude":  {APIKey: cfg.ClaudeKey, Model: cfg.ClaudeModel, BaseURL: cfg.ClaudeBaseURL},
		"mistral": {APIKey: cfg.MistralKey, Model: cfg.MistralModel, BaseURL: cfg.MistralBaseURL},
	})

	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)

	// Reference content extraction, cached in Valkey so retries against
	// the same URL do not re-fetch the site.
	extractor := cache.NewScrapeCache(valkeyClient, scraper.NewHTTPExtractor(), cache.DefaultScrapeTTL)

	// Photo search is optional. Without a Pexels key the pipeline leaves
	// image keywords unresolved.
	var enricher *generator.ImageEnricher
	if cfg.PexelsKey != "" {
		photoClient := photos.NewClient(cfg.PexelsKey, cfg.PexelsBaseURL)
		if storageClient != nil {
			enricher = generator.NewImageEnricher(photoClient, storageClient)
		} else {
			enricher = generator.NewImageEnricher(photoClient, nil)
		}
	} else {
		slog.Warn("pexels not configured, image keywords will not be resolved")
	}

	// The generation pipeline ties everything together.
	pipeline := generator.New(aiRegistry, aiRegistry, extractor, enricher, websiteStore, pageStore)

	// Create handler groups with their dependencies.
	authHandlers := handlers.NewAuth(sessionStore, userStore)
	websiteHandlers := handlers.NewWebsites(pipeline, websiteStore, pageStore)
	providerHandlers := handlers.NewProviders(aiRegistry)

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, authHandlers, websiteHandlers, providerHandlers)

	// Create the HTTP server with sensible timeouts.
	// WriteTimeout must accommodate the generate endpoint, which waits on
	// one LLM completion plus photo lookups (typically 10-60s).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
