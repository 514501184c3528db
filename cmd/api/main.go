// ABOUTME: Main entry point for the Essential Feed API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"essential-feed-api/api"
	"essential-feed-api/api/handlers"
	"essential-feed-api/api/middleware"
	"essential-feed-api/core/feed"
	"essential-feed-api/core/interfaces"
	stdhttp "essential-feed-api/infrastructure/http/standard"
	stdlogger "essential-feed-api/infrastructure/logger/standard"
	"essential-feed-api/infrastructure/store/backend"
	"essential-feed-api/pkg/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run wires the server and blocks until shutdown. Errors are returned so
// deferred closers run before the process exits.
func run() error {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := stdlogger.NewLogger(stdlogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	logger.Info("Starting Essential Feed API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"feed_url":   cfg.Feed.URL,
		"store_type": cfg.Store.Type,
		"policy":     cfg.Feed.DecodePolicy,
	})

	store, err := backend.Open(cfg.Store)
	if err != nil {
		logger.Error("Failed to open snapshot store", map[string]interface{}{
			"store_type": cfg.Store.Type,
			"error":      err.Error(),
		})
		return err
	}
	defer store.Close()

	// Outgoing feed requests are logged with the request ID of the API call
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Feed.Timeout(),
		stdhttp.WithTransport(&middleware.LoggingRoundTripper{
			Transport: http.DefaultTransport,
			Logger:    logger,
		}),
	)

	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Store:      store,
		Logger:     logger,
	}

	policy, err := feed.ParseDecodePolicy(cfg.Feed.DecodePolicy)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	loader := feed.NewRemoteFeedLoader(cfg.Feed.URL, deps.HTTPClient,
		feed.WithDecodePolicy(policy),
		feed.WithLogger(deps.Logger),
	)

	var limiterOpts []middleware.RateLimiterOption
	if cfg.Server.TrustProxyHeaders {
		limiterOpts = append(limiterOpts, middleware.WithTrustedProxyHeaders())
	}
	limiter := middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst, limiterOpts...)
	stopEviction := make(chan struct{})
	limiter.StartEviction(time.Minute, stopEviction)
	defer close(stopEviction)

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:  deps.Logger,
		Limiter: limiter,
	})

	feedHandler := handlers.NewFeedHandler(loader, loader.URL(), deps.Store, deps.Logger)
	feedHandler.RegisterRoutes(humaAPI)

	errorLog := logger.Writer()
	defer errorLog.Close()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Feed.Timeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     log.New(errorLog, "", 0),
	}

	// Start server in a goroutine
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Server stopped", nil)
	return nil
}

func init() {
	fmt.Println(`
    ______                     __  _       __   ______              __
   / ____/____________  ____  / /_(_)___ _/ /  / ____/__  ___  ____/ /
  / __/ / ___/ ___/ _ \/ __ \/ __/ / __ '/ /  / /_  / _ \/ _ \/ __  /
 / /___(__  |__  )  __/ / / / /_/ / /_/ / /  / __/ /  __/  __/ /_/ /
/_____/____/____/\___/_/ /_/\__/_/\__,_/_/  /_/    \___/\___/\__,_/
	`)
}
