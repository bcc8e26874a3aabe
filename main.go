package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tombraider-hub/domain/catalog"
	"tombraider-hub/domain/repository"
	"tombraider-hub/infrastructure/cache"
	youtubeclient "tombraider-hub/infrastructure/clients/youtube"
	"tombraider-hub/infrastructure/configuration"
	"tombraider-hub/infrastructure/logger"
	httpHandler "tombraider-hub/interfaces/http"
	"tombraider-hub/server"
	"tombraider-hub/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	cfg := configuration.C
	app := cfg.App

	youtubeClient := initiateYouTube(ctx, cfg.YouTube)

	videoCache := cache.NewMemoryCache(cfg.Cache.TTL)
	sweeper, err := cache.NewSweeper(videoCache, cfg.Cache.SweepSchedule)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cache sweeper not started")
	} else {
		g.Go(func() error {
			return sweeper.Run(ctx)
		})
	}

	registry := catalog.MustDefault()
	videoUseCase := usecase.NewVideoUseCase(registry, videoCache, youtubeClient, usecase.VideoOptions{
		CacheVersion: cfg.Cache.Version,
		ChannelID:    cfg.YouTube.ChannelID,
	})

	videoHandler := httpHandler.NewVideoHandler(videoUseCase)
	healthHandler := httpHandler.NewHealthHandler(cfg.Cache.Version)

	router := server.InitiateRouter(videoHandler, healthHandler, server.RouterOptions{
		AllowOrigins: cfg.Cors.AllowOrigins,
		AdminToken:   app.AdminToken,
	})

	port := app.Port
	logger.GetLogger().WithFields(map[string]interface{}{
		"port":          port,
		"tls":           app.TLSEnabled,
		"cacheTTL":      cfg.Cache.TTL.String(),
		"cacheVersion":  cfg.Cache.Version,
		"sweepSchedule": cfg.Cache.SweepSchedule,
	}).Info("Starting application")
	httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		if app.TLSEnabled {
			cert := app.TLSCertFile
			key := app.TLSKeyFile
			if cert == "" || key == "" {
				logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
			} else {
				logger.GetLogger().WithFields(map[string]interface{}{"cert": cert, "key": key}).Info("Serving HTTPS")
				if err := httpServer.ListenAndServeTLS(cert, key); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.GetLogger().WithField("error", err).Error("HTTP server shutdown failed")
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
	logger.GetLogger().Info("Application stopped")
}

// initiateYouTube returns nil when no usable API key is configured. Cached
// categories are still served; misses report a configuration error.
func initiateYouTube(ctx context.Context, cfg configuration.YouTube) repository.IYouTube {
	if !cfg.HasAPIKey() {
		logger.GetLogger().Warn("YouTube API key not configured - only cached data will be served")
		return nil
	}
	client, err := youtubeclient.NewYouTubeClient(ctx, &youtubeclient.Config{
		APIKey:         cfg.APIKey,
		RequestTimeout: cfg.RequestTimeout,
		Endpoint:       cfg.Endpoint,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to initialize YouTube client - only cached data will be served")
		return nil
	}
	logger.GetLogger().WithField("channelIdSet", cfg.ChannelID != "").Info("YouTube client initialized")
	return client
}
