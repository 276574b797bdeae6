// ABOUTME: Entry point for the BestChallenges API service
// ABOUTME: Provides the token-based auth HTTP API consumed by the frontend

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/palomiteras-org/BestChallenges/backend/cache"
	"github.com/palomiteras-org/BestChallenges/backend/config"
	"github.com/palomiteras-org/BestChallenges/backend/handlers"
	"github.com/palomiteras-org/BestChallenges/backend/logger"
	"github.com/palomiteras-org/BestChallenges/backend/services"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting BestChallenges API")
	slog.Info("CORS configured", "origins", cfg.CORSAllowedOrigins)

	users := services.NewInMemoryUserStore()
	tokens := services.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenExpireMinutes)*time.Minute)
	auth := services.NewAuthService(users, tokens)

	c := cache.New(time.Duration(cfg.DashboardTTL) * time.Second)
	h := handlers.NewHandler(cfg, c, auth)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: h.NewMux(tokens),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
