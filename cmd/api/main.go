package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/project-relay/config"
	"github.com/GoSim-25-26J-441/project-relay/internal/bootstrap"
	"github.com/GoSim-25-26J-441/project-relay/internal/logging"
	"github.com/GoSim-25-26J-441/project-relay/internal/projects/appwrite"
)

const serviceName = "project-relay"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(serviceName, "error", os.Stderr).Error("load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(serviceName, cfg.App.LogLevel, os.Stderr)
	bootstrap.SetGinMode(cfg.App.Environment)

	store := appwrite.NewClient(
		cfg.Appwrite.Endpoint,
		cfg.Appwrite.Timeout,
		appwrite.WithRateLimit(cfg.Appwrite.RateLimit, cfg.Appwrite.RateBurst),
	)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Store:          store,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr, "appwrite_endpoint", cfg.Appwrite.Endpoint)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("server exited")
}
