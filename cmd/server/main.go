package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"employees/internal/config"
	"employees/internal/server"
	"employees/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Local overrides; a missing .env file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server")
	}

	go func() {
		if err := srv.Run(); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
