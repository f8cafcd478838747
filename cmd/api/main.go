package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/ubereats-api/internal/config"
	dbpkg "github.com/BruksfildServices01/ubereats-api/internal/db"
	"github.com/BruksfildServices01/ubereats-api/internal/httperr"
	"github.com/BruksfildServices01/ubereats-api/internal/infra/cache"
	"github.com/BruksfildServices01/ubereats-api/internal/routes"
)

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	httperr.ExposeInternal(cfg.ExposeErrors)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	store, err := dbpkg.Open(startCtx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	log.Info().Str("driver", string(store.Driver)).Msg("database connected")

	var (
		kv          cache.KV
		redisClient *redis.Client
	)
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, continuing without cache")
		} else {
			kv = cache.NewRedisKV(redisClient)
			log.Info().Msg("restaurant cache enabled")
		}
	}

	r := routes.NewEngine(cfg)
	routes.RegisterRoutes(r, store, cfg, kv)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Environment).Msg("server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("database close failed")
	}

	log.Info().Msg("stopped")
}
