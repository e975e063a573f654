package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/webproshub/marketplace-gateway/internal/api"
	"github.com/webproshub/marketplace-gateway/internal/core/domain"
	"github.com/webproshub/marketplace-gateway/internal/core/service"
	"github.com/webproshub/marketplace-gateway/internal/infrastructure/adminapi"
	"github.com/webproshub/marketplace-gateway/internal/infrastructure/config"
	mongodb "github.com/webproshub/marketplace-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/webproshub/marketplace-gateway/internal/infrastructure/db/redis"
	authsignal "github.com/webproshub/marketplace-gateway/internal/infrastructure/signal"
	"github.com/webproshub/marketplace-gateway/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	sessions := service.NewSessionRegistry()
	profiles := redisdb.NewProfileCache(rdb, log)
	validator := adminapi.NewValidator(
		cfg.Admin.ValidateURL,
		time.Duration(cfg.Admin.ValidateTimeoutSeconds)*time.Second,
		log,
	)

	// Any admin API call site that sees an unauthorized session raises this
	// signal; the consumer evicts the token so the next admin-area request
	// redirects to login.
	bus := authsignal.NewBus(log)
	bus.OnFailure(func(ctx context.Context, f authsignal.AdminAuthFailure) {
		sessions.Delete(domain.KindAdmin, f.Token)
		profiles.Clear(ctx, domain.KindAdmin, f.Token)
	})
	bus.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, sessions, profiles, validator, bus, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("gateway started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
