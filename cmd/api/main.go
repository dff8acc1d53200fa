package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eadmin-africa/portal-api/internal/api"
	"github.com/eadmin-africa/portal-api/internal/core/service"
	"github.com/eadmin-africa/portal-api/internal/infrastructure/config"
	mongodb "github.com/eadmin-africa/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/eadmin-africa/portal-api/internal/infrastructure/db/redis"
	"github.com/eadmin-africa/portal-api/pkg/logger"
)

// @title        E-admin Portal API
// @version      1.0
// @description  Multi-portal administrative-services platform API.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer mongodb.Disconnect(client)

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := seedIfEmpty(ctx, mongodb.NewStoreAdmin(db)); err != nil {
		log.Fatal().Err(err).Msg("store seeding failed")
	}

	e, dispatcher := api.NewRouter(db, rdb, cfg, log)
	dispatcher.Start(ctx)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// seedIfEmpty applies the fixed seed dataset when the store holds no users,
// so a fresh deployment starts with the demo accounts and default campaigns.
func seedIfEmpty(ctx context.Context, store *mongodb.StoreAdmin) error {
	empty, err := store.Empty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	snap, err := service.DefaultSnapshot()
	if err != nil {
		return err
	}
	return store.ReplaceAll(ctx, snap)
}
