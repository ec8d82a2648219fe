package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Madhav-Gupta-28/noemie-shop-go/config"
	"github.com/Madhav-Gupta-28/noemie-shop-go/database"
	"github.com/Madhav-Gupta-28/noemie-shop-go/logger"
	"github.com/Madhav-Gupta-28/noemie-shop-go/metrics"
	"github.com/Madhav-Gupta-28/noemie-shop-go/middleware"
	"github.com/Madhav-Gupta-28/noemie-shop-go/server"
	"github.com/Madhav-Gupta-28/noemie-shop-go/shop"
	"github.com/Madhav-Gupta-28/noemie-shop-go/storage"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(logger.Options{Environment: cfg.Environment()})

	store, closeStore, err := openStore(cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to open storage")
	}
	defer closeStore()

	m := metrics.New()
	svc := shop.New(store, shop.Options{
		Shipping: shop.ShippingPolicy{
			Flat:              cfg.Shipping.Flat,
			FreeOver:          cfg.Shipping.FreeOver,
			CheckoutThreshold: cfg.Shipping.CheckoutThreshold,
		},
		Timeout:  cfg.Storage.Timeout,
		Recorder: m,
	})

	e, err := server.New(svc, m, middleware.SessionConfig{
		Secret: cfg.SessionSecret,
		TTL:    cfg.SessionTTL,
		Secure: cfg.Environment().IsProduction(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("port", cfg.Port).Str("storage", cfg.Storage.Driver).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func openStore(cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.Storage.Driver {
	case "mongo":
		db, err := database.ConnectDB(cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, nil, err
		}
		store := storage.NewMongo(db)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Storage.Timeout)
		defer cancel()
		if err := store.EnsureIndexes(ctx); err != nil {
			return nil, nil, err
		}
		return store, func() { _ = db.Client().Disconnect(context.Background()) }, nil
	case "redis":
		client, err := database.ConnectRedis(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedis(client, cfg.Redis.TTL), func() { _ = client.Close() }, nil
	default:
		return storage.NewMemory(), func() {}, nil
	}
}
