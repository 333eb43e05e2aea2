package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/velura/storefront-api/internal/api"
	"github.com/velura/storefront-api/internal/core/ports"
	"github.com/velura/storefront-api/internal/core/service"
	"github.com/velura/storefront-api/internal/infrastructure/config"
	mongorepo "github.com/velura/storefront-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/velura/storefront-api/internal/infrastructure/db/redis"
	"github.com/velura/storefront-api/internal/infrastructure/payment"
	"github.com/velura/storefront-api/internal/infrastructure/queue"
	"github.com/velura/storefront-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	var provider ports.PaymentProvider
	paypalCfg := payment.Config{
		ClientID: cfg.PayPal.ClientID,
		Secret:   cfg.PayPal.Secret,
		Live:     cfg.PayPal.Live,
	}
	if paypalCfg.Configured() {
		provider, err = payment.NewPayPalProvider(ctx, paypalCfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("paypal client initialisation failed")
		}
	} else {
		log.Warn().Msg("paypal credentials missing, payment endpoints disabled")
	}

	eventService := service.NewOrderEventService(mongorepo.NewOrderEventRepository(db), log)
	dispatcher := queue.NewDispatcher(0, eventService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(mongoClient, db, rdb, provider, dispatcher, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// ensureIndexes creates the indexes the uniqueness invariants depend on.
// Done at startup so a fresh database is usable immediately.
func ensureIndexes(ctx context.Context, db *mongodriver.Database) error {
	if err := mongorepo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongorepo.NewCartRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongorepo.NewOrderRepository(db).EnsureIndexes(ctx)
}
