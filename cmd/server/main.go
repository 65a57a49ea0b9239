// @title                       bdHub Shoe API
// @version                     1.0
// @description                 Product catalog, user roles and per-user carts for the bdHub shoe store.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/bdhub/shoe-api/internal/api"
	"github.com/bdhub/shoe-api/internal/api/handler"
	"github.com/bdhub/shoe-api/internal/core/ports"
	"github.com/bdhub/shoe-api/internal/core/service"
	"github.com/bdhub/shoe-api/internal/infrastructure/db/mongo"
	"github.com/bdhub/shoe-api/internal/infrastructure/db/redis"
	"github.com/bdhub/shoe-api/internal/pkg/config"
	"github.com/bdhub/shoe-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger level comes from config, so fall back to a bare one here.
		l := zerolog.New(os.Stderr).With().Timestamp().Logger()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "shoe-api",
	})
	log := logger.Get()

	tokens, err := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("token service")
	}

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Warn().Err(err).Msg("failed to ensure indexes")
	}

	probes := map[string]handler.Probe{
		"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
	}

	var cache ports.SuggestionCache
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without suggestion cache")
	} else {
		defer rdb.Close()
		cache = redis.NewSuggestionCache(rdb, cfg.Redis.SuggestionsTTL)
		probes["redis"] = func(ctx context.Context) error { return pingRedis(ctx, rdb) }
	}

	e := api.NewRouter(api.Dependencies{
		Users:       mongo.NewUserRepository(db),
		Products:    mongo.NewProductRepository(db),
		Carts:       mongo.NewCartRepository(db),
		Cache:       cache,
		Tokens:      tokens,
		Logger:      log,
		Probes:      probes,
		CORSOrigins: cfg.CORSOrigins,
		Registerer:  prometheus.DefaultRegisterer,
		Gatherer:    prometheus.DefaultGatherer,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("bdHub server is running")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func pingRedis(ctx context.Context, rdb *goredis.Client) error {
	return rdb.Ping(ctx).Err()
}
