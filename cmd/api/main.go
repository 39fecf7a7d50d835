package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tiendadmin/catalog-admin/internal/api"
	"github.com/tiendadmin/catalog-admin/internal/api/handler"
	"github.com/tiendadmin/catalog-admin/internal/core/service"
	"github.com/tiendadmin/catalog-admin/internal/infrastructure/config"
	mongodb "github.com/tiendadmin/catalog-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/tiendadmin/catalog-admin/internal/infrastructure/db/redis"
	"github.com/tiendadmin/catalog-admin/internal/infrastructure/password"
	"github.com/tiendadmin/catalog-admin/internal/infrastructure/token"
	"github.com/tiendadmin/catalog-admin/pkg/logger"
)

// @title                       Catalog Admin API
// @version                     1.0
// @description                 Administrative backend for the store catalog.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: "catalog-admin"})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty || cfg.IsDevelopment(),
		Service: "catalog-admin",
	})

	codec, err := token.NewCodec(token.Config{
		Secret:          cfg.Auth.Secret,
		Algorithm:       cfg.Auth.Algorithm,
		LifetimeMinutes: cfg.Auth.AccessTokenExpireMinutes,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid token settings")
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer rdb.Close()

	// --- Dependencies ---
	hasher := password.NewBcrypt()
	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	saleRepo := mongodb.NewSaleRepository(db)

	users := service.NewUserService(userRepo, hasher, log)
	services := api.Services{
		Auth:       service.NewAuthService(userRepo, hasher, codec, log),
		Users:      users,
		Categories: service.NewCategoryService(categoryRepo, log),
		Products:   service.NewProductService(productRepo, categoryRepo, log),
		Sales:      service.NewSaleService(saleRepo, userRepo, productRepo, redisdb.NewIdempotencyGuard(rdb, 0), log),
	}

	if err := seedAdministrator(ctx, users, cfg.Seed, log); err != nil {
		log.Fatal().Err(err).Msg("seed administrator")
	}

	e := api.NewRouter(api.Options{
		Codec:    codec,
		Services: services,
		Readiness: map[string]handler.DependencyCheck{
			"mongodb": mongodb.Check(db),
			"redis":   redisdb.Check(rdb),
		},
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("api server starting")
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
		log.Info().Msg("api server stopped")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
		}
	}
}
