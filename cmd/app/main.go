package main

import (
	"context"
	"fmt"

	"shopfront/config"
	checkoutUC "shopfront/internal/checkout/usecase"
	"shopfront/internal/httpserver"
	orderUC "shopfront/internal/order/usecase"
	"shopfront/internal/payment/pending"
	paymentUC "shopfront/internal/payment/usecase"
	sessionStore "shopfront/internal/session/store"
	sessionUC "shopfront/internal/session/usecase"
	statsUC "shopfront/internal/stats/usecase"
	"shopfront/pkg/log"
	"shopfront/pkg/memstore"
	pkgRedis "shopfront/pkg/redis"
	"shopfront/pkg/storeapi"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// Initialize Redis (durable session tier)
	redisClient, err := pkgRedis.New(pkgRedis.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// Volatile run-scoped tier
	volatile := memstore.New()

	// Backend client
	backend, err := storeapi.New(logger, storeapi.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize backend client: ", err)
		return
	}

	// Session manager
	store := sessionStore.New(logger, redisClient, volatile, backend)
	session := sessionUC.New(logger, backend, store)

	// Pending payment markers
	pendingStore := pending.NewStore(volatile)

	// Domain use cases
	checkout := checkoutUC.New(logger, backend, session, pendingStore)
	payment := paymentUC.New(logger, backend, session, pendingStore, cfg.Payment.NavigateDelay)
	order := orderUC.New(logger, backend)
	stats := statsUC.New(logger, backend)

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
		Mode: cfg.Server.Mode,

		Session:  session,
		Checkout: checkout,
		Payment:  payment,
		Order:    order,
		Stats:    stats,

		Accounts: backend,

		Redis: redisClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
