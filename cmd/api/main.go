package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	deliveryHTTP "github.com/frontandrew/garage/internal/delivery/http"
	"github.com/frontandrew/garage/internal/pkg/config"
	"github.com/frontandrew/garage/internal/pkg/database"
	"github.com/frontandrew/garage/internal/pkg/logger"
	"github.com/frontandrew/garage/internal/pkg/redis"
	"github.com/frontandrew/garage/internal/repository"
	"github.com/frontandrew/garage/internal/repository/cached"
	"github.com/frontandrew/garage/internal/repository/postgres"
	"github.com/frontandrew/garage/internal/usecase/client"
	"github.com/frontandrew/garage/internal/usecase/invoice"
)

func main() {
	// =========================================================================
	// Загрузка конфигурации
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	log.Info("Starting garage API server", map[string]interface{}{
		"version": "1.0.0",
		"env":     cfg.App.Env,
	})

	if cfg.App.Debug && cfg.App.IsProduction() {
		log.Warn("APP_DEBUG is enabled in production: error details are exposed to clients")
	}

	// =========================================================================
	// Подключение к PostgreSQL
	// =========================================================================

	ctx := context.Background()
	db, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer database.Close(db)

	log.Info("Connected to PostgreSQL", map[string]interface{}{
		"host":      cfg.Database.Host,
		"port":      cfg.Database.Port,
		"database":  cfg.Database.Database,
		"max_conns": cfg.Database.MaxOpenConns,
	})

	// =========================================================================
	// Создание repositories (с кэшем Redis, если он включен)
	// =========================================================================

	var clientRepo repository.ClientRepository = postgres.NewClientRepository(db)
	var invoiceRepo repository.InvoiceRepository = postgres.NewInvoiceRepository(db)

	healthChecks := map[string]deliveryHTTP.Pinger{"database": db}

	if cfg.Cache.Enabled {
		cache, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warn("Redis is not available, running without cache", map[string]interface{}{
				"error":   err.Error(),
				"address": cfg.Redis.Address(),
			})
		} else {
			defer cache.Close()

			clientRepo = cached.NewClientRepository(clientRepo, cache, cfg.Cache.TTL, log)
			invoiceRepo = cached.NewInvoiceRepository(invoiceRepo, cache, cfg.Cache.TTL, log)
			healthChecks["cache"] = cache

			log.Info("Redis cache enabled", map[string]interface{}{
				"address": cfg.Redis.Address(),
				"ttl":     cfg.Cache.TTL.String(),
			})
		}
	}

	// =========================================================================
	// Use case services и HTTP handlers
	// =========================================================================

	clientService := client.NewService(clientRepo, cfg.Database.QueryTimeout, log)
	invoiceService := invoice.NewService(invoiceRepo, cfg.Database.QueryTimeout, log)

	router := deliveryHTTP.NewRouter(
		deliveryHTTP.NewClientHandler(clientService, log, cfg.App.Debug),
		deliveryHTTP.NewInvoiceHandler(invoiceService, log, cfg.App.Debug),
		deliveryHTTP.NewHealthHandler(healthChecks, log),
		cfg,
		log,
	)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// =========================================================================
	// Запуск сервера и graceful shutdown
	// =========================================================================

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("API server listening", map[string]interface{}{
			"address": srv.Addr,
		})
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server error", map[string]interface{}{
				"error": err.Error(),
			})
		}

	case sig := <-shutdown:
		log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})

			if err := srv.Close(); err != nil {
				log.Error("Failed to close server", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		log.Info("Server stopped gracefully")
	}
}
