package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mktsync/backend/internal/application/eventsync"
	"github.com/mktsync/backend/internal/infrastructure/commerceapi"
	"github.com/mktsync/backend/internal/infrastructure/config"
	"github.com/mktsync/backend/internal/infrastructure/dedupe"
	"github.com/mktsync/backend/internal/infrastructure/flags"
	"github.com/mktsync/backend/internal/infrastructure/logger"
	"github.com/mktsync/backend/internal/infrastructure/marketing"
	"github.com/mktsync/backend/internal/infrastructure/telemetry"
	"github.com/mktsync/backend/internal/interfaces/http/handler"
	"github.com/mktsync/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting marketing sync backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	shutdownTracing, err := telemetry.Init(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		ServiceName:       cfg.Telemetry.ServiceName,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		Insecure:          cfg.Telemetry.Insecure,
	})
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	// Outbound adapters
	marketingCfg := marketing.NewConfig(cfg.Marketing.APIKey, cfg.Marketing.CompanyID)
	if cfg.Marketing.APIBaseURL != "" {
		marketingCfg.APIBaseURL = cfg.Marketing.APIBaseURL
	}
	if cfg.Marketing.Revision != "" {
		marketingCfg.Revision = cfg.Marketing.Revision
	}
	if cfg.Marketing.TimeoutSeconds > 0 {
		marketingCfg.TimeoutSeconds = cfg.Marketing.TimeoutSeconds
	}
	gateway, err := marketing.NewAdapter(marketingCfg)
	if err != nil {
		log.Fatal("Failed to initialize marketing adapter", zap.Error(err))
	}

	customers, err := commerceapi.NewAdapter(&commerceapi.Config{
		APIBaseURL:     cfg.Commerce.APIBaseURL,
		ProjectKey:     cfg.Commerce.ProjectKey,
		AuthToken:      cfg.Commerce.AuthToken,
		TimeoutSeconds: cfg.Commerce.TimeoutSeconds,
	})
	if err != nil {
		log.Fatal("Failed to initialize commerce adapter", zap.Error(err))
	}

	// Sync pipeline
	defaults := eventsync.DefaultSettings()
	settings := eventsync.Settings{
		OrderCreatedStates:      eventsync.ParseStateList(cfg.Sync.OrderCreatedStates, defaults.OrderCreatedStates),
		OrderStateChangedStates: eventsync.ParseStateList(cfg.Sync.OrderStateChangedStates, defaults.OrderStateChangedStates),
		CustomerCreatedMetric:   cfg.Sync.CustomerCreatedMetric,
	}
	disabler := flags.NewConfigDisabler(cfg.Sync.DisabledEvents)
	mapper := eventsync.NewCustomerMapper()
	delivery := eventsync.NewDeliveryService(gateway, log)

	dispatcher := eventsync.NewDispatcher(log,
		eventsync.NewCustomerCreatedProcessor(customers, mapper, disabler, settings, log),
		eventsync.NewCustomerResourceUpdatedProcessor(customers, delivery, mapper, disabler, log),
		eventsync.NewOrderCreatedProcessor(disabler, settings, log),
		eventsync.NewOrderStateChangedProcessor(disabler, settings, log),
	)

	// Message deduplication
	var guard handler.DedupeGuard
	if cfg.Dedupe.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		guard = dedupe.NewGuard(dedupe.NewRedisStore(redisClient), cfg.Dedupe.TTL, log)
	}

	// HTTP layer
	webhookHandler := handler.NewWebhookHandler(dispatcher, delivery, guard, log)
	engine, err := router.New(router.Options{
		Config:  cfg,
		Logger:  log,
		Webhook: webhookHandler,
		Health:  handler.NewHealthHandler(),
	})
	if err != nil {
		log.Fatal("Failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Warn("Failed to shut down tracing", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
