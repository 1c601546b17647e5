package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/posledger/pkg/app"
	"github.com/ghuser/posledger/pkg/cache"
	"github.com/ghuser/posledger/pkg/config"
	"github.com/ghuser/posledger/pkg/database"
	"github.com/ghuser/posledger/pkg/events"
	"github.com/ghuser/posledger/pkg/logger"
	"github.com/ghuser/posledger/pkg/telemetry"
	saleEvents "github.com/ghuser/posledger/services/sale/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:    cfg,
		Db:        pool,
		Logger:    log,
		EventBus:  eventBus,
		Redis:     redisClient,
		ItemCache: cache.NewItemCache(redisClient),
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, saleEvents.TopicSaleCreated, handleSaleCreated(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", saleEvents.TopicSaleCreated,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{saleEvents.TopicSaleCreated})
	return nil
}

// handleSaleCreated returns a handler for sale.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Every sold item's cache entry is dropped so the next read sees the
// post-sale stock; deleting an absent key is a no-op, which keeps retries safe.
func handleSaleCreated(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt saleEvents.SaleCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		for _, line := range evt.Lines {
			if err := a.ItemCache.Delete(ctx, line.ItemID); err != nil {
				// Invalidation is best-effort: the entry expires via TTL anyway.
				a.Logger.WarnContext(ctx, "cache invalidation failed for sale.created",
					"item_id", line.ItemID, "sale_id", evt.SaleID, "error", err)
			}
		}

		a.Logger.InfoContext(ctx, "sale processed",
			"sale_id", evt.SaleID,
			"customer_id", evt.CustomerID,
			"total_amount", evt.TotalAmount,
			"line_count", len(evt.Lines),
		)
		return nil
	}
}
