package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/posledger/docs/swagger"
	"github.com/ghuser/posledger/pkg/app"
	"github.com/ghuser/posledger/pkg/auth"
	"github.com/ghuser/posledger/pkg/cache"
	"github.com/ghuser/posledger/pkg/config"
	"github.com/ghuser/posledger/pkg/database"
	"github.com/ghuser/posledger/pkg/events"
	"github.com/ghuser/posledger/pkg/httpx"
	"github.com/ghuser/posledger/pkg/logger"
	"github.com/ghuser/posledger/pkg/telemetry"
	catalogApi "github.com/ghuser/posledger/services/catalog/application/api"
	customerApi "github.com/ghuser/posledger/services/customer/application/api"
	reportingApi "github.com/ghuser/posledger/services/reporting/application/api"
	saleApi "github.com/ghuser/posledger/services/sale/application/api"
)

// @title					PosLedger API
// @version				1.0
// @description			Point-of-sale back office: item catalog, customer directory, and sale ledger.
// @contact.name			API Support
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
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

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional; log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBusWithForwarder(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	if err := eventBus.StartForwarder(ctx); err != nil {
		log.Error("failed to start event forwarder", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	sessionStore := auth.NewSessionStore(
		redisClient.Client(),
		[]byte(cfg.SessionAuthKey),
		[]byte(cfg.SessionEncryptionKey),
		cfg.Environment == config.EnvProduction,
	)
	log.Info("session store initialized", "backend", "redis")

	appConfig := &app.Application{
		Config:       cfg,
		Db:           pool,
		Logger:       log,
		EventBus:     eventBus,
		Redis:        redisClient,
		ItemCache:    cache.NewItemCache(redisClient),
		SessionStore: sessionStore,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Database: pool,
		Redis:    redisClient,
		EventBus: eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.RequireAuth(sessionStore, log))
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	catalogApi.CatalogRoutes(r, a)
	customerApi.CustomerRoutes(r, a)
	saleApi.SaleRoutes(r, a)
	reportingApi.ReportRoutes(r, a)
}
