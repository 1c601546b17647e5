package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/posledger/pkg/cache"
	"github.com/ghuser/posledger/pkg/config"
	"github.com/ghuser/posledger/pkg/database"
	"github.com/ghuser/posledger/pkg/events"
	"github.com/ghuser/posledger/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service BookRoutes calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing sale", "sale_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config       *config.Config
	Db           *database.Database
	Logger       logger.Logger
	EventBus     *events.EventBus
	Redis        *cache.RedisClient
	ItemCache    *cache.ItemCache
	SessionStore sessions.Store // Redis-backed session store; nil in worker process
}
