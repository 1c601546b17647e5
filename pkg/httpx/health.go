package httpx

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (pgxpool.Pool, RedisClient, EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the set of dependencies to probe in the health endpoint.
type HealthChecks struct {
	Database HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
	EventBus string `json:"event_bus"`
}

// HealthHandler returns an http.HandlerFunc that probes all registered
// HealthCheckers in parallel and reports degraded status if any of them
// fail. Probes share a 2-second deadline so one slow backend cannot stall
// the whole check.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		results := [3]string{"ok", "ok", "ok"}
		probes := [3]HealthChecker{checks.Database, checks.Redis, checks.EventBus}

		var wg sync.WaitGroup
		for i, probe := range probes {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := probe.Ping(ctx); err != nil {
					results[i] = "unreachable"
				}
			}()
		}
		wg.Wait()

		resp := healthResponse{
			Status:   "ok",
			Database: results[0],
			Redis:    results[1],
			EventBus: results[2],
		}
		status := http.StatusOK
		for _, r := range results {
			if r != "ok" {
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
			}
		}
		JSON(w, status, resp)
	}
}
