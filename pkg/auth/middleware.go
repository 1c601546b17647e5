package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/posledger/pkg/httpx"
	"github.com/ghuser/posledger/pkg/logger"
)

const sessionName = "posledger_session"
const sessionStaffIDKey = "staff_id"

// RequireAuth is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the StaffID, and injects it into the request context.
// Returns 401 Unauthorized if the session is missing, invalid, or lacks a valid staff_id.
//
// After this middleware, handlers can safely call auth.StaffIDFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			staffIDStr, ok := session.Values[sessionStaffIDKey].(string)
			if !ok || staffIDStr == "" {
				log.WarnContext(r.Context(), "session missing staff_id")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			staffID, err := uuid.Parse(staffIDStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid staff_id in session", "staff_id", staffIDStr, "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session data"})
				return
			}

			ctx := WithStaffID(r.Context(), staffID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
