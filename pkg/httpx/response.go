package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded — use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes a standard {"error": message} JSON response.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// SafeError returns the error message for client responses. Server-side
// failures (5xx) are replaced with the generic status text so driver and SQL
// details never reach a terminal; domain errors (4xx) pass through verbatim.
func SafeError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
