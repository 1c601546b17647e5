package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/posledger/pkg/config"
	"github.com/ghuser/posledger/pkg/logger"
)

// newTestStore returns a gorilla CookieStore (no Redis required) for unit tests.
// In production the RedisStore is used; the sessions.Store interface is identical.
func newTestStore() sessions.Store {
	return sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)
}

// newTestLogger creates a logger that discards output.
func newTestLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

// requestWithSession builds an *http.Request that carries a valid session
// cookie containing the given staffID.
func requestWithSession(t *testing.T, store sessions.Store, staffID uuid.UUID) *http.Request {
	t.Helper()

	// Write the session cookie into a recorder, then copy it to the real request.
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/items", nil)

	session, err := store.Get(r, sessionName)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	session.Values[sessionStaffIDKey] = staffID.String()
	if err := session.Save(r, w); err != nil {
		t.Fatalf("save session: %v", err)
	}

	// Copy Set-Cookie header from recorder to a fresh request.
	req := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestRequireAuth_ValidSession(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()
	staffID := uuid.New()

	var capturedStaffID uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedStaffID, _ = StaffIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	r := requestWithSession(t, store, staffID)
	w := httptest.NewRecorder()
	RequireAuth(store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if capturedStaffID != staffID {
		t.Fatalf("expected StaffID %v in context, got %v", staffID, capturedStaffID)
	}
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	w := httptest.NewRecorder()
	RequireAuth(store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_SessionMissingStaffID(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	// Build a session with no staff_id value.
	writeReq := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	w1 := httptest.NewRecorder()
	session, _ := store.Get(writeReq, sessionName)
	// intentionally no session.Values[sessionStaffIDKey]
	_ = session.Save(writeReq, w1)

	r := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	for _, c := range w1.Result().Cookies() {
		r.AddCookie(c)
	}

	w := httptest.NewRecorder()
	RequireAuth(store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_InvalidStaffIDInSession(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	writeReq := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	w1 := httptest.NewRecorder()
	session, _ := store.Get(writeReq, sessionName)
	session.Values[sessionStaffIDKey] = "not-a-valid-uuid"
	_ = session.Save(writeReq, w1)

	r := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	for _, c := range w1.Result().Cookies() {
		r.AddCookie(c)
	}

	w := httptest.NewRecorder()
	RequireAuth(store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
