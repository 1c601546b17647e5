package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	catalogdomain "github.com/ghuser/posledger/services/catalog/domain"
	customerdomain "github.com/ghuser/posledger/services/customer/domain"
	saledomain "github.com/ghuser/posledger/services/sale/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrItemNotFound", catalogdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrCategoryNotFound", catalogdomain.ErrCategoryNotFound, http.StatusNotFound},
		{"ErrCustomerNotFound", customerdomain.ErrCustomerNotFound, http.StatusNotFound},
		{"ErrSaleNotFound", saledomain.ErrSaleNotFound, http.StatusNotFound},
		{"ErrItemAlreadyExists", catalogdomain.ErrItemAlreadyExists, http.StatusConflict},
		{"ErrCustomerConflict", customerdomain.ErrCustomerConflict, http.StatusConflict},
		{"ErrInsufficientStock", catalogdomain.ErrInsufficientStock, http.StatusConflict},
		{"ErrIncompleteCustomer", customerdomain.ErrIncompleteCustomer, http.StatusUnprocessableEntity},
		{"ErrEmptySale", saledomain.ErrEmptySale, http.StatusUnprocessableEntity},
		{"wrapped ErrItemNotFound", fmt.Errorf("load item: %w", catalogdomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrInsufficientStock", fmt.Errorf("%w: pencils", catalogdomain.ErrInsufficientStock), http.StatusConflict},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, saledomain.ErrSaleNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New(`pq: relation "sales" does not exist`))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("500 body must carry the generic status text, got %q", body["error"])
	}
}

func TestWriteError_DomainMessagePassesThrough(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, saledomain.ErrSaleNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != saledomain.ErrSaleNotFound.Error() {
		t.Fatalf("404 body must carry the domain message, got %q", body["error"])
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, catalogdomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
