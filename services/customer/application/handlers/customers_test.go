package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/posledger/pkg/database"
	appsvcs "github.com/ghuser/posledger/services/customer/application/services"
	customerdomain "github.com/ghuser/posledger/services/customer/domain"
	"github.com/ghuser/posledger/services/customer/domain/models"
	"github.com/ghuser/posledger/services/customer/domain/repositories"
)

// fakeCustomerRepo backs the handlers with an ID-keyed map.
type fakeCustomerRepo struct {
	byID    map[uuid.UUID]*models.Customer
	updated int
}

func newFakeCustomerRepo(customers ...*models.Customer) *fakeCustomerRepo {
	f := &fakeCustomerRepo{byID: map[uuid.UUID]*models.Customer{}}
	for _, c := range customers {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *models.Customer) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, customerdomain.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) FindByPhone(ctx context.Context, telephone string) (*models.Customer, error) {
	for _, c := range f.byID {
		if c.Telephone == telephone {
			return c, nil
		}
	}
	return nil, customerdomain.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) List(ctx context.Context, fl repositories.CustomerFilter) ([]*models.Customer, int, error) {
	return nil, 0, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c *models.Customer) error {
	if _, ok := f.byID[c.ID]; !ok {
		return customerdomain.ErrCustomerNotFound
	}
	f.byID[c.ID] = c
	f.updated++
	return nil
}

func (f *fakeCustomerRepo) FindByPhoneTx(ctx context.Context, q database.Queryer, telephone string) (*models.Customer, error) {
	return f.FindByPhone(ctx, telephone)
}

func (f *fakeCustomerRepo) CreateTx(ctx context.Context, q database.Queryer, c *models.Customer) error {
	return f.Create(ctx, c)
}

func patchRouter(repo *fakeCustomerRepo) http.Handler {
	svcs := &appsvcs.Services{Customer: appsvcs.NewCustomerService(repo)}
	r := chi.NewRouter()
	r.Patch("/customers/{id}", NewPatchCustomerHandler(svcs).Execute)
	return r
}

func doPatch(t *testing.T, h http.Handler, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/customers/"+id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPatchCustomerHandler(t *testing.T) {
	seed := func(t *testing.T) *models.Customer {
		t.Helper()
		c, err := models.NewCustomer("Nimal Perera", "0771234567", "12 Galle Road")
		if err != nil {
			t.Fatalf("seed customer: %v", err)
		}
		return c
	}

	t.Run("updates the provided fields", func(t *testing.T) {
		c := seed(t)
		repo := newFakeCustomerRepo(c)
		rec := doPatch(t, patchRouter(repo), c.ID.String(), `{"name":"Kamal Silva","isActive":false}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
		}
		var resp CustomerResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Name != "Kamal Silva" || resp.IsActive {
			t.Fatalf("patch not applied: %+v", resp)
		}
		if resp.Telephone != "0771234567" {
			t.Fatalf("untouched field changed: %q", resp.Telephone)
		}
		if repo.updated != 1 {
			t.Fatalf("expected one update, got %d", repo.updated)
		}
	})

	t.Run("empty patch is a no-op read", func(t *testing.T) {
		c := seed(t)
		repo := newFakeCustomerRepo(c)
		rec := doPatch(t, patchRouter(repo), c.ID.String(), `{}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
		}
		if repo.updated != 0 {
			t.Fatalf("no-op patch must not write, got %d updates", repo.updated)
		}
	})

	t.Run("unknown customer yields 404", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		rec := doPatch(t, patchRouter(repo), uuid.NewString(), `{"name":"Kamal"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body)
		}
	})

	t.Run("malformed id yields 400", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		rec := doPatch(t, patchRouter(repo), "not-a-uuid", `{"name":"Kamal"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body)
		}
	})
}
