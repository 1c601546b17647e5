package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	saledomain "github.com/ghuser/posledger/services/sale/domain"
	"github.com/ghuser/posledger/services/sale/domain/models"
)

type execCall struct {
	query string
	args  []any
}

// recordingQueryer captures every write so insert order and arguments can be
// asserted without a database.
type recordingQueryer struct {
	calls []execCall
}

func (r *recordingQueryer) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	r.calls = append(r.calls, execCall{query: query, args: args})
	return driver.RowsAffected(1), nil
}

func (r *recordingQueryer) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingQueryer) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}

func threeLineSale() *models.Sale {
	saleID := uuid.New()
	lines := make([]*models.SaleLine, 3)
	for i, name := range []string{"Pen", "Notebook", "Eraser"} {
		lines[i] = &models.SaleLine{
			ID:        uuid.New(),
			SaleID:    saleID,
			ItemID:    uuid.New(),
			ItemName:  name,
			UnitPrice: decimal.RequireFromString("100.00"),
			Qty:       1,
			ItemTotal: decimal.RequireFromString("100.00"),
		}
	}
	return &models.Sale{
		ID:         saleID,
		CustomerID: uuid.New(),
		SoldAt:     time.Now().UTC(),
		Lines:      lines,
	}
}

func TestSaleRepository_InsertTx(t *testing.T) {
	repo := NewSaleRepository(nil, nil)

	t.Run("writes header first, then lines numbered in submission order", func(t *testing.T) {
		q := &recordingQueryer{}
		sale := threeLineSale()

		if err := repo.InsertTx(context.Background(), q, sale); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(q.calls) != 4 {
			t.Fatalf("expected 4 writes, got %d", len(q.calls))
		}
		if !strings.Contains(q.calls[0].query, "INSERT INTO sales") {
			t.Fatalf("first write must be the header, got %q", q.calls[0].query)
		}
		for i, call := range q.calls[1:] {
			if !strings.Contains(call.query, "INSERT INTO sale_items") {
				t.Fatalf("write %d must be a line insert, got %q", i+1, call.query)
			}
			// args: sale_item_id, sale_id, line_no, ...
			if got := call.args[2]; got != i+1 {
				t.Fatalf("line %d: expected line_no %d, got %v", i, i+1, got)
			}
			if call.args[0] != sale.Lines[i].ID {
				t.Fatalf("line %d: inserted out of submission order", i)
			}
		}
	})

	t.Run("rejects a sale with no lines", func(t *testing.T) {
		q := &recordingQueryer{}
		sale := threeLineSale()
		sale.Lines = nil

		err := repo.InsertTx(context.Background(), q, sale)
		if !errors.Is(err, saledomain.ErrEmptySale) {
			t.Fatalf("expected ErrEmptySale, got %v", err)
		}
		if len(q.calls) != 0 {
			t.Fatalf("nothing may be written, got %d calls", len(q.calls))
		}
	})
}
