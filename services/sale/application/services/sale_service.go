package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/posledger/pkg/database"
	catalogdomain "github.com/ghuser/posledger/services/catalog/domain"
	catalogrepos "github.com/ghuser/posledger/services/catalog/domain/repositories"
	customersvcs "github.com/ghuser/posledger/services/customer/domain/services"

	customerrepos "github.com/ghuser/posledger/services/customer/domain/repositories"
	saledomain "github.com/ghuser/posledger/services/sale/domain"
	"github.com/ghuser/posledger/services/sale/domain/models"
	salerepos "github.com/ghuser/posledger/services/sale/domain/repositories"
)

// SaleLineInput is one requested line of a sale.
type SaleLineInput struct {
	ItemID uuid.UUID
	Qty    int
}

// CreateSaleInput is the coordinator's request: who bought, what, and how
// much they handed over. Name and address are only consulted when the
// telephone is new to the directory.
type CreateSaleInput struct {
	CustomerName    string
	Telephone       string
	CustomerAddress string
	Paid            decimal.Decimal
	Lines           []SaleLineInput
}

// SaleService is the transaction coordinator: it executes one sale as a
// single unit of work. Customer resolution, per-line stock decrements, total
// accumulation, and the ledger insert all commit together or roll back
// together; the first typed failure aborts everything.
type SaleService struct {
	db        database.TxRunner
	items     catalogrepos.ItemRepository
	customers customerrepos.CustomerRepository
	sales     salerepos.SaleRepository
	now       func() time.Time
}

// NewSaleService returns a SaleService wired with the given unit-of-work
// runner and repositories.
func NewSaleService(db database.TxRunner, items catalogrepos.ItemRepository, customers customerrepos.CustomerRepository, sales salerepos.SaleRepository) *SaleService {
	return &SaleService{
		db:        db,
		items:     items,
		customers: customers,
		sales:     sales,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateSale executes one sale atomically:
//
//  1. Resolve the customer by phone, creating the record when the phone is
//     new (name and address required then).
//  2. For each line: load the item, check the quantity against the read
//     snapshot, evaluate its discount rule, and decrement stock with the
//     conditional write. The decrement is the authoritative stock check —
//     a concurrent sale that takes the last unit makes this one fail with
//     ErrInsufficientStock and roll back whole.
//  3. Accumulate exact-decimal totals, seal the draft, insert header and
//     lines, and publish sale.created in the same transaction.
//
// Input problems (no lines, non-positive quantity, negative payment) are
// rejected before any transaction starts.
func (s *SaleService) CreateSale(ctx context.Context, in CreateSaleInput) (*models.Sale, error) {
	if len(in.Lines) == 0 {
		return nil, saledomain.ErrEmptySale
	}
	for _, line := range in.Lines {
		if line.Qty <= 0 {
			return nil, fmt.Errorf("%w: quantity %d for item %s", saledomain.ErrInvalidQuantity, line.Qty, line.ItemID)
		}
	}
	if in.Paid.IsNegative() {
		return nil, fmt.Errorf("%w: paid amount must not be negative", saledomain.ErrInvalidPayment)
	}

	var sale *models.Sale
	err := s.db.WithTx(ctx, func(q database.Queryer) error {
		customer, err := customersvcs.ResolveOrCreate(ctx, q, s.customers, in.CustomerName, in.Telephone, in.CustomerAddress)
		if err != nil {
			return err
		}

		draft := models.NewSaleDraft(customer.ID, in.Paid)
		for _, line := range in.Lines {
			item, err := s.items.GetTx(ctx, q, line.ItemID)
			if err != nil {
				return err
			}
			// Fail fast on the read snapshot; the conditional decrement
			// below still guards against concurrent takers.
			if line.Qty > item.StockAvailable {
				return fmt.Errorf("%w: item %s has %d left", catalogdomain.ErrInsufficientStock, item.ID, item.StockAvailable)
			}
			discount := item.DiscountFor(line.Qty)
			if _, err := s.items.AdjustStockTx(ctx, q, item.ID, -line.Qty); err != nil {
				return err
			}
			draft.AddLine(item, line.Qty, discount)
		}

		sale = draft.Build(s.now())
		if err := s.sales.InsertTx(ctx, q, sale); err != nil {
			return fmt.Errorf("persist sale: %w", err)
		}

		// Denormalized read fields, so the response matches a later Get.
		sale.CustomerName = customer.Name
		sale.CustomerPhone = customer.Telephone
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// GetSale returns one sale with its lines.
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	sale, err := s.sales.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

// ListSales returns one page of sales plus the total count.
func (s *SaleService) ListSales(ctx context.Context, page int) ([]*models.Sale, int, error) {
	sales, total, err := s.sales.ListAll(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	return sales, total, nil
}

// ListRecent returns the latest limit sales.
func (s *SaleService) ListRecent(ctx context.Context, limit int) ([]*models.Sale, error) {
	if limit <= 0 {
		limit = 10
	}
	sales, err := s.sales.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent sales: %w", err)
	}
	return sales, nil
}

// SearchByPhone returns one page of a customer's sales plus their total count.
func (s *SaleService) SearchByPhone(ctx context.Context, telephone string, page int) ([]*models.Sale, int, error) {
	sales, total, err := s.sales.ListByCustomerPhone(ctx, telephone, page)
	if err != nil {
		return nil, 0, fmt.Errorf("search sales: %w", err)
	}
	return sales, total, nil
}

// UpdatePayment sets a sale's paid amount and recomputes the balance from the
// stored total. Totals themselves are never rewritten.
func (s *SaleService) UpdatePayment(ctx context.Context, id uuid.UUID, paid decimal.Decimal) (*models.Sale, error) {
	if paid.IsNegative() {
		return nil, fmt.Errorf("%w: paid amount must not be negative", saledomain.ErrInvalidPayment)
	}
	sale, err := s.sales.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	balance := sale.TotalAmount.Sub(paid)
	if err := s.sales.UpdatePayment(ctx, id, paid, balance); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	sale.Paid = paid
	sale.Balance = balance
	return sale, nil
}
