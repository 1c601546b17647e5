package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/posledger/pkg/database"
	"github.com/ghuser/posledger/services/sale/domain/models"
)

// SaleRepository is the persistence interface for the sale ledger.
//
// InsertTx persists a header plus all of its lines through the caller's
// transaction; the read side re-groups flat join rows into nested sales.
type SaleRepository interface {
	// InsertTx writes the sale header, then every line, through q. The
	// caller owns the surrounding transaction.
	InsertTx(ctx context.Context, q database.Queryer, sale *models.Sale) error

	// GetByID returns one sale with its lines and denormalized customer
	// name/phone, or domain.ErrSaleNotFound. A sale with zero lines is
	// returned with an empty line list, not dropped.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Sale, error)

	// ListAll returns one fixed-size page of sales (newest first, sale ID
	// descending on timestamp ties) plus the total sale count.
	ListAll(ctx context.Context, page int) ([]*models.Sale, int, error)

	// ListByCustomerPhone is ListAll restricted to one customer's phone;
	// the total count honors the same filter.
	ListByCustomerPhone(ctx context.Context, telephone string, page int) ([]*models.Sale, int, error)

	// ListRecent returns the latest `limit` sales without the pagination
	// envelope.
	ListRecent(ctx context.Context, limit int) ([]*models.Sale, error)

	// UpdatePayment overwrites only the paid and balance columns. Returns
	// domain.ErrSaleNotFound when the sale does not exist. Totals are never
	// recomputed.
	UpdatePayment(ctx context.Context, id uuid.UUID, paid, balance decimal.Decimal) error
}
