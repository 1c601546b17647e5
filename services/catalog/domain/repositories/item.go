package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/posledger/pkg/database"
	"github.com/ghuser/posledger/services/catalog/domain/models"
)

// ItemFilter narrows List queries. Zero values mean "no filter".
type ItemFilter struct {
	Name       string    // case-insensitive substring match
	CategoryID uuid.UUID // exact match when non-nil UUID
	Page       int       // 1-based
}

// ItemRepository is the persistence interface for catalog items.
// The domain layer owns this interface; infrastructure implements it.
//
// GetTx and AdjustStockTx take a database.Queryer so the sale coordinator can
// run them inside its own unit of work; the plain variants use the pool.
type ItemRepository interface {
	Save(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// List returns one fixed-size page of items plus the total count for
	// the filter, computed in the same query pass.
	List(ctx context.Context, f ItemFilter) ([]*models.Item, int, error)

	// ListLowStock returns items whose stock is strictly below threshold,
	// lowest stock first.
	ListLowStock(ctx context.Context, threshold int) ([]*models.Item, error)

	// UpdateDiscount changes an item's discount rule only.
	UpdateDiscount(ctx context.Context, id uuid.UUID, rate decimal.Decimal, thresholdQty int) error

	// AdjustStock is AdjustStockTx against the pool, for callers outside a
	// larger unit of work (e.g. manual stock corrections).
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*models.Item, error)

	// GetTx loads an item through q, so reads participate in the caller's
	// transaction.
	GetTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*models.Item, error)

	// AdjustStockTx applies stock_available += delta as a single conditional
	// write: the update succeeds only when the resulting stock stays
	// non-negative. Returns the updated item, domain.ErrInsufficientStock
	// when the guard rejects the write, or domain.ErrItemNotFound.
	AdjustStockTx(ctx context.Context, q database.Queryer, id uuid.UUID, delta int) (*models.Item, error)
}

// CategoryRepository is the persistence interface for categories.
type CategoryRepository interface {
	Save(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	List(ctx context.Context, page int) ([]*models.Category, int, error)
}
