package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/ghuser/posledger/pkg/database"
	"github.com/ghuser/posledger/pkg/pagination"
	catalogdomain "github.com/ghuser/posledger/services/catalog/domain"
	"github.com/ghuser/posledger/services/catalog/domain/models"
	"github.com/ghuser/posledger/services/catalog/domain/repositories"
)

const itemColumns = `item_id, name, unit_price, stock_available, discount_rate, discount_threshold_qty, category_id, last_updated_at`

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db *database.Database
}

// NewItemRepository returns an ItemRepository backed by the given connection pool.
func NewItemRepository(db *database.Database) *ItemRepository {
	return &ItemRepository{db: db}
}

// Save persists a new Item. Returns ErrItemAlreadyExists on a duplicate name.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO items (item_id, name, unit_price, stock_available, discount_rate, discount_threshold_qty, category_id, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.Name, item.UnitPrice, item.StockAvailable,
		item.DiscountRate, item.DiscountThresholdQty, item.CategoryID, item.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return catalogdomain.ErrItemAlreadyExists
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// Update persists name, price, discount rule, and category changes.
// Stock is never written here; use AdjustStock for that.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE items
		SET name = $2, unit_price = $3, discount_rate = $4, discount_threshold_qty = $5,
		    category_id = $6, last_updated_at = now()
		WHERE item_id = $1`,
		item.ID, item.Name, item.UnitPrice, item.DiscountRate, item.DiscountThresholdQty, item.CategoryID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return catalogdomain.ErrItemAlreadyExists
		}
		return fmt.Errorf("update item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return catalogdomain.ErrItemNotFound
	}
	return nil
}

// GetByID retrieves an Item by ID. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	return r.GetTx(ctx, r.db.DB(), id)
}

// GetTx is GetByID through the caller's Queryer, so coordinator reads see
// their own transaction's writes.
func (r *ItemRepository) GetTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*models.Item, error) {
	row := q.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE item_id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

// List returns one page of items plus the total count for the filter,
// computed in the same query pass via a window function.
func (r *ItemRepository) List(ctx context.Context, f repositories.ItemFilter) ([]*models.Item, int, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+itemColumns+`, COUNT(*) OVER() AS total_count
		FROM items
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2::uuid IS NULL OR category_id = $2)
		ORDER BY name ASC
		LIMIT $3 OFFSET $4`,
		f.Name, nullableUUID(f.CategoryID), pagination.PageSize, pagination.Offset(f.Page),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var items []*models.Item
	var total int
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.UnitPrice, &it.StockAvailable,
			&it.DiscountRate, &it.DiscountThresholdQty, &it.CategoryID, &it.LastUpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate items: %w", err)
	}
	return items, total, nil
}

// ListLowStock returns items with stock strictly below threshold, lowest first.
func (r *ItemRepository) ListLowStock(ctx context.Context, threshold int) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE stock_available < $1
		ORDER BY stock_available ASC, name ASC`,
		threshold,
	)
	if err != nil {
		return nil, fmt.Errorf("query low stock items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var items []*models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.UnitPrice, &it.StockAvailable,
			&it.DiscountRate, &it.DiscountThresholdQty, &it.CategoryID, &it.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// UpdateDiscount changes an item's discount rule only.
func (r *ItemRepository) UpdateDiscount(ctx context.Context, id uuid.UUID, rate decimal.Decimal, thresholdQty int) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE items
		SET discount_rate = $2, discount_threshold_qty = $3, last_updated_at = now()
		WHERE item_id = $1`,
		id, rate, thresholdQty,
	)
	if err != nil {
		return fmt.Errorf("update item discount: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return catalogdomain.ErrItemNotFound
	}
	return nil
}

// AdjustStock is AdjustStockTx against the pool, for callers outside a larger
// unit of work.
func (r *ItemRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*models.Item, error) {
	return r.AdjustStockTx(ctx, r.db.DB(), id, delta)
}

// AdjustStockTx applies stock_available += delta as one conditional write.
// The WHERE guard makes the decrement atomic under concurrency: two competing
// sales for the last unit race on the row lock, and the loser's guard fails.
// Zero rows affected means either the guard rejected the write or the item
// does not exist; a follow-up existence check tells the two apart.
func (r *ItemRepository) AdjustStockTx(ctx context.Context, q database.Queryer, id uuid.UUID, delta int) (*models.Item, error) {
	row := q.QueryRowContext(ctx, `
		UPDATE items
		SET stock_available = stock_available + $2, last_updated_at = now()
		WHERE item_id = $1 AND stock_available + $2 >= 0
		RETURNING `+itemColumns,
		id, delta,
	)
	item, err := scanItem(row)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("adjust stock: %w", err)
	}

	var exists bool
	if err := q.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM items WHERE item_id = $1)`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check item exists: %w", err)
	}
	if !exists {
		return nil, catalogdomain.ErrItemNotFound
	}
	return nil, catalogdomain.ErrInsufficientStock
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var it models.Item
	if err := row.Scan(
		&it.ID, &it.Name, &it.UnitPrice, &it.StockAvailable,
		&it.DiscountRate, &it.DiscountThresholdQty, &it.CategoryID, &it.LastUpdatedAt,
	); err != nil {
		return nil, err
	}
	return &it, nil
}

// nullableUUID maps uuid.Nil to SQL NULL so "no filter" predicates short-circuit.
func nullableUUID(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}
	return id
}
