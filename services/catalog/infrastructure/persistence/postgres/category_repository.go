package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/posledger/pkg/database"
	"github.com/ghuser/posledger/pkg/pagination"
	catalogdomain "github.com/ghuser/posledger/services/catalog/domain"
	"github.com/ghuser/posledger/services/catalog/domain/models"
)

// CategoryRepository implements repositories.CategoryRepository against PostgreSQL.
type CategoryRepository struct {
	db *database.Database
}

// NewCategoryRepository returns a CategoryRepository backed by the given pool.
func NewCategoryRepository(db *database.Database) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Save persists a new Category.
func (r *CategoryRepository) Save(ctx context.Context, c *models.Category) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO categories (category_id, name, description, last_updated_at)
		VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.Description, c.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("category %q: %w", c.Name, catalogdomain.ErrItemAlreadyExists)
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// Update persists name and description changes.
func (r *CategoryRepository) Update(ctx context.Context, c *models.Category) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE categories SET name = $2, description = $3, last_updated_at = now()
		WHERE category_id = $1`,
		c.ID, c.Name, c.Description,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return catalogdomain.ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category. Categories still referenced by items are kept
// and the FK violation surfaces as an error.
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM categories WHERE category_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return catalogdomain.ErrCategoryNotFound
	}
	return nil
}

// GetByID retrieves a Category by ID. Returns ErrCategoryNotFound if not found.
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var c models.Category
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT category_id, name, description, last_updated_at
		FROM categories WHERE category_id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("query category: %w", err)
	}
	return &c, nil
}

// List returns one page of categories plus the total count, name ascending.
func (r *CategoryRepository) List(ctx context.Context, page int) ([]*models.Category, int, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT category_id, name, description, last_updated_at, COUNT(*) OVER() AS total_count
		FROM categories
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		pagination.PageSize, pagination.Offset(page),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var cats []*models.Category
	var total int
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.LastUpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate categories: %w", err)
	}
	return cats, total, nil
}
