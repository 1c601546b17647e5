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
	customerdomain "github.com/ghuser/posledger/services/customer/domain"
	"github.com/ghuser/posledger/services/customer/domain/models"
	"github.com/ghuser/posledger/services/customer/domain/repositories"
)

const customerColumns = `customer_id, name, telephone, address, is_active, last_updated`

// CustomerRepository implements repositories.CustomerRepository against PostgreSQL.
// The telephone column carries a unique constraint; duplicate inserts map to
// ErrCustomerConflict.
type CustomerRepository struct {
	db *database.Database
}

// NewCustomerRepository returns a CustomerRepository backed by the given pool.
func NewCustomerRepository(db *database.Database) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create persists a new Customer. Returns ErrCustomerConflict on a duplicate
// telephone.
func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	return r.CreateTx(ctx, r.db.DB(), c)
}

// CreateTx is Create through the caller's Queryer.
func (r *CustomerRepository) CreateTx(ctx context.Context, q database.Queryer, c *models.Customer) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO customers (customer_id, name, telephone, address, is_active, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Telephone, c.Address, c.IsActive, c.LastUpdated,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return customerdomain.ErrCustomerConflict
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID retrieves a Customer by ID. Returns ErrCustomerNotFound if not found.
func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	row := r.db.DB().QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE customer_id = $1`, id)
	return scanCustomer(row)
}

// FindByPhone retrieves a Customer by exact telephone.
func (r *CustomerRepository) FindByPhone(ctx context.Context, telephone string) (*models.Customer, error) {
	return r.FindByPhoneTx(ctx, r.db.DB(), telephone)
}

// FindByPhoneTx is FindByPhone through the caller's Queryer, so the sale
// coordinator's lookup sees customers created earlier in its transaction.
func (r *CustomerRepository) FindByPhoneTx(ctx context.Context, q database.Queryer, telephone string) (*models.Customer, error) {
	row := q.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE telephone = $1`, telephone)
	return scanCustomer(row)
}

// List returns one page of customers plus the total count for the filter,
// most recently updated first.
func (r *CustomerRepository) List(ctx context.Context, f repositories.CustomerFilter) ([]*models.Customer, int, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+customerColumns+`, COUNT(*) OVER() AS total_count
		FROM customers
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND (NOT $2 OR is_active)
		ORDER BY last_updated DESC, customer_id DESC
		LIMIT $3 OFFSET $4`,
		f.Name, f.ActiveOnly, pagination.PageSize, pagination.Offset(f.Page),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var customers []*models.Customer
	var total int
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Telephone, &c.Address, &c.IsActive, &c.LastUpdated, &total); err != nil {
			return nil, 0, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate customers: %w", err)
	}
	return customers, total, nil
}

// Update persists a merged patch result. Returns ErrCustomerConflict when the
// new telephone is already taken by another customer.
func (r *CustomerRepository) Update(ctx context.Context, c *models.Customer) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE customers
		SET name = $2, telephone = $3, address = $4, is_active = $5, last_updated = $6
		WHERE customer_id = $1`,
		c.ID, c.Name, c.Telephone, c.Address, c.IsActive, c.LastUpdated,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return customerdomain.ErrCustomerConflict
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return customerdomain.ErrCustomerNotFound
	}
	return nil
}

func scanCustomer(row *sql.Row) (*models.Customer, error) {
	var c models.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Telephone, &c.Address, &c.IsActive, &c.LastUpdated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customerdomain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("query customer: %w", err)
	}
	return &c, nil
}
