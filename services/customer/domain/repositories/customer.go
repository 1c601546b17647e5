package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/posledger/pkg/database"
	"github.com/ghuser/posledger/services/customer/domain/models"
)

// CustomerFilter narrows List queries. Zero values mean "no filter".
type CustomerFilter struct {
	Name       string // case-insensitive substring match
	ActiveOnly bool
	Page       int // 1-based
}

// CustomerRepository is the persistence interface for the customer directory.
//
// FindByPhoneTx and CreateTx take a database.Queryer so the sale coordinator
// can resolve-or-create a customer inside its own unit of work.
type CustomerRepository interface {
	Create(ctx context.Context, c *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	FindByPhone(ctx context.Context, telephone string) (*models.Customer, error)

	// List returns one fixed-size page of customers plus the total count
	// for the filter, most recently updated first.
	List(ctx context.Context, f CustomerFilter) ([]*models.Customer, int, error)

	// Update persists a merged patch result.
	Update(ctx context.Context, c *models.Customer) error

	// FindByPhoneTx looks up a customer through q. Returns
	// domain.ErrCustomerNotFound when the phone is unknown.
	FindByPhoneTx(ctx context.Context, q database.Queryer, telephone string) (*models.Customer, error)

	// CreateTx inserts a customer through q. Returns
	// domain.ErrCustomerConflict on a duplicate telephone.
	CreateTx(ctx context.Context, q database.Queryer, c *models.Customer) error
}
