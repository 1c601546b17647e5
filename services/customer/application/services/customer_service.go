package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	customerdomain "github.com/ghuser/posledger/services/customer/domain"
	"github.com/ghuser/posledger/services/customer/domain/models"
	"github.com/ghuser/posledger/services/customer/domain/repositories"
)

// CustomerService orchestrates directory reads and writes.
type CustomerService struct {
	repo repositories.CustomerRepository
}

// NewCustomerService returns a CustomerService wired with the given repository.
func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// Create validates and persists a new customer. Returns ErrCustomerConflict
// when the telephone is already registered.
func (s *CustomerService) Create(ctx context.Context, name, telephone, address string) (*models.Customer, error) {
	c, err := models.NewCustomer(name, telephone, address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", customerdomain.ErrIncompleteCustomer, err)
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

// GetByID retrieves a customer by ID.
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// FindByPhone retrieves a customer by exact telephone.
func (s *CustomerService) FindByPhone(ctx context.Context, telephone string) (*models.Customer, error) {
	c, err := s.repo.FindByPhone(ctx, telephone)
	if err != nil {
		return nil, fmt.Errorf("find customer by phone: %w", err)
	}
	return c, nil
}

// List returns one page of customers plus the total count for the filter.
func (s *CustomerService) List(ctx context.Context, f repositories.CustomerFilter) ([]*models.Customer, int, error) {
	customers, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	return customers, total, nil
}

// Patch applies a partial update to a customer. Nil and empty patch fields
// keep the stored values. A no-op patch returns the customer unchanged
// without touching the database.
func (s *CustomerService) Patch(ctx context.Context, id uuid.UUID, patch models.CustomerPatch) (*models.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if patch.IsZero() {
		return c, nil
	}
	patch.Apply(c)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return c, nil
}
