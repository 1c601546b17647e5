package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ghuser/posledger/pkg/database"
	customerdomain "github.com/ghuser/posledger/services/customer/domain"
	"github.com/ghuser/posledger/services/customer/domain/models"
	"github.com/ghuser/posledger/services/customer/domain/repositories"
)

// ResolveOrCreate returns the customer for telephone, creating one when the
// phone is unknown. Creating requires name and address: a sale for a new
// phone without them fails with ErrIncompleteCustomer rather than writing a
// hollow directory record. Runs through q so the caller's transaction sees
// (and owns) the insert.
func ResolveOrCreate(ctx context.Context, q database.Queryer, repo repositories.CustomerRepository, name, telephone, address string) (*models.Customer, error) {
	if strings.TrimSpace(telephone) == "" {
		return nil, fmt.Errorf("%w: telephone is required", customerdomain.ErrIncompleteCustomer)
	}

	customer, err := repo.FindByPhoneTx(ctx, q, strings.TrimSpace(telephone))
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, customerdomain.ErrCustomerNotFound) {
		return nil, fmt.Errorf("find customer by phone: %w", err)
	}

	customer, err = models.NewCustomer(name, telephone, address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", customerdomain.ErrIncompleteCustomer, err)
	}
	if err := repo.CreateTx(ctx, q, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}
