package services

import (
	"github.com/ghuser/posledger/pkg/app"
	"github.com/ghuser/posledger/services/customer/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Customer *CustomerService
}

// New wires all customer application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewCustomerRepository(a.Db)
	return &Services{
		Customer: NewCustomerService(repo),
	}
}
