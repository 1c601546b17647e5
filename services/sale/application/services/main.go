package services

import (
	"github.com/ghuser/posledger/pkg/app"
	catalogpg "github.com/ghuser/posledger/services/catalog/infrastructure/persistence/postgres"
	customerpg "github.com/ghuser/posledger/services/customer/infrastructure/persistence/postgres"
	salepg "github.com/ghuser/posledger/services/sale/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Sale *SaleService
}

// New wires the sale coordinator with infrastructure from the Application
// container. The coordinator reaches into the catalog and customer
// repositories directly: one sale is one transaction across all three.
func New(a *app.Application) *Services {
	items := catalogpg.NewItemRepository(a.Db)
	customers := customerpg.NewCustomerRepository(a.Db)
	sales := salepg.NewSaleRepository(a.Db, a.EventBus)
	return &Services{
		Sale: NewSaleService(a.Db, items, customers, sales),
	}
}
