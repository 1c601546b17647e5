package services

import (
	"github.com/ghuser/posledger/pkg/app"
	"github.com/ghuser/posledger/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item     *ItemService
	Category *CategoryService
}

// New wires all catalog application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	itemRepo := postgres.NewItemRepository(a.Db)
	categoryRepo := postgres.NewCategoryRepository(a.Db)
	return &Services{
		Item:     NewItemService(itemRepo, a.ItemCache),
		Category: NewCategoryService(categoryRepo),
	}
}
