package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/posledger/pkg/app"
	"github.com/ghuser/posledger/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/posledger/services/catalog/application/services"
)

// CatalogRoutes registers item and category endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
			r.Get("/low-stock", handlers.NewListLowStockHandler(svcs, a.Config.LowStockThreshold).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutItemHandler(svcs).Execute)
			r.Patch("/{id}/stock", handlers.NewPatchStockHandler(svcs).Execute)
			r.Patch("/{id}/discount", handlers.NewPatchDiscountHandler(svcs).Execute)
		})
		r.Route("/categories", func(r chi.Router) {
			r.Post("/", handlers.NewPostCategoryHandler(svcs).Execute)
			r.Get("/", handlers.NewListCategoriesHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutCategoryHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteCategoryHandler(svcs).Execute)
		})
	})
}
