package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/posledger/pkg/app"
	"github.com/ghuser/posledger/services/sale/application/handlers"
	appsvcs "github.com/ghuser/posledger/services/sale/application/services"
)

// SaleRoutes registers sale ledger endpoints on the provided chi router.
// Fixed paths register before the {id} wildcard so chi matches them first.
func SaleRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/sales", func(r chi.Router) {
			r.Post("/", handlers.NewPostSaleHandler(svcs).Execute)
			r.Get("/", handlers.NewListSalesHandler(svcs).Execute)
			r.Get("/recent", handlers.NewListRecentSalesHandler(svcs).Execute)
			r.Get("/search", handlers.NewSearchSalesHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetSaleHandler(svcs).Execute)
			r.Put("/{id}/payment", handlers.NewPutPaymentHandler(svcs).Execute)
		})
	})
}
