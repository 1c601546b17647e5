package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/posledger/pkg/app"
	"github.com/ghuser/posledger/services/customer/application/handlers"
	appsvcs "github.com/ghuser/posledger/services/customer/application/services"
)

// CustomerRoutes registers customer directory endpoints on the provided chi router.
func CustomerRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", handlers.NewPostCustomerHandler(svcs).Execute)
			r.Get("/", handlers.NewListCustomersHandler(svcs).Execute)
			r.Get("/phone/{telephone}", handlers.NewFindByPhoneHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetCustomerHandler(svcs).Execute)
			r.Patch("/{id}", handlers.NewPatchCustomerHandler(svcs).Execute)
		})
	})
}
