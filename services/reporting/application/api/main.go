package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/posledger/pkg/app"
	"github.com/ghuser/posledger/services/reporting/application/handlers"
	appsvcs "github.com/ghuser/posledger/services/reporting/application/services"
)

// ReportRoutes registers reporting endpoints on the provided chi router.
func ReportRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/reports", func(r chi.Router) {
			r.Get("/dashboard", handlers.NewGetDashboardHandler(svcs).Execute)
			r.Get("/items", handlers.NewGetItemReportHandler(svcs).Execute)
		})
	})
}
