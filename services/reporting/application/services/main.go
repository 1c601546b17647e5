package services

import (
	"github.com/ghuser/posledger/pkg/app"
	"github.com/ghuser/posledger/services/reporting/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Reporting *ReportingService
}

// New wires the reporting service with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewAnalyticsRepository(a.Db)
	return &Services{
		Reporting: NewReportingService(repo),
	}
}
