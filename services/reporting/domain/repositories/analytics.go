package repositories

import (
	"context"

	"github.com/ghuser/posledger/services/reporting/domain/models"
)

// AnalyticsRepository reads cross-context aggregates for dashboards. Each
// method is one SQL pass; reporting never writes.
type AnalyticsRepository interface {
	Dashboard(ctx context.Context) (*models.DashboardReport, error)
	Items(ctx context.Context) (*models.ItemReport, error)
}
