package postgres

import (
	"context"
	"fmt"

	"github.com/ghuser/posledger/pkg/database"
	"github.com/ghuser/posledger/services/reporting/domain/models"
)

// AnalyticsRepository implements repositories.AnalyticsRepository against
// PostgreSQL. Aggregates read across the catalog, customer, and sale tables;
// this is the one place that is allowed to.
type AnalyticsRepository struct {
	db *database.Database
}

// NewAnalyticsRepository returns an AnalyticsRepository backed by the given pool.
func NewAnalyticsRepository(db *database.Database) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// Dashboard computes the landing-page metrics in one query pass.
func (r *AnalyticsRepository) Dashboard(ctx context.Context) (*models.DashboardReport, error) {
	var rep models.DashboardReport
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM customers WHERE is_active),
			(SELECT COUNT(*) FROM customers WHERE is_active AND last_updated >= now() - interval '1 month'),
			(SELECT COALESCE(SUM(stock_available), 0) FROM items),
			(SELECT COALESCE(SUM(stock_available), 0) FROM items WHERE last_updated_at >= now() - interval '1 month'),
			(SELECT COALESCE(SUM(total_amount), 0) FROM sales WHERE sold_at::date = now()::date),
			(SELECT COALESCE(SUM(total_amount), 0) FROM sales WHERE sold_at::date = (now() - interval '1 month')::date)`,
	).Scan(
		&rep.ActiveCustomers, &rep.ActiveCustomersChange,
		&rep.UnitsInStock, &rep.UnitsInStockChange,
		&rep.TodaySalesTotal, &rep.TodaySalesChange,
	)
	if err != nil {
		return nil, fmt.Errorf("query dashboard report: %w", err)
	}
	// Change fields report the delta, not the earlier value.
	rep.TodaySalesChange = rep.TodaySalesTotal.Sub(rep.TodaySalesChange)
	return &rep, nil
}

// Items computes the catalog aggregates in one query pass.
func (r *AnalyticsRepository) Items(ctx context.Context) (*models.ItemReport, error) {
	var rep models.ItemReport
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(stock_available), 0),
			COUNT(DISTINCT category_id),
			COALESCE(SUM(stock_available * unit_price), 0)
		FROM items`,
	).Scan(&rep.ItemCount, &rep.UnitsInStock, &rep.CategoryCount, &rep.StockValuation)
	if err != nil {
		return nil, fmt.Errorf("query item report: %w", err)
	}
	return &rep, nil
}
