package models

import "github.com/shopspring/decimal"

// DashboardReport is the back-office landing page snapshot. Change fields
// compare against the state one month ago: customer and stock changes count
// records touched in the last month, the sales change compares today's total
// to the total on the same day a month earlier.
type DashboardReport struct {
	ActiveCustomers       int             `json:"activeCustomers"`
	ActiveCustomersChange int             `json:"activeCustomersChange"`
	UnitsInStock          int             `json:"unitsInStock"`
	UnitsInStockChange    int             `json:"unitsInStockChange"`
	TodaySalesTotal       decimal.Decimal `json:"todaySalesTotal"`
	TodaySalesChange      decimal.Decimal `json:"todaySalesChange"`
}

// ItemReport aggregates the catalog: how many items, how much stock, across
// how many categories, and what the held stock is worth at current prices.
type ItemReport struct {
	ItemCount      int             `json:"itemCount"`
	UnitsInStock   int             `json:"unitsInStock"`
	CategoryCount  int             `json:"categoryCount"`
	StockValuation decimal.Decimal `json:"stockValuation"`
}
