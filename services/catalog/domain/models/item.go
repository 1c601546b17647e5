package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is the catalog aggregate: a sellable unit with live stock and an
// optional quantity-threshold discount.
type Item struct {
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	UnitPrice            decimal.Decimal `json:"unitPrice"`
	StockAvailable       int             `json:"stockAvailable"`
	DiscountRate         decimal.Decimal `json:"discountRate"`         // per-unit discount when the threshold is met
	DiscountThresholdQty int             `json:"discountThresholdQty"` // minimum line quantity to trigger the discount
	CategoryID           uuid.UUID       `json:"categoryId"`
	LastUpdatedAt        time.Time       `json:"lastUpdatedAt"`
}

// NewItem constructs a valid Item with a generated ID and current timestamp.
func NewItem(name string, unitPrice decimal.Decimal, stock int, discountRate decimal.Decimal, discountThresholdQty int, categoryID uuid.UUID) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("item name is required")
	}
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price must not be negative")
	}
	if stock < 0 {
		return nil, fmt.Errorf("stock must not be negative")
	}
	if discountRate.IsNegative() {
		return nil, fmt.Errorf("discount rate must not be negative")
	}
	if discountRate.GreaterThan(unitPrice) {
		return nil, fmt.Errorf("discount rate must not exceed unit price")
	}
	if discountThresholdQty < 0 {
		return nil, fmt.Errorf("discount threshold must not be negative")
	}

	return &Item{
		ID:                   uuid.New(),
		Name:                 strings.TrimSpace(name),
		UnitPrice:            unitPrice,
		StockAvailable:       stock,
		DiscountRate:         discountRate,
		DiscountThresholdQty: discountThresholdQty,
		CategoryID:           categoryID,
		LastUpdatedAt:        time.Now().UTC(),
	}, nil
}

// DiscountFor evaluates the item's discount rule for a requested quantity.
// The per-unit discount applies iff qty >= DiscountThresholdQty; otherwise
// zero. Pure function, no side effects.
func (i *Item) DiscountFor(qty int) decimal.Decimal {
	if qty >= i.DiscountThresholdQty {
		return i.DiscountRate
	}
	return decimal.Zero
}
