package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopicSaleCreated is the Watermill topic published when a sale commits.
const TopicSaleCreated = "sale.created"

// SaleCreatedLine identifies one sold item so consumers can react to the
// stock change without re-reading the sale.
type SaleCreatedLine struct {
	ItemID uuid.UUID `json:"item_id"`
	Qty    int       `json:"qty"`
}

// SaleCreatedEvent is published in the same transaction that persists the
// sale, so it exists iff the sale does. Consumers subscribe via
// EventBus.Subscribe(ctx, events.TopicSaleCreated).
type SaleCreatedEvent struct {
	EventID     uuid.UUID         `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int               `json:"version"`  // Schema version; increment on breaking changes
	SaleID      uuid.UUID         `json:"sale_id"`
	CustomerID  uuid.UUID         `json:"customer_id"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Lines       []SaleCreatedLine `json:"lines"`
	OccurredAt  time.Time         `json:"occurred_at"`
}
