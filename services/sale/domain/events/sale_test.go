package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/posledger/services/sale/domain/events"
)

func TestSaleCreatedEvent_JSONRoundTrip(t *testing.T) {
	original := events.SaleCreatedEvent{
		EventID:     uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		Version:     1,
		SaleID:      uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		CustomerID:  uuid.MustParse("660e8400-e29b-41d4-a716-446655440000"),
		TotalAmount: decimal.RequireFromString("450.00"),
		Lines: []events.SaleCreatedLine{
			{ItemID: uuid.MustParse("770e8400-e29b-41d4-a716-446655440000"), Qty: 5},
		},
		OccurredAt: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.SaleCreatedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	if decoded.SaleID != original.SaleID {
		t.Errorf("SaleID: got %v, want %v", decoded.SaleID, original.SaleID)
	}
	if !decoded.TotalAmount.Equal(original.TotalAmount) {
		t.Errorf("TotalAmount: got %s, want %s", decoded.TotalAmount, original.TotalAmount)
	}
	if len(decoded.Lines) != 1 || decoded.Lines[0].Qty != 5 {
		t.Errorf("Lines: got %+v, want one line with qty 5", decoded.Lines)
	}
	if !decoded.OccurredAt.Equal(original.OccurredAt) {
		t.Errorf("OccurredAt: got %v, want %v", decoded.OccurredAt, original.OccurredAt)
	}
}

func TestSaleCreatedEvent_JSONFieldNames(t *testing.T) {
	evt := events.SaleCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		SaleID:     uuid.New(),
		CustomerID: uuid.New(),
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "sale_id", "customer_id", "total_amount", "lines", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q, got keys %v", field, keysOf(raw))
		}
	}
}

func keysOf(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
