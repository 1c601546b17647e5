package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func headerRow(saleID, customerID uuid.UUID, soldAt time.Time) saleRow {
	return saleRow{
		SaleID:        saleID,
		CustomerID:    customerID,
		CustomerName:  "Nimal Perera",
		CustomerPhone: "0771234567",
		SubTotal:      decimal.RequireFromString("500.00"),
		TotalDiscount: decimal.RequireFromString("50.00"),
		TotalAmount:   decimal.RequireFromString("450.00"),
		Paid:          decimal.RequireFromString("450.00"),
		Balance:       decimal.Zero,
		SoldAt:        soldAt,
	}
}

func withLine(row saleRow, itemName string, qty int) saleRow {
	row.LineID = uuid.NullUUID{UUID: uuid.New(), Valid: true}
	row.ItemID = uuid.NullUUID{UUID: uuid.New(), Valid: true}
	row.ItemName = &itemName
	row.CategoryID = uuid.NullUUID{UUID: uuid.New(), Valid: true}
	row.UnitPrice = decimal.NullDecimal{Decimal: decimal.RequireFromString("100.00"), Valid: true}
	row.Qty = &qty
	row.DiscountAmount = decimal.NullDecimal{Decimal: decimal.RequireFromString("10.00"), Valid: true}
	row.ItemTotal = decimal.NullDecimal{Decimal: decimal.RequireFromString("90.00"), Valid: true}
	return row
}

func TestRegroupSales_MultipleLinesFoldIntoOneSale(t *testing.T) {
	saleID := uuid.New()
	customerID := uuid.New()
	soldAt := time.Now().UTC()
	base := headerRow(saleID, customerID, soldAt)

	rows := []saleRow{
		withLine(base, "Pen", 2),
		withLine(base, "Notebook", 1),
		withLine(base, "Eraser", 3),
	}

	sales := regroupSales(rows)
	if len(sales) != 1 {
		t.Fatalf("expected 1 sale, got %d", len(sales))
	}
	sale := sales[0]
	if sale.ID != saleID {
		t.Errorf("expected sale ID %v, got %v", saleID, sale.ID)
	}
	if len(sale.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(sale.Lines))
	}
	// Lines keep row order.
	wantNames := []string{"Pen", "Notebook", "Eraser"}
	for i, want := range wantNames {
		if sale.Lines[i].ItemName != want {
			t.Errorf("line %d: expected item %q, got %q", i, want, sale.Lines[i].ItemName)
		}
	}
	if sale.CustomerName != "Nimal Perera" || sale.CustomerPhone != "0771234567" {
		t.Errorf("customer denormalization lost: %q %q", sale.CustomerName, sale.CustomerPhone)
	}
}

func TestRegroupSales_ZeroLineSaleSurvives(t *testing.T) {
	// A header-only row from the LEFT JOIN: all line columns NULL.
	row := headerRow(uuid.New(), uuid.New(), time.Now().UTC())

	sales := regroupSales([]saleRow{row})
	if len(sales) != 1 {
		t.Fatalf("expected 1 sale, got %d", len(sales))
	}
	if sales[0].Lines == nil {
		t.Fatal("expected non-nil empty line slice")
	}
	if len(sales[0].Lines) != 0 {
		t.Fatalf("expected 0 lines, got %d", len(sales[0].Lines))
	}
}

func TestRegroupSales_PreservesSaleOrder(t *testing.T) {
	soldAt := time.Now().UTC()
	first := headerRow(uuid.New(), uuid.New(), soldAt)
	second := headerRow(uuid.New(), uuid.New(), soldAt.Add(-time.Hour))
	third := headerRow(uuid.New(), uuid.New(), soldAt.Add(-2*time.Hour))

	rows := []saleRow{
		withLine(first, "Pen", 1),
		withLine(first, "Ruler", 2),
		second, // zero-line sale between two with lines
		withLine(third, "Notebook", 1),
	}

	sales := regroupSales(rows)
	if len(sales) != 3 {
		t.Fatalf("expected 3 sales, got %d", len(sales))
	}
	if sales[0].ID != first.SaleID || sales[1].ID != second.SaleID || sales[2].ID != third.SaleID {
		t.Error("sales not in row order")
	}
	if len(sales[0].Lines) != 2 || len(sales[1].Lines) != 0 || len(sales[2].Lines) != 1 {
		t.Errorf("line counts wrong: %d, %d, %d",
			len(sales[0].Lines), len(sales[1].Lines), len(sales[2].Lines))
	}
}

func TestRegroupSales_Empty(t *testing.T) {
	sales := regroupSales(nil)
	if sales == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(sales) != 0 {
		t.Fatalf("expected 0 sales, got %d", len(sales))
	}
}
