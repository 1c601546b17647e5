package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogmodels "github.com/ghuser/posledger/services/catalog/domain/models"
)

// Sale is a committed transaction header plus its owned line items.
// Monetary fields are exact decimals; the header totals always satisfy
// TotalAmount = SubTotal - TotalDiscount and Balance = TotalAmount - Paid.
// A sale is immutable after creation except for Paid/Balance, which change
// only through the payment-update operation.
type Sale struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customerId"`
	CustomerName  string          `json:"customerName,omitempty"`  // denormalized on reads
	CustomerPhone string          `json:"customerPhone,omitempty"` // denormalized on reads
	SubTotal      decimal.Decimal `json:"subTotal"`
	TotalDiscount decimal.Decimal `json:"totalDiscount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Paid          decimal.Decimal `json:"paid"`
	Balance       decimal.Decimal `json:"balance"`
	SoldAt        time.Time       `json:"soldAt"`
	Lines         []*SaleLine     `json:"lines"`
}

// SaleLine is one priced line within a sale. Item name, unit price, and
// category are snapshotted at sale time so historical sales stay stable when
// the catalog changes. Lines are never mutated after creation.
type SaleLine struct {
	ID             uuid.UUID       `json:"id"`
	SaleID         uuid.UUID       `json:"saleId"`
	ItemID         uuid.UUID       `json:"itemId"`
	ItemName       string          `json:"itemName"`
	CategoryID     uuid.UUID       `json:"categoryId"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Qty            int             `json:"qty"`
	DiscountAmount decimal.Decimal `json:"discountAmount"` // per-unit discount actually applied
	ItemTotal      decimal.Decimal `json:"itemTotal"`      // (UnitPrice - DiscountAmount) * Qty
}

// SaleDraft accumulates priced lines and running totals while the coordinator
// walks a sale request. Build seals it into a Sale.
type SaleDraft struct {
	saleID        uuid.UUID
	customerID    uuid.UUID
	subTotal      decimal.Decimal
	totalDiscount decimal.Decimal
	totalAmount   decimal.Decimal
	paid          decimal.Decimal
	lines         []*SaleLine
}

// NewSaleDraft starts a draft for the given customer. The sale ID is assigned
// here so lines can reference it before anything is persisted.
func NewSaleDraft(customerID uuid.UUID, paid decimal.Decimal) *SaleDraft {
	return &SaleDraft{
		saleID:     uuid.New(),
		customerID: customerID,
		paid:       paid,
	}
}

// AddLine prices one line from a catalog snapshot and folds it into the
// running totals. perUnitDiscount is the discount-rule result for qty
// (zero when the threshold is not met). All arithmetic is exact decimal.
func (d *SaleDraft) AddLine(item *catalogmodels.Item, qty int, perUnitDiscount decimal.Decimal) *SaleLine {
	qtyDec := decimal.NewFromInt(int64(qty))
	lineTotal := item.UnitPrice.Sub(perUnitDiscount).Mul(qtyDec)

	line := &SaleLine{
		ID:             uuid.New(),
		SaleID:         d.saleID,
		ItemID:         item.ID,
		ItemName:       item.Name,
		CategoryID:     item.CategoryID,
		UnitPrice:      item.UnitPrice,
		Qty:            qty,
		DiscountAmount: perUnitDiscount,
		ItemTotal:      lineTotal,
	}

	d.subTotal = d.subTotal.Add(item.UnitPrice.Mul(qtyDec))
	d.totalDiscount = d.totalDiscount.Add(perUnitDiscount.Mul(qtyDec))
	d.totalAmount = d.totalAmount.Add(lineTotal)
	d.lines = append(d.lines, line)
	return line
}

// LineCount returns the number of lines added so far.
func (d *SaleDraft) LineCount() int {
	return len(d.lines)
}

// Build seals the draft into an immutable Sale with Balance = TotalAmount - Paid.
func (d *SaleDraft) Build(soldAt time.Time) *Sale {
	return &Sale{
		ID:            d.saleID,
		CustomerID:    d.customerID,
		SubTotal:      d.subTotal,
		TotalDiscount: d.totalDiscount,
		TotalAmount:   d.totalAmount,
		Paid:          d.paid,
		Balance:       d.totalAmount.Sub(d.paid),
		SoldAt:        soldAt,
		Lines:         d.lines,
	}
}
