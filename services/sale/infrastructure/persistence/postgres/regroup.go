package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/posledger/services/sale/domain/models"
)

// saleRow is one flat row from the sales/customers/sale_items join. Line
// columns are nullable: a sale with zero lines still produces one row, with
// every line column NULL.
type saleRow struct {
	SaleID        uuid.UUID
	CustomerID    uuid.UUID
	CustomerName  string
	CustomerPhone string
	SubTotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalAmount   decimal.Decimal
	Paid          decimal.Decimal
	Balance       decimal.Decimal
	SoldAt        time.Time

	LineID         uuid.NullUUID
	ItemID         uuid.NullUUID
	ItemName       *string
	CategoryID     uuid.NullUUID
	UnitPrice      decimal.NullDecimal
	Qty            *int
	DiscountAmount decimal.NullDecimal
	ItemTotal      decimal.NullDecimal
}

// regroupSales folds flat join rows back into nested sales. The first row
// seen for a sale ID creates the header; later rows only append lines.
// Output order is insertion order, which matches the query's ORDER BY because
// a sale's rows arrive contiguously. Sales with zero lines keep an empty,
// non-nil line slice.
func regroupSales(rows []saleRow) []*models.Sale {
	sales := make([]*models.Sale, 0)
	index := make(map[uuid.UUID]*models.Sale)

	for _, row := range rows {
		sale, ok := index[row.SaleID]
		if !ok {
			sale = &models.Sale{
				ID:            row.SaleID,
				CustomerID:    row.CustomerID,
				CustomerName:  row.CustomerName,
				CustomerPhone: row.CustomerPhone,
				SubTotal:      row.SubTotal,
				TotalDiscount: row.TotalDiscount,
				TotalAmount:   row.TotalAmount,
				Paid:          row.Paid,
				Balance:       row.Balance,
				SoldAt:        row.SoldAt,
				Lines:         []*models.SaleLine{},
			}
			index[row.SaleID] = sale
			sales = append(sales, sale)
		}

		if !row.LineID.Valid {
			continue // left join miss: header-only row
		}
		line := &models.SaleLine{
			ID:             row.LineID.UUID,
			SaleID:         row.SaleID,
			ItemID:         row.ItemID.UUID,
			CategoryID:     row.CategoryID.UUID,
			UnitPrice:      row.UnitPrice.Decimal,
			DiscountAmount: row.DiscountAmount.Decimal,
			ItemTotal:      row.ItemTotal.Decimal,
		}
		if row.ItemName != nil {
			line.ItemName = *row.ItemName
		}
		if row.Qty != nil {
			line.Qty = *row.Qty
		}
		sale.Lines = append(sale.Lines, line)
	}
	return sales
}
