package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/posledger/pkg/database"
	"github.com/ghuser/posledger/pkg/events"
	"github.com/ghuser/posledger/pkg/pagination"
	saledomain "github.com/ghuser/posledger/services/sale/domain"
	domainevents "github.com/ghuser/posledger/services/sale/domain/events"
	"github.com/ghuser/posledger/services/sale/domain/models"
)

// saleJoin selects flat sale rows: header + denormalized customer + lines.
// The LEFT JOIN keeps zero-line sales in the result with NULL line columns.
// Total count windows over the page CTE filter, not the joined rows.
const saleJoin = `
	SELECT p.sale_id, p.customer_id, c.name, c.telephone,
	       p.sub_total, p.total_discount, p.total_amount, p.paid, p.balance, p.sold_at,
	       p.total_count,
	       l.sale_item_id, l.item_id, l.item_name, l.category_id,
	       l.unit_price, l.qty, l.discount_amount, l.item_total
	FROM page p
	JOIN customers c ON c.customer_id = p.customer_id
	LEFT JOIN sale_items l ON l.sale_id = p.sale_id
	ORDER BY p.sold_at DESC, p.sale_id DESC, l.line_no`

// SaleRepository implements repositories.SaleRepository against PostgreSQL.
// Writes go through the caller's transaction; a SaleCreatedEvent is published
// through the Watermill outbox in that same transaction, so the event exists
// iff the sale does.
type SaleRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewSaleRepository returns a SaleRepository backed by the given connection
// pool and event bus. Pass a nil bus to disable event publishing (tests).
func NewSaleRepository(db *database.Database, bus *events.EventBus) *SaleRepository {
	return &SaleRepository{db: db, bus: bus}
}

// InsertTx writes the sale header, then every line, through q. Publishing
// piggybacks on the caller's *sql.Tx when the Queryer is one.
func (r *SaleRepository) InsertTx(ctx context.Context, q database.Queryer, sale *models.Sale) error {
	if len(sale.Lines) == 0 {
		return saledomain.ErrEmptySale
	}

	if _, err := q.ExecContext(ctx, `
		INSERT INTO sales (sale_id, customer_id, sub_total, total_discount, total_amount, paid, balance, sold_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		sale.ID, sale.CustomerID, sale.SubTotal, sale.TotalDiscount,
		sale.TotalAmount, sale.Paid, sale.Balance, sale.SoldAt,
	); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	// line_no preserves submission order so reads return lines as sold.
	for i, line := range sale.Lines {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO sale_items (sale_item_id, sale_id, line_no, item_id, item_name, category_id, unit_price, qty, discount_amount, item_total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			line.ID, line.SaleID, i+1, line.ItemID, line.ItemName, line.CategoryID,
			line.UnitPrice, line.Qty, line.DiscountAmount, line.ItemTotal,
		); err != nil {
			return fmt.Errorf("insert sale line: %w", err)
		}
	}

	if r.bus != nil {
		tx, ok := q.(*sql.Tx)
		if !ok {
			return fmt.Errorf("insert sale: queryer is not a transaction, cannot publish")
		}
		if err := r.publishCreated(tx, sale); err != nil {
			return fmt.Errorf("publish sale created: %w", err)
		}
	}
	return nil
}

// GetByID returns one sale with its lines, or ErrSaleNotFound.
func (r *SaleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	sales, _, err := r.querySales(ctx, `
		WITH page AS (
			SELECT *, 1 AS total_count FROM sales WHERE sale_id = $1
		)`+saleJoin,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, saledomain.ErrSaleNotFound
	}
	return sales[0], nil
}

// ListAll returns one page of sales, newest first, plus the total sale count.
func (r *SaleRepository) ListAll(ctx context.Context, page int) ([]*models.Sale, int, error) {
	sales, total, err := r.querySales(ctx, `
		WITH page AS (
			SELECT *, COUNT(*) OVER() AS total_count
			FROM sales
			ORDER BY sold_at DESC, sale_id DESC
			LIMIT $1 OFFSET $2
		)`+saleJoin,
		pagination.PageSize, pagination.Offset(page),
	)
	if err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

// ListByCustomerPhone is ListAll restricted to one customer's telephone.
func (r *SaleRepository) ListByCustomerPhone(ctx context.Context, telephone string, page int) ([]*models.Sale, int, error) {
	sales, total, err := r.querySales(ctx, `
		WITH page AS (
			SELECT s.*, COUNT(*) OVER() AS total_count
			FROM sales s
			JOIN customers c ON c.customer_id = s.customer_id
			WHERE c.telephone = $1
			ORDER BY s.sold_at DESC, s.sale_id DESC
			LIMIT $2 OFFSET $3
		)`+saleJoin,
		telephone, pagination.PageSize, pagination.Offset(page),
	)
	if err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

// ListRecent returns the latest limit sales without the pagination envelope.
func (r *SaleRepository) ListRecent(ctx context.Context, limit int) ([]*models.Sale, error) {
	sales, _, err := r.querySales(ctx, `
		WITH page AS (
			SELECT *, COUNT(*) OVER() AS total_count
			FROM sales
			ORDER BY sold_at DESC, sale_id DESC
			LIMIT $1
		)`+saleJoin,
		limit,
	)
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// UpdatePayment overwrites only the paid and balance columns.
func (r *SaleRepository) UpdatePayment(ctx context.Context, id uuid.UUID, paid, balance decimal.Decimal) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE sales SET paid = $2, balance = $3 WHERE sale_id = $1`,
		id, paid, balance,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return saledomain.ErrSaleNotFound
	}
	return nil
}

// querySales runs a flat-join query and re-groups the rows into nested sales.
func (r *SaleRepository) querySales(ctx context.Context, query string, args ...any) ([]*models.Sale, int, error) {
	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var flat []saleRow
	var total int
	for rows.Next() {
		var sr saleRow
		if err := rows.Scan(
			&sr.SaleID, &sr.CustomerID, &sr.CustomerName, &sr.CustomerPhone,
			&sr.SubTotal, &sr.TotalDiscount, &sr.TotalAmount, &sr.Paid, &sr.Balance, &sr.SoldAt,
			&total,
			&sr.LineID, &sr.ItemID, &sr.ItemName, &sr.CategoryID,
			&sr.UnitPrice, &sr.Qty, &sr.DiscountAmount, &sr.ItemTotal,
		); err != nil {
			return nil, 0, fmt.Errorf("scan sale row: %w", err)
		}
		flat = append(flat, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate sales: %w", err)
	}
	return regroupSales(flat), total, nil
}

func (r *SaleRepository) publishCreated(tx *sql.Tx, sale *models.Sale) error {
	lines := make([]domainevents.SaleCreatedLine, len(sale.Lines))
	for i, l := range sale.Lines {
		lines[i] = domainevents.SaleCreatedLine{ItemID: l.ItemID, Qty: l.Qty}
	}
	event := domainevents.SaleCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		SaleID:      sale.ID,
		CustomerID:  sale.CustomerID,
		TotalAmount: sale.TotalAmount,
		Lines:       lines,
		OccurredAt:  sale.SoldAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicSaleCreated, msg)
}
