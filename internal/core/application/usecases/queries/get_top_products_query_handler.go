package queries

import (
	"context"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetTopProductsQueryHandler ranks line snapshots by quantity sold.
type GetTopProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetTopProductsQueryHandler creates a handler for top product queries.
// Requires a GORM database connection for query execution.
func NewGetTopProductsQueryHandler(db *gorm.DB) GetTopProductsQueryHandler {
	return GetTopProductsQueryHandler{db: db}
}

// Handle executes the query to rank products by units sold in the range.
func (h GetTopProductsQueryHandler) Handle(
	ctx context.Context,
	query GetTopProductsQuery,
) ([]GetTopProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.name,
			SUM(l.quantity) AS quantity_sold,
			SUM(l.unit_price * l.quantity) AS revenue
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		WHERE o.status IN (?, ?)
		  AND o.created_at >= ?
		  AND o.created_at < ?
		GROUP BY l.name
		ORDER BY quantity_sold DESC, l.name
		LIMIT ?
	`, order.Sent, order.Ready, query.From(), query.To(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetTopProductsQueryResponse, 0)

	for rows.Next() {
		var (
			name         string
			quantitySold int
			revenue      int
		)

		if err = rows.Scan(&name, &quantitySold, &revenue); err != nil {
			return nil, err
		}

		products = append(products, GetTopProductsQueryResponse{
			Name:         name,
			QuantitySold: quantitySold,
			Revenue:      revenue,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
