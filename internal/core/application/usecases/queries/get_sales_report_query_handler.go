package queries

import (
	"context"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetSalesReportQueryHandler aggregates revenue from stored line snapshots.
// Only comandas that reached the kitchen count: Sent and Ready.
type GetSalesReportQueryHandler struct {
	db *gorm.DB
}

// NewGetSalesReportQueryHandler creates a handler for sales report queries.
// Requires a GORM database connection for query execution.
func NewGetSalesReportQueryHandler(db *gorm.DB) GetSalesReportQueryHandler {
	return GetSalesReportQueryHandler{db: db}
}

// Handle executes the query to aggregate revenue per period.
// Buckets with no sales are omitted.
func (h GetSalesReportQueryHandler) Handle(
	ctx context.Context,
	query GetSalesReportQuery,
) ([]GetSalesReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// groupBy is constrained to day|week at construction, safe to splice
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			date_trunc('`+query.GroupBy()+`', o.created_at) AS period_start,
			COUNT(DISTINCT o.id) AS orders_count,
			COALESCE(SUM(l.unit_price * l.quantity), 0) AS revenue
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.status IN (?, ?)
		  AND o.created_at >= ?
		  AND o.created_at < ?
		GROUP BY period_start
		ORDER BY period_start
	`, order.Sent, order.Ready, query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]GetSalesReportQueryResponse, 0)

	for rows.Next() {
		var (
			periodStart time.Time
			ordersCount int
			revenue     int
		)

		if err = rows.Scan(&periodStart, &ordersCount, &revenue); err != nil {
			return nil, err
		}

		report = append(report, GetSalesReportQueryResponse{
			PeriodStart: periodStart,
			OrdersCount: ordersCount,
			Revenue:     revenue,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
