package queries

import (
	"context"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetKitchenOrdersQueryHandler reads the kitchen queue from the database.
// Uses a single join over comandas and their lines for one round trip.
type GetKitchenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenOrdersQueryHandler creates a handler for kitchen queue queries.
// Requires a GORM database connection for query execution.
func NewGetKitchenOrdersQueryHandler(db *gorm.DB) GetKitchenOrdersQueryHandler {
	return GetKitchenOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all Sent comandas.
// Results are ordered by creation time ascending; elapsed seconds are
// computed against the current clock.
func (h GetKitchenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenOrdersQuery,
) ([]GetKitchenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.room,
			o.customer_id,
			o.kitchen_notes,
			o.created_at,
			l.name,
			l.quantity,
			l.notes
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.status = ?
		ORDER BY o.created_at, o.id, l.position
	`, order.Sent).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now().UTC()
	orders := make([]GetKitchenOrdersQueryResponse, 0)

	for rows.Next() {
		var (
			id           uuid.UUID
			room         *int
			customerID   *uuid.UUID
			kitchenNotes string
			createdAt    time.Time
			lineName     *string
			lineQuantity *int
			lineNotes    *string
		)

		err = rows.Scan(&id, &room, &customerID, &kitchenNotes, &createdAt, &lineName, &lineQuantity, &lineNotes)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		if len(orders) == 0 || !orders[len(orders)-1].ID.IsEqual(orderID) {
			resp := GetKitchenOrdersQueryResponse{
				ID:             orderID,
				Room:           room,
				KitchenNotes:   kitchenNotes,
				CreatedAt:      createdAt,
				ElapsedSeconds: max(int64(now.Sub(createdAt).Seconds()), 0),
				Lines:          make([]KitchenOrderLineResponse, 0),
			}
			if customerID != nil {
				cID, cErr := kernel.UUIDFromBytes((*customerID)[:])
				if cErr != nil {
					return nil, cErr
				}
				resp.CustomerID = &cID
			}
			orders = append(orders, resp)
		}

		// left join: a comanda without lines yields one row with NULL line columns
		if lineName != nil && lineQuantity != nil {
			current := &orders[len(orders)-1]
			line := KitchenOrderLineResponse{
				Name:     *lineName,
				Quantity: *lineQuantity,
			}
			if lineNotes != nil {
				line.Notes = *lineNotes
			}
			current.Lines = append(current.Lines, line)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
