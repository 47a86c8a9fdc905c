package queries

import (
	"context"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single comanda with its lines.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single comanda queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one comanda by identifier.
// Returns ErrObjectNotFound when no comanda with the given identifier exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.room,
			o.customer_id,
			o.status,
			o.kitchen_notes,
			o.created_at,
			o.updated_at,
			o.ready_at,
			l.id,
			l.product_id,
			l.name,
			l.unit_price,
			l.quantity,
			l.notes
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.id = ?
		ORDER BY l.position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	var (
		found    bool
		response GetOrderQueryResponse
	)

	for rows.Next() {
		var (
			id           uuid.UUID
			room         *int
			customerID   *uuid.UUID
			status       int
			kitchenNotes string
			createdAt    time.Time
			updatedAt    time.Time
			readyAt      *time.Time
			lineID       *uuid.UUID
			productID    *uuid.UUID
			lineName     *string
			unitPrice    *int
			lineQuantity *int
			lineNotes    *string
		)

		err = rows.Scan(&id, &room, &customerID, &status, &kitchenNotes, &createdAt, &updatedAt, &readyAt,
			&lineID, &productID, &lineName, &unitPrice, &lineQuantity, &lineNotes)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}

		if !found {
			orderID, idErr := kernel.UUIDFromBytes(id[:])
			if idErr != nil {
				return GetOrderQueryResponse{}, idErr
			}

			response = GetOrderQueryResponse{
				ID:           orderID,
				Room:         room,
				Status:       order.Status(status).String(),
				KitchenNotes: kitchenNotes,
				CreatedAt:    createdAt,
				UpdatedAt:    updatedAt,
				ReadyAt:      readyAt,
				Lines:        make([]OrderLineResponse, 0),
			}
			if customerID != nil {
				cID, cErr := kernel.UUIDFromBytes((*customerID)[:])
				if cErr != nil {
					return GetOrderQueryResponse{}, cErr
				}
				response.CustomerID = &cID
			}
			found = true
		}

		if lineID == nil {
			continue
		}

		line := OrderLineResponse{
			Name:      *lineName,
			UnitPrice: *unitPrice,
			Quantity:  *lineQuantity,
			Subtotal:  *unitPrice * *lineQuantity,
		}
		line.ID, err = kernel.UUIDFromBytes((*lineID)[:])
		if err != nil {
			return GetOrderQueryResponse{}, err
		}
		if productID != nil {
			pID, pErr := kernel.UUIDFromBytes((*productID)[:])
			if pErr != nil {
				return GetOrderQueryResponse{}, pErr
			}
			line.ProductID = &pID
		}
		if lineNotes != nil {
			line.Notes = *lineNotes
		}
		response.Lines = append(response.Lines, line)
		response.Total += line.Subtotal
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if !found {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	return response, nil
}
