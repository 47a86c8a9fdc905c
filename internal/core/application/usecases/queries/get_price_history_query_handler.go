package queries

import (
	"context"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPriceHistoryQueryHandler reads recorded price changes of a product.
type GetPriceHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetPriceHistoryQueryHandler creates a handler for price history queries.
// Requires a GORM database connection for query execution.
func NewGetPriceHistoryQueryHandler(db *gorm.DB) GetPriceHistoryQueryHandler {
	return GetPriceHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve price changes, newest first.
// Returns ErrObjectNotFound when the product does not exist.
func (h GetPriceHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetPriceHistoryQuery,
) ([]GetPriceHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM products WHERE id = ?
	`, query.ProductID().Bytes()).Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("productID", query.ProductID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, old_price, new_price, reason, changed_by, changed_at
		FROM price_changes
		WHERE product_id = ?
		ORDER BY changed_at DESC, id
	`, query.ProductID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]GetPriceHistoryQueryResponse, 0)

	for rows.Next() {
		var (
			id        uuid.UUID
			oldPrice  int
			newPrice  int
			reason    string
			changedBy *uuid.UUID
			changedAt time.Time
		)

		err = rows.Scan(&id, &oldPrice, &newPrice, &reason, &changedBy, &changedAt)
		if err != nil {
			return nil, err
		}

		changeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		change := GetPriceHistoryQueryResponse{
			ID:        changeID,
			OldPrice:  oldPrice,
			NewPrice:  newPrice,
			Reason:    reason,
			ChangedAt: changedAt,
		}
		if changedBy != nil {
			staffID, sErr := kernel.UUIDFromBytes((*changedBy)[:])
			if sErr != nil {
				return nil, sErr
			}
			change.ChangedBy = &staffID
		}
		history = append(history, change)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
