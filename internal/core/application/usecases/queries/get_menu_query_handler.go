package queries

import (
	"context"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuQueryHandler reads the active menu from the database.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query to retrieve active products grouped by category.
// Categories without active products are omitted.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			p.id,
			p.name,
			p.description,
			p.price,
			p.image_url
		FROM categories c
		JOIN products p ON p.category_id = c.id
		WHERE p.active
		ORDER BY c.name, c.id, p.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menu := make([]GetMenuQueryResponse, 0)

	for rows.Next() {
		var (
			categoryID   uuid.UUID
			categoryName string
			productID    uuid.UUID
			name         string
			description  string
			price        int
			imageURL     string
		)

		err = rows.Scan(&categoryID, &categoryName, &productID, &name, &description, &price, &imageURL)
		if err != nil {
			return nil, err
		}

		cID, idErr := kernel.UUIDFromBytes(categoryID[:])
		if idErr != nil {
			return nil, idErr
		}
		pID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		if len(menu) == 0 || !menu[len(menu)-1].CategoryID.IsEqual(cID) {
			menu = append(menu, GetMenuQueryResponse{
				CategoryID:   cID,
				CategoryName: categoryName,
				Products:     make([]MenuProductResponse, 0),
			})
		}

		current := &menu[len(menu)-1]
		current.Products = append(current.Products, MenuProductResponse{
			ID:          pID,
			Name:        name,
			Description: description,
			Price:       price,
			ImageURL:    imageURL,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menu, nil
}
