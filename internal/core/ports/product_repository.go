package ports

import (
	"context"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the menu catalog:
// categories, products, and the price change history.
type ProductRepository interface {
	// Add persists a new product to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// AddCategory persists a new menu category.
	AddCategory(ctx context.Context, category *product.Category) error

	// GetCategory retrieves a category by its unique identifier.
	GetCategory(ctx context.Context, id kernel.UUID) (*product.Category, error)

	// AddPriceChange appends a record to the price change history.
	// History records are immutable once written.
	AddPriceChange(ctx context.Context, change *product.PriceChange) error
}
