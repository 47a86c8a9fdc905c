// Package productrepo provides data transfer objects and mapping functions
// for catalog persistence: categories, products and their price history.
package productrepo

import (
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for persisting menu categories.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex"`
	Description string
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

// ProductDTO represents the database structure for persisting products.
// Price is the current price in whole pesos; older prices live in price_changes.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string
	Price       int
	ImageURL    string
	Active      bool
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// PriceChangeDTO represents one recorded price change of a product.
type PriceChangeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	OldPrice  int
	NewPrice  int
	Reason    string
	ChangedBy uuid.UUID `gorm:"type:uuid"`
	ChangedAt time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for price changes.
func (PriceChangeDTO) TableName() string {
	return "price_changes"
}

func categoryFromDomain(aggregate *product.Category) CategoryDTO {
	return CategoryDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func categoryToDomain(dto CategoryDTO) (*product.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreCategory(id, dto.Name, dto.Description, dto.CreatedAt)
}

func productFromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		CategoryID:  aggregate.CategoryID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().Amount(),
		ImageURL:    aggregate.ImageURL(),
		Active:      aggregate.IsActive(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func productToDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, categoryID, dto.Name, dto.Description, price, dto.ImageURL, dto.Active, dto.CreatedAt)
}

func priceChangeFromDomain(aggregate *product.PriceChange) PriceChangeDTO {
	return PriceChangeDTO{
		ID:        aggregate.ID().Bytes(),
		ProductID: aggregate.ProductID().Bytes(),
		OldPrice:  aggregate.OldPrice().Amount(),
		NewPrice:  aggregate.NewPrice().Amount(),
		Reason:    aggregate.Reason(),
		ChangedBy: aggregate.ChangedBy().Bytes(),
		ChangedAt: aggregate.ChangedAt(),
	}
}
