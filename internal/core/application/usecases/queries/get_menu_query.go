package queries

import (
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

// GetMenuQuery requests the menu of active products grouped by category.
//
//nolint:recvcheck //using for validation
type GetMenuQuery struct {
	guard.ConstructorGuard
}

func NewGetMenuQuery() (GetMenuQuery, error) {
	return GetMenuQuery{
		ConstructorGuard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetMenuQuery) Validate() error {
	return q.ConstructorGuard.Validate(errs.NewValueIsRequiredError("GetMenuQuery"))
}

// MenuProductResponse is one orderable product on the menu.
type MenuProductResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       int
	ImageURL    string
}

// GetMenuQueryResponse is one category with its active products.
type GetMenuQueryResponse struct {
	CategoryID   kernel.UUID
	CategoryName string
	Products     []MenuProductResponse
}
