package commands

import (
	"context"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/product"
)

// CreateCategoryCommandHandler handles menu category creation.
type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create category command.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	category, err := product.NewCategory(cmd.CategoryID(), cmd.Name(), cmd.Description(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().AddCategory(ctx, category); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
