package commands

import (
	"context"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles catalog product creation.
// The owning category must exist; the product starts active.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create product command.
// Fails with a not found error when the category does not exist.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	productRepo := uow.ProductRepository()

	if _, err := productRepo.GetCategory(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	price, err := kernel.NewPrice(cmd.Price())
	if err != nil {
		return err
	}

	aggregate, err := product.NewProduct(
		cmd.ProductID(), cmd.CategoryID(), cmd.Name(), cmd.Description(), price, cmd.ImageURL(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = productRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
