package commands

import (
	"context"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/product"
)

// ChangeProductPriceCommandHandler handles product repricing.
// The product update and the history record are written in one transaction,
// so the history never misses a change and never records one that did not
// take effect.
type ChangeProductPriceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewChangeProductPriceCommandHandler creates a handler for price changes.
func NewChangeProductPriceCommandHandler(uowFactory CatalogUoWFactory) ChangeProductPriceCommandHandler {
	return ChangeProductPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the change price command.
// Fails with a not found error for an unknown product and a validation
// error when the new price equals the current one.
func (h *ChangeProductPriceCommandHandler) Handle(ctx context.Context, cmd ChangeProductPriceCommand) error {
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
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	newPrice, err := kernel.NewPrice(cmd.NewPrice())
	if err != nil {
		return err
	}

	oldPrice, err := aggregate.ChangePrice(newPrice)
	if err != nil {
		return err
	}

	change, err := product.NewPriceChange(
		kernel.NewUUID(), aggregate.ID(), oldPrice, newPrice, cmd.Reason(), cmd.ChangedBy(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = productRepo.AddPriceChange(ctx, change); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
