package commands

import (
	"context"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
)

// ReplaceLinesCommandHandler handles wholesale line replacement on a Draft
// comanda. Lines referencing a catalog product get their name and unit
// price snapshotted from the catalog at this moment; the snapshot never
// changes afterwards, no matter what happens to the product.
type ReplaceLinesCommandHandler struct {
	uowFactory OrderCatalogUoWFactory
}

// NewReplaceLinesCommandHandler creates a handler for line replacement.
// Requires an OrderCatalogUoWFactory because snapshot resolution reads the
// catalog inside the same transaction.
func NewReplaceLinesCommandHandler(uowFactory OrderCatalogUoWFactory) ReplaceLinesCommandHandler {
	return ReplaceLinesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the replace lines command.
// Fails with an invalid state error when the comanda is no longer Draft,
// and with a validation error when a referenced product is missing or
// inactive.
func (h *ReplaceLinesCommandHandler) Handle(ctx context.Context, cmd ReplaceLinesCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	lines, err := h.buildLines(ctx, uow, cmd.Lines())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.ReplaceLines(lines, now); err != nil {
		return err
	}
	if err = aggregate.SetKitchenNotes(cmd.KitchenNotes(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// buildLines turns line inputs into domain lines, resolving catalog
// snapshots for product-backed entries.
func (h *ReplaceLinesCommandHandler) buildLines(
	ctx context.Context,
	uow OrderCatalogUoW,
	inputs []LineInput,
) ([]*order.Line, error) {
	productRepo := uow.ProductRepository()

	lines := make([]*order.Line, 0, len(inputs))
	for _, input := range inputs {
		name := input.Name
		priceAmount := input.UnitPrice

		if input.ProductID != nil {
			product, err := productRepo.Get(ctx, *input.ProductID)
			if err != nil {
				return nil, err
			}
			if !product.IsActive() {
				return nil, errs.NewValueIsInvalidError("productID")
			}
			name = product.Name()
			priceAmount = product.Price().Amount()
		}

		unitPrice, err := kernel.NewPrice(priceAmount)
		if err != nil {
			return nil, err
		}
		quantity, err := kernel.NewQuantity(input.Quantity)
		if err != nil {
			return nil, err
		}

		line, err := order.NewLine(kernel.NewUUID(), input.ProductID, name, unitPrice, quantity, input.Notes)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
