package commands

import (
	"context"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
)

// VoidOrderCommandHandler handles the Sent to Void transition.
// Shares the compare-and-swap contract with MarkOrderReadyCommandHandler:
// when ready and void race over the same comanda, exactly one applies.
type VoidOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewVoidOrderCommandHandler creates a handler for voiding comandas.
func NewVoidOrderCommandHandler(uowFactory OrderUoWFactory) VoidOrderCommandHandler {
	return VoidOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the void command.
// Fails with a not found error for an unknown comanda and an invalid state
// error when the comanda is not Sent.
func (h *VoidOrderCommandHandler) Handle(ctx context.Context, cmd VoidOrderCommand) error {
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

	applied, err := orderRepo.UpdateStatus(ctx, cmd.OrderID(), order.Sent, order.Void, time.Now().UTC())
	if err != nil {
		return err
	}
	if !applied {
		aggregate, getErr := orderRepo.Get(ctx, cmd.OrderID())
		if getErr != nil {
			return getErr
		}
		return errs.NewInvalidStateError("void", aggregate.Status().String())
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
