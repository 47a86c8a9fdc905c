package commands

import (
	"context"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
)

// MarkOrderReadyCommandHandler handles the Sent to Ready transition.
// The write is a compare-and-swap against the Sent status, so concurrent
// ready and void requests for the same comanda see exactly one winner; the
// loser observes an invalid state error with the status that won.
type MarkOrderReadyCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderReadyCommandHandler creates a handler for marking comandas ready.
func NewMarkOrderReadyCommandHandler(uowFactory OrderUoWFactory) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark ready command.
// Fails with a not found error for an unknown comanda and an invalid state
// error when the comanda is not Sent.
func (h *MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) error {
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

	applied, err := orderRepo.UpdateStatus(ctx, cmd.OrderID(), order.Sent, order.Ready, time.Now().UTC())
	if err != nil {
		return err
	}
	if !applied {
		aggregate, getErr := orderRepo.Get(ctx, cmd.OrderID())
		if getErr != nil {
			return getErr
		}
		return errs.NewInvalidStateError("mark ready", aggregate.Status().String())
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
