package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
	"github.com/NegritaW/Sistema-Comandas/internal/core/ports"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
)

// notifyTimeout bounds the kitchen push after submit.
const notifyTimeout = 3 * time.Second

// SubmitOrderCommandHandler handles the Draft to Sent transition.
// The transition is written with a compare-and-swap so that two concurrent
// submits see exactly one winner. After the transaction commits, the kitchen
// is notified asynchronously; the store transition is the source of truth
// and a failed push changes nothing about the outcome.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.KitchenNotifier
	logger     *slog.Logger
}

// NewSubmitOrderCommandHandler creates a handler for comanda submission.
// Requires an OrderUoWFactory for transactional persistence and a
// KitchenNotifier for the post-commit push.
func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.KitchenNotifier,
	logger *slog.Logger,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With(slog.String("component", "submit_order")),
	}
}

// Handle processes the submit command.
// Fails with a not found error for an unknown comanda and an invalid state
// error when the comanda is not Draft, including the case where a
// concurrent submit won the race.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
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

	now := time.Now().UTC()
	if err = aggregate.Submit(now); err != nil {
		return err
	}

	applied, err := orderRepo.UpdateStatus(ctx, cmd.OrderID(), order.Draft, order.Sent, now)
	if err != nil {
		return err
	}
	if !applied {
		return errs.NewInvalidStateError("submit", order.Sent.String())
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	go h.notifyKitchen(aggregate)

	return nil
}

// notifyKitchen pushes the submitted comanda to the kitchen endpoint.
// Runs detached from the request context; failures are logged and absorbed.
func (h *SubmitOrderCommandHandler) notifyKitchen(aggregate *order.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := h.notifier.Notify(ctx, aggregate); err != nil {
		h.logger.Warn("kitchen notification failed",
			slog.String("order_id", aggregate.ID().String()),
			slog.Any("error", err))
	}
}
