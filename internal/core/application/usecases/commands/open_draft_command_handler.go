package commands

import (
	"context"
	"errors"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
	"github.com/NegritaW/Sistema-Comandas/internal/core/ports"
)

// OpenDraftResult reports the draft the waiter ended up with and whether it
// was freshly created or an existing active draft was reused.
type OpenDraftResult struct {
	Order   *order.Order
	Created bool
}

// OpenDraftCommandHandler handles the business logic for opening drafts.
// An origin holds at most one Draft comanda, so opening is get-or-create:
// an existing active draft is returned as-is, otherwise a new one is
// persisted. Two waiters racing over the same origin converge on one draft.
type OpenDraftCommandHandler struct {
	uowFactory DraftUoWFactory
}

// NewOpenDraftCommandHandler creates a handler for draft opening operations.
// Requires a DraftUoWFactory for transactional persistence.
func NewOpenDraftCommandHandler(uowFactory DraftUoWFactory) OpenDraftCommandHandler {
	return OpenDraftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the open draft command.
// Returns the existing active draft for the origin when there is one.
// Otherwise verifies a customer origin exists, creates the draft, and on an
// insert race re-fetches the winning draft.
func (h *OpenDraftCommandHandler) Handle(ctx context.Context, cmd OpenDraftCommand) (OpenDraftResult, error) {
	if err := cmd.Validate(); err != nil {
		return OpenDraftResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OpenDraftResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := h.findActiveDraft(ctx, orderRepo, cmd.Origin())
	if err != nil {
		return OpenDraftResult{}, err
	}
	if existing != nil {
		if err = uow.Commit(ctx); err != nil {
			return OpenDraftResult{}, err
		}
		return OpenDraftResult{Order: existing, Created: false}, nil
	}

	if customerID := cmd.Origin().CustomerID(); customerID != nil {
		if _, err = uow.CustomerRepository().Get(ctx, *customerID); err != nil {
			return OpenDraftResult{}, err
		}
	}

	createdBy := cmd.CreatedBy()
	aggregate, err := order.NewOrder(kernel.NewUUID(), cmd.Origin(), &createdBy, time.Now().UTC())
	if err != nil {
		return OpenDraftResult{}, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		if errors.Is(err, ports.ErrDraftAlreadyOpen) {
			return h.fetchWinningDraft(ctx, cmd.Origin())
		}
		return OpenDraftResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OpenDraftResult{}, err
	}

	return OpenDraftResult{Order: aggregate, Created: true}, nil
}

// fetchWinningDraft reads the draft that won a concurrent insert race.
// The losing transaction is aborted, so the read happens in a fresh one.
func (h *OpenDraftCommandHandler) fetchWinningDraft(ctx context.Context, origin order.Origin) (OpenDraftResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OpenDraftResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	winner, err := h.findActiveDraft(ctx, uow.OrderRepository(), origin)
	if err != nil {
		return OpenDraftResult{}, err
	}
	if winner == nil {
		return OpenDraftResult{}, ports.ErrDraftAlreadyOpen
	}

	if err = uow.Commit(ctx); err != nil {
		return OpenDraftResult{}, err
	}

	return OpenDraftResult{Order: winner, Created: false}, nil
}

func (h *OpenDraftCommandHandler) findActiveDraft(
	ctx context.Context,
	repo ports.OrderRepository,
	origin order.Origin,
) (*order.Order, error) {
	if origin.IsRoom() {
		return repo.GetActiveDraftByRoom(ctx, *origin.Room())
	}
	return repo.GetActiveDraftByCustomer(ctx, *origin.CustomerID())
}
