package commands

import (
	"context"
	"time"
)

// CleanupStaleDraftsCommandHandler deletes abandoned Draft comandas.
// Invoked by the scheduled cleanup job, not by any HTTP route.
type CleanupStaleDraftsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCleanupStaleDraftsCommandHandler creates a handler for draft cleanup.
func NewCleanupStaleDraftsCommandHandler(uowFactory OrderUoWFactory) CleanupStaleDraftsCommandHandler {
	return CleanupStaleDraftsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cleanup command and returns how many drafts were
// removed.
func (h *CleanupStaleDraftsCommandHandler) Handle(ctx context.Context, cmd CleanupStaleDraftsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.TTL())
	removed, err := uow.OrderRepository().DeleteStaleDrafts(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
