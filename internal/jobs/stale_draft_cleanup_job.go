package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleDraftCleanupJob periodically deletes Draft comandas that were
// abandoned by their waiter. A lingering draft blocks its origin from
// opening a new one, so cleanup keeps rooms and customers usable.
type StaleDraftCleanupJob struct {
	handler commands.CleanupStaleDraftsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleDraftCleanupJob creates a job that deletes drafts untouched for
// longer than ttl. Runs every ten minutes.
func NewStaleDraftCleanupJob(
	handler commands.CleanupStaleDraftsCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *StaleDraftCleanupJob {
	return &StaleDraftCleanupJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_draft_cleanup_job"),
	}
}

// Start begins the cleanup job on its ten minute schedule.
func (j *StaleDraftCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCleanupStaleDraftsCommand(j.ttl)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale draft cleanup job misconfigured", "error", err)
			return
		}

		deleted, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale draft cleanup job failed", "error", err)
			return
		}

		if deleted > 0 {
			j.logger.InfoContext(ctx, "Deleted stale drafts", "count", deleted, "ttl", j.ttl)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale draft cleanup job started (running every ten minutes)")
	return nil
}

// Stop stops the cleanup job.
func (j *StaleDraftCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale draft cleanup job stopped")
}
