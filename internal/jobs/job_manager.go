package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleDraftCleanupJob *StaleDraftCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cleanupStaleDraftsHandler commands.CleanupStaleDraftsCommandHandler,
	draftTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleDraftCleanupJob: NewStaleDraftCleanupJob(cleanupStaleDraftsHandler, draftTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleDraftCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale draft cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleDraftCleanupJob.Stop()
}
