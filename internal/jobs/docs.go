// Package jobs provides scheduled background tasks for the comanda system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance of the order workflow.
//
// # Available Jobs
//
// 1. StaleDraftCleanupJob - Runs every ten minutes to delete Draft comandas abandoned for longer than the configured TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cleanupHandler, draftTTL, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Cleanup failures are logged and retried on the next tick; a failed run
// never blocks the serving path since drafts are invisible to the kitchen.
package jobs
