// Package jobs provides scheduled background tasks for the transit coordinator.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ItemCountAuditJob - Runs every minute and logs batches whose stored item
// count differs from the number of items attached to them
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(mismatchesHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The audit uses the seconds-enabled cron expression "0 * * * * *".
//
// # Error Handling
//
// A failed audit pass is logged and retried on the next tick. Mismatches are
// logged at warn level, one entry per batch.
package jobs
