package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	itemCountAuditJob *ItemCountAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(finder MismatchFinder, logger *slog.Logger) *JobManager {
	return &JobManager{
		itemCountAuditJob: NewItemCountAuditJob(finder, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.itemCountAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start item count audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.itemCountAuditJob.Stop()
}
