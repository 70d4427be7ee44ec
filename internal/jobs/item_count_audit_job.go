package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ItemCountAuditSchedule runs the audit at the start of every minute.
const ItemCountAuditSchedule = "0 * * * * *"

// MismatchFinder is satisfied by queries.FindItemCountMismatchesQueryHandler.
type MismatchFinder interface {
	Handle(ctx context.Context, query queries.FindItemCountMismatchesQuery) ([]queries.ItemCountMismatch, error)
}

// ItemCountAuditJob looks for batches whose stored item count no longer
// matches their attached items and logs every discrepancy it finds.
// It only reports; counts are never rewritten by the job.
type ItemCountAuditJob struct {
	finder MismatchFinder
	cron   *cron.Cron
	logger *slog.Logger
}

// NewItemCountAuditJob creates the audit job.
func NewItemCountAuditJob(finder MismatchFinder, logger *slog.Logger) *ItemCountAuditJob {
	return &ItemCountAuditJob{
		finder: finder,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "item_count_audit_job"),
	}
}

// Start schedules the audit.
func (j *ItemCountAuditJob) Start() error {
	_, err := j.cron.AddFunc(ItemCountAuditSchedule, func() {
		j.Run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Item count audit job started (running every minute)")
	return nil
}

// Run performs a single audit pass and returns the number of mismatches found.
func (j *ItemCountAuditJob) Run(ctx context.Context) int {
	mismatches, err := j.finder.Handle(ctx, queries.NewFindItemCountMismatchesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Item count audit failed", "error", err)
		return 0
	}

	for _, m := range mismatches {
		j.logger.WarnContext(ctx, "Transit batch item count mismatch",
			"batchId", m.BatchID,
			"franchiseId", m.TenantID,
			"storedCount", m.StoredCount,
			"actualCount", m.ActualCount,
		)
	}
	return len(mismatches)
}

// Stop stops the audit job and waits for a running pass to finish.
func (j *ItemCountAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Item count audit job stopped")
}
