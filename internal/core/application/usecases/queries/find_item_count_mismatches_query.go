package queries

import (
	"context"
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrFindItemCountMismatchesQueryIsNotConstructed = errors.New(
		"FindItemCountMismatchesQuery must be created via NewFindItemCountMismatchesQuery constructor",
	)
)

// FindItemCountMismatchesQuery finds batches whose stored item count differs
// from the number of items actually attached.
type FindItemCountMismatchesQuery struct {
	guard guard.ConstructorGuard
}

func NewFindItemCountMismatchesQuery() FindItemCountMismatchesQuery {
	return FindItemCountMismatchesQuery{guard: guard.NewConstructorGuard()}
}

func (q FindItemCountMismatchesQuery) Validate() error {
	return q.guard.Validate(ErrFindItemCountMismatchesQueryIsNotConstructed)
}

type ItemCountMismatch struct {
	BatchID     string
	TenantID    string
	StoredCount int
	ActualCount int
}

type FindItemCountMismatchesQueryHandler struct {
	db *gorm.DB
}

func NewFindItemCountMismatchesQueryHandler(db *gorm.DB) FindItemCountMismatchesQueryHandler {
	return FindItemCountMismatchesQueryHandler{db: db}
}

func (h FindItemCountMismatchesQueryHandler) Handle(
	ctx context.Context,
	query FindItemCountMismatchesQuery,
) ([]ItemCountMismatch, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.tenant_id,
			b.item_count,
			COUNT(i.order_id)
		FROM transit_batches b
		LEFT JOIN transit_items i ON i.batch_id = b.id
		GROUP BY b.id, b.tenant_id, b.item_count
		HAVING b.item_count <> COUNT(i.order_id)
		ORDER BY b.id
	`).Rows()
	if err != nil {
		return nil, errs.NewRepositoryError("find item count mismatches", err)
	}
	defer rows.Close()

	mismatches := make([]ItemCountMismatch, 0)
	for rows.Next() {
		var m ItemCountMismatch
		if err = rows.Scan(&m.BatchID, &m.TenantID, &m.StoredCount, &m.ActualCount); err != nil {
			return nil, errs.NewRepositoryError("scan item count mismatch", err)
		}
		mismatches = append(mismatches, m)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewRepositoryError("find item count mismatches", err)
	}

	return mismatches, nil
}
