package queries

import (
	"context"
	"database/sql"
	"time"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStatusHistoryQueryHandler returns history entries oldest first.
type GetStatusHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetStatusHistoryQueryHandler(db *gorm.DB) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{db: db}
}

func (h GetStatusHistoryQueryHandler) Handle(ctx context.Context, query GetStatusHistoryQuery) ([]HistoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, err := access.Resolve(query.Identity(), query.RequestedTenant())
	if err != nil {
		return nil, err
	}
	if err = requireBatchInScope(ctx, h.db, query.BatchID(), scope); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			batch_id,
			status,
			actor,
			location,
			recorded_at
		FROM transit_history
		WHERE batch_id = ?
		ORDER BY seq
	`, query.BatchID().String()).Rows()
	if err != nil {
		return nil, errs.NewRepositoryError("get status history", err)
	}
	defer rows.Close()

	entries := make([]HistoryView, 0)
	for rows.Next() {
		var (
			entry      HistoryView
			id         uuid.UUID
			location   sql.NullString
			recordedAt time.Time
		)
		if err = rows.Scan(&id, &entry.BatchID, &entry.Status, &entry.Actor, &location, &recordedAt); err != nil {
			return nil, errs.NewRepositoryError("scan status history", err)
		}
		entry.ID = id.String()
		entry.RecordedAt = recordedAt.UTC()
		if location.Valid {
			l := location.String
			entry.Location = &l
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewRepositoryError("get status history", err)
	}

	return entries, nil
}
