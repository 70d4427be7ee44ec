package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// requireBatchInScope reports a missing batch and a batch outside scope the same way.
func requireBatchInScope(ctx context.Context, db *gorm.DB, id transit.ID, scope access.Scope) error {
	var tenant string
	err := db.WithContext(ctx).Raw(`SELECT tenant_id FROM transit_batches WHERE id = ?`, id.String()).
		Row().Scan(&tenant)
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewObjectNotFoundError("batchId", id.String())
	}
	if err != nil {
		return errs.NewRepositoryError("get transit batch", err)
	}

	tenantID, err := kernel.NewTenantID(tenant)
	if err != nil {
		return err
	}
	if !scope.Allows(tenantID) {
		return errs.NewObjectNotFoundError("batchId", id.String())
	}
	return nil
}
