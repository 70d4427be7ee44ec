package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/pkg/errs"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListTransitBatchesQueryHandler reads batches newest first.
type ListTransitBatchesQueryHandler struct {
	db *gorm.DB
}

func NewListTransitBatchesQueryHandler(db *gorm.DB) ListTransitBatchesQueryHandler {
	return ListTransitBatchesQueryHandler{db: db}
}

func (h ListTransitBatchesQueryHandler) Handle(
	ctx context.Context,
	query ListTransitBatchesQuery,
) ([]BatchView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, err := access.Resolve(query.Identity(), query.RequestedTenant())
	if err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			tenant_id,
			movement_type,
			status,
			item_count,
			vehicle_info,
			employee_info,
			store_details,
			factory_details,
			created_at,
			updated_at
		FROM transit_batches
		WHERE 1 = 1`
	filter, args := tenantFilter(scope, "tenant_id")
	sql += filter
	if query.MovementType() != transit.UnknownMovement {
		sql += " AND movement_type = ?"
		args = append(args, query.MovementType().String())
	}
	if query.Status() != transit.UnknownStatus {
		sql += " AND status = ?"
		args = append(args, query.Status().String())
	}
	sql += " ORDER BY created_at DESC, id DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, errs.NewRepositoryError("list transit batches", err)
	}
	defer rows.Close()

	batches := make([]BatchView, 0)
	for rows.Next() {
		var (
			view                              BatchView
			vehicle, employee, store, factory datatypes.JSONMap
			createdAt, updatedAt              time.Time
		)
		if err = rows.Scan(
			&view.ID,
			&view.TenantID,
			&view.MovementType,
			&view.Status,
			&view.ItemCount,
			&vehicle,
			&employee,
			&store,
			&factory,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, errs.NewRepositoryError("scan transit batch", err)
		}
		view.VehicleInfo = vehicle
		view.EmployeeInfo = employee
		view.StoreDetails = store
		view.FactoryDetails = factory
		view.CreatedAt = createdAt.UTC()
		view.UpdatedAt = updatedAt.UTC()
		batches = append(batches, view)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewRepositoryError("list transit batches", err)
	}

	return batches, nil
}
