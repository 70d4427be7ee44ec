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

// GetTransitItemsQueryHandler joins items to their orders. A deleted order
// leaves the item in place with a nil Order.
type GetTransitItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetTransitItemsQueryHandler(db *gorm.DB) GetTransitItemsQueryHandler {
	return GetTransitItemsQueryHandler{db: db}
}

func (h GetTransitItemsQueryHandler) Handle(ctx context.Context, query GetTransitItemsQuery) ([]ItemView, error) {
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
			i.batch_id,
			i.order_id,
			i.order_number,
			i.customer_name,
			i.linked_at,
			o.id,
			o.order_number,
			o.customer_name,
			o.status,
			o.fulfillment_type,
			o.priority,
			o.is_express,
			o.pickup_date
		FROM transit_items i
		LEFT JOIN orders o ON o.id = i.order_id
		WHERE i.batch_id = ?
		ORDER BY i.id
	`, query.BatchID().String()).Rows()
	if err != nil {
		return nil, errs.NewRepositoryError("get transit items", err)
	}
	defer rows.Close()

	items := make([]ItemView, 0)
	for rows.Next() {
		var (
			item        ItemView
			orderID     uuid.UUID
			linkedAt    time.Time
			liveID      uuid.NullUUID
			number      sql.NullString
			customer    sql.NullString
			status      sql.NullString
			fulfillment sql.NullString
			priority    sql.NullString
			isExpress   sql.NullBool
			pickupDate  sql.NullTime
		)
		if err = rows.Scan(
			&item.BatchID,
			&orderID,
			&item.OrderNumber,
			&item.CustomerName,
			&linkedAt,
			&liveID,
			&number,
			&customer,
			&status,
			&fulfillment,
			&priority,
			&isExpress,
			&pickupDate,
		); err != nil {
			return nil, errs.NewRepositoryError("scan transit item", err)
		}

		item.OrderID = orderID.String()
		item.LinkedAt = linkedAt.UTC()
		if liveID.Valid {
			view := OrderView{
				ID:           liveID.UUID.String(),
				Number:       number.String,
				CustomerName: customer.String,
				Status:       status.String,
				Fulfillment:  fulfillment.String,
				Priority:     priority.String,
				IsExpress:    isExpress.Bool,
			}
			if pickupDate.Valid {
				d := pickupDate.Time.UTC()
				view.PickupDate = &d
			}
			item.Order = &view
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewRepositoryError("get transit items", err)
	}

	return items, nil
}
