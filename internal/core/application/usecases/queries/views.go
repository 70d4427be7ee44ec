// Package queries contains read-only use cases. Handlers read straight from the
// database (or through ports where domain rules apply) and return flat views.
package queries

import (
	"time"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/order"
)

// OrderView is the read model of an order.
type OrderView struct {
	ID           string
	Number       string
	CustomerName string
	Status       string
	Fulfillment  string
	Priority     string
	IsExpress    bool
	PickupDate   *time.Time
}

// BatchView is the read model of a transit batch.
type BatchView struct {
	ID             string
	TenantID       string
	MovementType   string
	Status         string
	ItemCount      int
	VehicleInfo    map[string]any
	EmployeeInfo   map[string]any
	StoreDetails   map[string]any
	FactoryDetails map[string]any
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ItemView is a transit item with the live order attached. Order is nil when
// the order no longer exists.
type ItemView struct {
	BatchID      string
	OrderID      string
	OrderNumber  string
	CustomerName string
	LinkedAt     time.Time
	Order        *OrderView
}

// HistoryView is one status history entry.
type HistoryView struct {
	ID         string
	BatchID    string
	Status     string
	Actor      string
	Location   *string
	RecordedAt time.Time
}

func newOrderView(o *order.Order) OrderView {
	return OrderView{
		ID:           o.ID().String(),
		Number:       o.Number(),
		CustomerName: o.CustomerName(),
		Status:       o.Status().String(),
		Fulfillment:  o.Fulfillment().String(),
		Priority:     o.Priority().String(),
		IsExpress:    o.IsExpressOrder(),
		PickupDate:   o.PickupDate(),
	}
}

// tenantFilter returns the SQL fragment and args restricting column to scope.
func tenantFilter(scope access.Scope, column string) (string, []any) {
	tenant, ok := scope.Tenant()
	if !ok {
		return "", nil
	}
	return " AND " + column + " = ?", []any{tenant.String()}
}
