// Package orderrepo maps the intake-owned orders table onto order aggregates.
// The coordinator only ever writes the status column.
package orderrepo

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a row of the orders table.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID        string     `gorm:"type:varchar(64);not null;index:idx_orders_tenant_status,priority:1"`
	OrderNumber     string     `gorm:"type:varchar(64);not null"`
	CustomerName    string     `gorm:"type:varchar(255)"`
	Status          string     `gorm:"type:varchar(32);not null;index:idx_orders_tenant_status,priority:2"`
	FulfillmentType string     `gorm:"type:varchar(16);not null"`
	Priority        string     `gorm:"type:varchar(16);not null;default:normal"`
	IsExpress       bool       `gorm:"not null;default:false"`
	PickupDate      *time.Time `gorm:"type:timestamptz"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:              o.ID().Bytes(),
		TenantID:        o.TenantID().String(),
		OrderNumber:     o.Number(),
		CustomerName:    o.CustomerName(),
		Status:          o.Status().String(),
		FulfillmentType: o.Fulfillment().String(),
		Priority:        o.Priority().String(),
		IsExpress:       o.IsExpressOrder(),
		PickupDate:      o.PickupDate(),
	}
}

// toDomain rejects rows holding values outside the closed enumerations.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenant, tenantErr := kernel.NewTenantID(dto.TenantID)
	status, statusErr := order.ParseStatus(dto.Status)
	fulfillment, fulfillmentErr := order.ParseFulfillmentType(dto.FulfillmentType)
	priority, priorityErr := order.ParsePriority(dto.Priority)
	if err = errors.Join(tenantErr, statusErr, fulfillmentErr, priorityErr); err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, tenant, status, order.Details{
		Number:       dto.OrderNumber,
		CustomerName: dto.CustomerName,
		Fulfillment:  fulfillment,
		Priority:     priority,
		IsExpress:    dto.IsExpress,
		PickupDate:   dto.PickupDate,
	})
}
