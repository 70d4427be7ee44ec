// Package transitrepo persists transit batches, their items, claims and history.
package transitrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BatchDTO is a row of transit_batches.
type BatchDTO struct {
	ID             string            `gorm:"type:varchar(32);primaryKey"`
	TenantID       string            `gorm:"type:varchar(64);not null;index"`
	MovementType   string            `gorm:"type:varchar(32);not null"`
	Status         string            `gorm:"type:varchar(16);not null;index"`
	ItemCount      int               `gorm:"not null;default:0"`
	VehicleInfo    datatypes.JSONMap `gorm:"type:jsonb"`
	EmployeeInfo   datatypes.JSONMap `gorm:"type:jsonb"`
	StoreDetails   datatypes.JSONMap `gorm:"type:jsonb"`
	FactoryDetails datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt      time.Time         `gorm:"index"`
	UpdatedAt      time.Time
}

func (BatchDTO) TableName() string {
	return "transit_batches"
}

// ItemDTO is a row of transit_items. ID only preserves link order.
type ItemDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	BatchID      string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_transit_items_batch_order,priority:1"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_transit_items_batch_order,priority:2;index"`
	OrderNumber  string    `gorm:"type:varchar(64);not null"`
	CustomerName string    `gorm:"type:varchar(255)"`
	LinkedAt     time.Time `gorm:"not null"`
}

func (ItemDTO) TableName() string {
	return "transit_items"
}

// ClaimDTO is a row of transit_claims. The primary key on order_id is what
// keeps an order on at most one active batch.
type ClaimDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	BatchID   string    `gorm:"type:varchar(32);not null;index"`
	ClaimedAt time.Time `gorm:"not null"`
}

func (ClaimDTO) TableName() string {
	return "transit_claims"
}

// HistoryDTO is a row of transit_history. Seq gives the recording order.
type HistoryDTO struct {
	Seq        int64     `gorm:"primaryKey;autoIncrement"`
	ID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BatchID    string    `gorm:"type:varchar(32);not null;index"`
	Status     string    `gorm:"type:varchar(16);not null"`
	Actor      string    `gorm:"type:varchar(128);not null"`
	Location   *string   `gorm:"type:varchar(255)"`
	RecordedAt time.Time `gorm:"not null"`
}

func (HistoryDTO) TableName() string {
	return "transit_history"
}

func batchFromDomain(b *transit.Batch) BatchDTO {
	m := b.Metadata()
	return BatchDTO{
		ID:             b.ID().String(),
		TenantID:       b.TenantID().String(),
		MovementType:   b.MovementType().String(),
		Status:         b.Status().String(),
		ItemCount:      b.ItemCount(),
		VehicleInfo:    jsonMap(m.VehicleInfo),
		EmployeeInfo:   jsonMap(m.EmployeeInfo),
		StoreDetails:   jsonMap(m.StoreDetails),
		FactoryDetails: jsonMap(m.FactoryDetails),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}
}

func batchToDomain(dto BatchDTO) (*transit.Batch, error) {
	id, err := transit.ParseID(dto.ID)
	if err != nil {
		return nil, err
	}
	tenant, err := kernel.NewTenantID(dto.TenantID)
	if err != nil {
		return nil, err
	}
	status, err := transit.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return transit.RestoreBatch(id, tenant, status, dto.ItemCount, transit.Metadata{
		VehicleInfo:    dto.VehicleInfo,
		EmployeeInfo:   dto.EmployeeInfo,
		StoreDetails:   dto.StoreDetails,
		FactoryDetails: dto.FactoryDetails,
	}, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}

func itemFromDomain(item transit.Item) ItemDTO {
	return ItemDTO{
		BatchID:      item.BatchID().String(),
		OrderID:      item.OrderID().Bytes(),
		OrderNumber:  item.OrderNumber(),
		CustomerName: item.CustomerName(),
		LinkedAt:     item.LinkedAt(),
	}
}

func itemToDomain(dto ItemDTO) (transit.Item, error) {
	batchID, err := transit.ParseID(dto.BatchID)
	if err != nil {
		return transit.Item{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return transit.Item{}, err
	}
	return transit.RestoreItem(batchID, orderID, dto.OrderNumber, dto.CustomerName, dto.LinkedAt.UTC())
}

func historyFromDomain(entry transit.HistoryEntry) HistoryDTO {
	return HistoryDTO{
		ID:         entry.ID().Bytes(),
		BatchID:    entry.BatchID().String(),
		Status:     entry.Status().String(),
		Actor:      entry.Actor(),
		Location:   entry.Location(),
		RecordedAt: entry.RecordedAt(),
	}
}

func jsonMap(m map[string]any) datatypes.JSONMap {
	if m == nil {
		return datatypes.JSONMap{}
	}
	return datatypes.JSONMap(m)
}
