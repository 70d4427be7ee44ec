package http

import (
	"fmt"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/generated/servers"

	"github.com/google/uuid"
)

func presentBatch(b *transit.Batch) servers.TransitOrder {
	m := b.Metadata()
	return servers.TransitOrder{
		Id:             b.ID().String(),
		FranchiseId:    b.TenantID().String(),
		MovementType:   b.MovementType().String(),
		Status:         b.Status().String(),
		ItemCount:      b.ItemCount(),
		VehicleInfo:    presentMetadata(m.VehicleInfo),
		EmployeeInfo:   presentMetadata(m.EmployeeInfo),
		StoreDetails:   presentMetadata(m.StoreDetails),
		FactoryDetails: presentMetadata(m.FactoryDetails),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}
}

func presentBatchView(v queries.BatchView) servers.TransitOrder {
	return servers.TransitOrder{
		Id:             v.ID,
		FranchiseId:    v.TenantID,
		MovementType:   v.MovementType,
		Status:         v.Status,
		ItemCount:      v.ItemCount,
		VehicleInfo:    presentMetadata(v.VehicleInfo),
		EmployeeInfo:   presentMetadata(v.EmployeeInfo),
		StoreDetails:   presentMetadata(v.StoreDetails),
		FactoryDetails: presentMetadata(v.FactoryDetails),
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func presentMetadata(m map[string]any) *servers.Metadata {
	if len(m) == 0 {
		return nil
	}
	md := servers.Metadata(m)
	return &md
}

func presentItem(item transit.Item) servers.TransitItem {
	return servers.TransitItem{
		TransitOrderId: item.BatchID().String(),
		OrderId:        item.OrderID().Bytes(),
		OrderNumber:    item.OrderNumber(),
		CustomerName:   optional(item.CustomerName()),
		LinkedAt:       item.LinkedAt(),
	}
}

func presentItemView(v queries.ItemView) (servers.TransitItem, error) {
	orderID, err := uuid.Parse(v.OrderID)
	if err != nil {
		return servers.TransitItem{}, fmt.Errorf("item order id: %w", err)
	}

	item := servers.TransitItem{
		TransitOrderId: v.BatchID,
		OrderId:        orderID,
		OrderNumber:    v.OrderNumber,
		CustomerName:   optional(v.CustomerName),
		LinkedAt:       v.LinkedAt,
	}
	if v.Order != nil {
		o, err := presentOrderView(*v.Order)
		if err != nil {
			return servers.TransitItem{}, err
		}
		item.Order = &o
	}
	return item, nil
}

func presentOrderView(v queries.OrderView) (servers.Order, error) {
	id, err := uuid.Parse(v.ID)
	if err != nil {
		return servers.Order{}, fmt.Errorf("order id: %w", err)
	}
	return servers.Order{
		Id:              id,
		OrderNumber:     v.Number,
		CustomerName:    optional(v.CustomerName),
		Status:          v.Status,
		FulfillmentType: v.Fulfillment,
		Priority:        v.Priority,
		IsExpress:       v.IsExpress,
		PickupDate:      v.PickupDate,
	}, nil
}

func presentHistoryView(v queries.HistoryView) (servers.StatusHistoryEntry, error) {
	id, err := uuid.Parse(v.ID)
	if err != nil {
		return servers.StatusHistoryEntry{}, fmt.Errorf("history id: %w", err)
	}
	return servers.StatusHistoryEntry{
		Id:             id,
		TransitOrderId: v.BatchID,
		Status:         v.Status,
		Actor:          v.Actor,
		Location:       v.Location,
		RecordedAt:     v.RecordedAt,
	}, nil
}

func presentWarnings(warnings []commands.LinkageWarning) []servers.LinkageWarning {
	out := make([]servers.LinkageWarning, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, servers.LinkageWarning{
			OrderId: w.OrderID.String(),
			Reason:  w.Reason,
			Message: w.Message,
		})
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
