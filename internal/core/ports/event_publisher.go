package ports

import (
	"context"
	"time"
)

const (
	EventTransitCreated       = "transit.created"
	EventTransitStatusChanged = "transit.status_changed"
)

// TransitEvent is the notification emitted after a batch change commits.
type TransitEvent struct {
	Type         string    `json:"type"`
	BatchID      string    `json:"batchId"`
	TenantID     string    `json:"franchiseId"`
	MovementType string    `json:"movementType"`
	Status       string    `json:"status"`
	ItemCount    int       `json:"itemCount"`
	Actor        string    `json:"actor"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// EventPublisher delivers transit events to interested dashboards. Delivery is
// best effort: the change is already committed when Publish is called.
type EventPublisher interface {
	Publish(ctx context.Context, event TransitEvent) error
}
