package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository is the coordinator's window onto orders owned by the intake
// service. Orders are never created or deleted through it.
type OrderRepository interface {
	// Get returns the order regardless of tenant; callers check ownership.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByStatus returns every order in scope whose status is one of statuses.
	ListByStatus(ctx context.Context, scope access.Scope, statuses []order.Status) ([]*order.Order, error)

	// UpdateStatus writes only the status column and stamps updated_at with at,
	// and only while the stored status still equals the loaded one. A lost race
	// yields order.ErrStaleStatus.
	UpdateStatus(ctx context.Context, aggregate *order.Order, at time.Time) error
}
