package queries

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/pkg/guard"
)

var (
	ErrListTransitBatchesQueryIsNotConstructed = errors.New(
		"ListTransitBatchesQuery must be created via NewListTransitBatchesQuery constructor",
	)
)

// ListTransitBatchesQuery lists batches in scope, optionally filtered by
// movement type and status. Filters are case-insensitive.
type ListTransitBatchesQuery struct {
	identity        access.Identity
	requestedTenant kernel.TenantID
	movement        transit.MovementType
	status          transit.Status

	guard guard.ConstructorGuard
}

// NewListTransitBatchesQuery rejects filter values that are set but unknown.
func NewListTransitBatchesQuery(
	identity access.Identity,
	requestedTenant kernel.TenantID,
	movementFilter string,
	statusFilter string,
) (ListTransitBatchesQuery, error) {
	q := ListTransitBatchesQuery{
		identity:        identity,
		requestedTenant: requestedTenant,
		guard:           guard.NewConstructorGuard(),
	}

	var movementErr, statusErr error
	if strings.TrimSpace(movementFilter) != "" {
		q.movement, movementErr = transit.ParseMovementType(movementFilter)
	}
	if strings.TrimSpace(statusFilter) != "" {
		q.status, statusErr = transit.ParseStatus(statusFilter)
	}
	if err := errors.Join(movementErr, statusErr); err != nil {
		return ListTransitBatchesQuery{}, err
	}

	return q, nil
}

func (q ListTransitBatchesQuery) Validate() error {
	return q.guard.Validate(ErrListTransitBatchesQueryIsNotConstructed)
}

func (q ListTransitBatchesQuery) Identity() access.Identity {
	return q.identity
}

func (q ListTransitBatchesQuery) RequestedTenant() kernel.TenantID {
	return q.requestedTenant
}

// MovementType is UnknownMovement when not filtering by movement.
func (q ListTransitBatchesQuery) MovementType() transit.MovementType {
	return q.movement
}

// Status is UnknownStatus when not filtering by status.
func (q ListTransitBatchesQuery) Status() transit.Status {
	return q.status
}
