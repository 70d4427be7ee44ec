package queries

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var (
	ErrListEligibleOrdersQueryIsNotConstructed = errors.New(
		"ListEligibleOrdersQuery must be created via NewListEligibleOrdersQuery constructor",
	)
)

// ListEligibleOrdersQuery asks which orders a new batch in a direction could carry.
//
// Example:
//
//	query, err := NewListEligibleOrdersQuery(identity, kernel.TenantID{}, "to_factory", 0)
//	orders, err := handler.Handle(ctx, query)
type ListEligibleOrdersQuery struct {
	identity        access.Identity
	requestedTenant kernel.TenantID
	movement        transit.MovementType
	limit           int

	guard guard.ConstructorGuard
}

// NewListEligibleOrdersQuery builds the query. An empty or unrecognized
// direction selects both directions; limit 0 selects the default.
func NewListEligibleOrdersQuery(
	identity access.Identity,
	requestedTenant kernel.TenantID,
	direction string,
	limit int,
) (ListEligibleOrdersQuery, error) {
	limit, err := services.NormalizeLimit(limit)
	if err != nil {
		return ListEligibleOrdersQuery{}, err
	}

	movement := transit.UnknownMovement
	if strings.TrimSpace(direction) != "" {
		if parsed, parseErr := transit.ParseMovementType(direction); parseErr == nil {
			movement = parsed
		}
	}

	return ListEligibleOrdersQuery{
		identity:        identity,
		requestedTenant: requestedTenant,
		movement:        movement,
		limit:           limit,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q ListEligibleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListEligibleOrdersQueryIsNotConstructed)
}

func (q ListEligibleOrdersQuery) Identity() access.Identity {
	return q.identity
}

func (q ListEligibleOrdersQuery) RequestedTenant() kernel.TenantID {
	return q.requestedTenant
}

func (q ListEligibleOrdersQuery) MovementType() transit.MovementType {
	return q.movement
}

func (q ListEligibleOrdersQuery) Limit() int {
	return q.limit
}
