package queries

import (
	"context"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// ListEligibleOrdersQueryHandler loads candidate orders and active claims and
// lets the EligibilityComputer rank them.
//
// The result is a point-in-time view. Creating a batch re-checks every order
// through the claim table, so a stale listing cannot double-book an order.
type ListEligibleOrdersQueryHandler struct {
	orders   ports.OrderRepository
	transits ports.TransitRepository
	computer services.EligibilityComputer
}

func NewListEligibleOrdersQueryHandler(
	orders ports.OrderRepository,
	transits ports.TransitRepository,
	computer services.EligibilityComputer,
) ListEligibleOrdersQueryHandler {
	return ListEligibleOrdersQueryHandler{orders: orders, transits: transits, computer: computer}
}

func (h ListEligibleOrdersQueryHandler) Handle(ctx context.Context, query ListEligibleOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, err := access.Resolve(query.Identity(), query.RequestedTenant())
	if err != nil {
		return nil, err
	}

	candidates, err := h.orders.ListByStatus(ctx, scope, query.MovementType().SourceStatuses())
	if err != nil {
		return nil, err
	}

	claimed, err := h.transits.ClaimedOrderIDs(ctx, scope)
	if err != nil {
		return nil, err
	}

	eligible, err := h.computer.Compute(query.MovementType(), candidates, claimed, query.Limit())
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(eligible))
	for _, o := range eligible {
		views = append(views, newOrderView(o))
	}
	return views, nil
}
