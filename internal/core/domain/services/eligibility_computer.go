package services

import (
	"slices"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/pkg/errs"
)

const (
	DefaultEligibleLimit = 20
	MaxEligibleLimit     = 200
)

// EligibilityComputer decides which orders can be put on a new batch and in
// which order they should be offered.
//
// Business rules:
//   - an order is a candidate when its status is a source status of the direction
//   - orders claimed by an active batch are never offered
//   - expedited orders (express flag, high or urgent priority) come first
//   - within each partition earlier pickup dates come first, unscheduled orders last
//   - remaining ties are broken by order number, then id
type EligibilityComputer struct{}

func NewEligibilityComputer() EligibilityComputer {
	return EligibilityComputer{}
}

// NormalizeLimit maps 0 to DefaultEligibleLimit and caps at MaxEligibleLimit.
func NormalizeLimit(limit int) (int, error) {
	switch {
	case limit < 0:
		return 0, errs.NewValueIsOutOfRangeError("limit", limit, 0, MaxEligibleLimit)
	case limit == 0:
		return DefaultEligibleLimit, nil
	case limit > MaxEligibleLimit:
		return MaxEligibleLimit, nil
	}
	return limit, nil
}

// Compute filters candidates down to the eligible orders for movement and
// returns at most limit of them, best first. UnknownMovement accepts the
// source statuses of both directions.
func (EligibilityComputer) Compute(
	movement transit.MovementType,
	candidates []*order.Order,
	claimed []kernel.UUID,
	limit int,
) ([]*order.Order, error) {
	limit, err := NormalizeLimit(limit)
	if err != nil {
		return nil, err
	}

	claimedSet := make(map[string]struct{}, len(claimed))
	for _, id := range claimed {
		claimedSet[id.String()] = struct{}{}
	}
	sources := movement.SourceStatuses()

	eligible := make([]*order.Order, 0, len(candidates))
	for _, o := range candidates {
		if err = o.Validate(); err != nil {
			return nil, err
		}
		if !slices.Contains(sources, o.Status()) {
			continue
		}
		if _, ok := claimedSet[o.ID().String()]; ok {
			continue
		}
		eligible = append(eligible, o)
	}

	slices.SortStableFunc(eligible, compareEligibility)

	if len(eligible) > limit {
		eligible = eligible[:limit]
	}
	return eligible, nil
}

func compareEligibility(a, b *order.Order) int {
	if a.IsExpedited() != b.IsExpedited() {
		if a.IsExpedited() {
			return -1
		}
		return 1
	}

	da, db := a.PickupDate(), b.PickupDate()
	switch {
	case da != nil && db == nil:
		return -1
	case da == nil && db != nil:
		return 1
	case da != nil && db != nil:
		if c := da.Compare(*db); c != 0 {
			return c
		}
	}

	if c := strings.Compare(a.Number(), b.Number()); c != 0 {
		return c
	}
	return strings.Compare(a.ID().String(), b.ID().String())
}
