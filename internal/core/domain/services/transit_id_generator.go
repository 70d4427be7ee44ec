package services

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/core/ports"
)

// TransitIDGenerator derives batch ids from the franchise branch code and the
// per (tenant, year, movement) counter. Uniqueness rests on the counter being
// incremented atomically by the SequenceRepository.
type TransitIDGenerator struct {
	now func() time.Time
}

// NewTransitIDGenerator uses now to pick the year segment; nil means time.Now.
func NewTransitIDGenerator(now func() time.Time) TransitIDGenerator {
	if now == nil {
		now = time.Now
	}
	return TransitIDGenerator{now: now}
}

// Next reserves the next id. The repositories should be bound to the same
// transaction that persists the batch, so an aborted create releases nothing
// and a committed one never reuses a counter.
func (g TransitIDGenerator) Next(
	ctx context.Context,
	sequences ports.SequenceRepository,
	franchises ports.FranchiseRepository,
	tenant kernel.TenantID,
	movement transit.MovementType,
) (transit.ID, error) {
	if err := tenant.Validate(); err != nil {
		return transit.ID{}, err
	}
	if err := movement.Validate(); err != nil {
		return transit.ID{}, err
	}

	branch, err := franchises.BranchCode(ctx, tenant)
	if err != nil {
		return transit.ID{}, err
	}
	if branch, err = transit.NormalizeBranchCode(branch); err != nil {
		return transit.ID{}, fmt.Errorf("franchise %s: %w", tenant, err)
	}

	year := g.now().UTC().Year()
	counter, err := sequences.Next(ctx, tenant, year, movement)
	if err != nil {
		return transit.ID{}, err
	}

	return transit.NewID(year, branch, counter, movement)
}
