package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"
)

// SequenceRepository hands out batch counters.
type SequenceRepository interface {
	// Next atomically increments and returns the counter for the key. The first
	// call for a key returns 1. Two callers never observe the same value.
	Next(ctx context.Context, tenant kernel.TenantID, year int, movement transit.MovementType) (int, error)
}

// FranchiseRepository is the read side of the franchise directory.
type FranchiseRepository interface {
	// BranchCode returns the short code printed into batch ids for tenant.
	BranchCode(ctx context.Context, tenant kernel.TenantID) (string, error)
}
