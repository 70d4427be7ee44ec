package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"
)

// TransitRepository persists batches together with their items, claims and history.
type TransitRepository interface {
	Add(ctx context.Context, batch *transit.Batch) error

	// Update writes status, item count and updated-at.
	Update(ctx context.Context, batch *transit.Batch) error

	// Get returns the batch when it exists within scope and an
	// ObjectNotFoundError otherwise.
	Get(ctx context.Context, id transit.ID, scope access.Scope) (*transit.Batch, error)

	// GetForUpdate is Get with the batch row locked until the transaction ends.
	GetForUpdate(ctx context.Context, id transit.ID, scope access.Scope) (*transit.Batch, error)

	// ClaimOrder records that batchID holds orderID since at. A second claim on
	// the same order fails with transit.ErrOrderAlreadyClaimed.
	ClaimOrder(ctx context.Context, orderID kernel.UUID, batchID transit.ID, at time.Time) error

	// ReleaseClaims drops every claim held by batchID.
	ReleaseClaims(ctx context.Context, batchID transit.ID) error

	// ClaimedOrderIDs lists order ids held by active batches within scope.
	ClaimedOrderIDs(ctx context.Context, scope access.Scope) ([]kernel.UUID, error)

	AddItem(ctx context.Context, item transit.Item) error

	// Items returns the batch's items in link order.
	Items(ctx context.Context, batchID transit.ID) ([]transit.Item, error)

	AppendHistory(ctx context.Context, entry transit.HistoryEntry) error
}
