package queries

import (
	"errors"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetTransitItemsQueryIsNotConstructed = errors.New(
		"GetTransitItemsQuery must be created via NewGetTransitItemsQuery constructor",
	)
	ErrGetStatusHistoryQueryIsNotConstructed = errors.New(
		"GetStatusHistoryQuery must be created via NewGetStatusHistoryQuery constructor",
	)
)

// batchQuery carries what every single-batch query needs.
type batchQuery struct {
	identity        access.Identity
	requestedTenant kernel.TenantID
	batchID         transit.ID

	guard guard.ConstructorGuard
}

func newBatchQuery(identity access.Identity, requestedTenant kernel.TenantID, batchID string) (batchQuery, error) {
	id, err := transit.ParseID(batchID)
	if err != nil {
		return batchQuery{}, errs.NewObjectNotFoundErrorWithCause("batchId", batchID, err)
	}
	return batchQuery{
		identity:        identity,
		requestedTenant: requestedTenant,
		batchID:         id,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q batchQuery) Identity() access.Identity {
	return q.identity
}

func (q batchQuery) RequestedTenant() kernel.TenantID {
	return q.requestedTenant
}

func (q batchQuery) BatchID() transit.ID {
	return q.batchID
}

// GetTransitItemsQuery lists a batch's items with live order data.
type GetTransitItemsQuery struct {
	batchQuery
}

func NewGetTransitItemsQuery(
	identity access.Identity,
	requestedTenant kernel.TenantID,
	batchID string,
) (GetTransitItemsQuery, error) {
	q, err := newBatchQuery(identity, requestedTenant, batchID)
	if err != nil {
		return GetTransitItemsQuery{}, err
	}
	return GetTransitItemsQuery{batchQuery: q}, nil
}

func (q GetTransitItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetTransitItemsQueryIsNotConstructed)
}

// GetStatusHistoryQuery lists a batch's history in the order it was recorded.
type GetStatusHistoryQuery struct {
	batchQuery
}

func NewGetStatusHistoryQuery(
	identity access.Identity,
	requestedTenant kernel.TenantID,
	batchID string,
) (GetStatusHistoryQuery, error) {
	q, err := newBatchQuery(identity, requestedTenant, batchID)
	if err != nil {
		return GetStatusHistoryQuery{}, err
	}
	return GetStatusHistoryQuery{batchQuery: q}, nil
}

func (q GetStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusHistoryQueryIsNotConstructed)
}
