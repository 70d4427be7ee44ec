package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/pkg/errs"
)

// Warning reasons reported per order.
const (
	ReasonOrderNotFound  = "order_not_found"
	ReasonForeignOrder   = "foreign_order"
	ReasonInvalidStatus  = "invalid_order_status"
	ReasonAlreadyClaimed = "already_claimed"
	ReasonStatusChanged  = "status_changed"
	ReasonLinkFailed     = "link_failed"
	ReasonCascadeFailed  = "cascade_failed"
)

// ErrNoOrdersLinked is the sentinel behind NoOrdersLinkedError.
var ErrNoOrdersLinked = errors.New("no orders could be linked to the batch")

// LinkageWarning describes one order that was skipped while linking a batch or
// while cascading a status change. The batch operation itself still succeeded.
type LinkageWarning struct {
	OrderID kernel.UUID
	Reason  string
	Message string
}

func newLinkageWarning(orderID kernel.UUID, err error) LinkageWarning {
	return LinkageWarning{OrderID: orderID, Reason: warningReason(err), Message: err.Error()}
}

func warningReason(err error) string {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ReasonOrderNotFound
	case errors.Is(err, transit.ErrForeignOrder):
		return ReasonForeignOrder
	case errors.Is(err, transit.ErrOrderAlreadyClaimed):
		return ReasonAlreadyClaimed
	case errors.Is(err, order.ErrStaleStatus):
		return ReasonStatusChanged
	case errors.Is(err, errs.ErrValueIsInvalid):
		return ReasonInvalidStatus
	default:
		return ReasonLinkFailed
	}
}

// NoOrdersLinkedError is returned when every requested order was skipped.
// Nothing is persisted in that case.
type NoOrdersLinkedError struct {
	Warnings []LinkageWarning
}

func NewNoOrdersLinkedError(warnings []LinkageWarning) *NoOrdersLinkedError {
	return &NoOrdersLinkedError{Warnings: warnings}
}

func (e *NoOrdersLinkedError) Error() string {
	return fmt.Sprintf("%s: %d orders skipped", ErrNoOrdersLinked, len(e.Warnings))
}

func (e *NoOrdersLinkedError) Unwrap() error {
	return ErrNoOrdersLinked
}
