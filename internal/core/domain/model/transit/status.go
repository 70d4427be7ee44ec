package transit

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of a transit batch.
//
//	Pending ──> InTransit ──> Received ──> Completed
//
// Transitions are strictly linear: no skipping and no going back.
// Pending and InTransit batches are "active" and hold claims on their orders.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	InTransit
	Received
	Completed
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		InTransit: "in_transit",
		Received:  "received",
		Completed: "completed",
	}
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transit status is invalid",
			fmt.Errorf("%d is not a valid transit status", s),
		)
	}
	return nil
}

func ParseStatus(s string) (Status, error) {
	token := kernel.NormalizeToken(s)
	for status, name := range getStatusStrings() {
		if name == token {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"transit status is invalid",
		fmt.Errorf("%q is not a valid transit status", s),
	)
}

// IsActive reports whether a batch in this status still claims its orders.
func (s Status) IsActive() bool {
	return s == Pending || s == InTransit
}

// ActiveStatuses are the statuses whose batches hold order claims.
func ActiveStatuses() []Status {
	return []Status{Pending, InTransit}
}

// Advance returns next when it directly follows s, and an
// *InvalidTransitionError otherwise.
func (s Status) Advance(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if next != s+1 {
		return 0, NewInvalidTransitionError(s, next)
	}
	return next, nil
}
