package order

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Status is the processing-pipeline position of an order.
//
// The transit coordinator owns four transitions:
//
//	Pending ──(to factory)──> InTransit ──(received)──> Processing
//	Processing ──(return to store)──> ReadyForTransit ──(received)──> ReadyForPickup
//
// Every other status is written by CRUD paths outside this service and is only
// ever read here.
type Status int

const (
	// Unknown (0) catches uninitialized values and failed parses.
	Unknown Status = iota
	Pending
	InTransit
	Processing
	ReadyForTransit
	ReadyForPickup
	OutForDelivery
	Completed
	Delivered
	Cancelled
	Archived
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "pending",
		InTransit:       "in_transit",
		Processing:      "processing",
		ReadyForTransit: "ready_for_transit",
		ReadyForPickup:  "ready_for_pickup",
		OutForDelivery:  "out_for_delivery",
		Completed:       "completed",
		Delivered:       "delivered",
		Cancelled:       "cancelled",
		Archived:        "archived",
	}
}

// ParseStatus converts an external spelling into a Status.
// Unrecognized values are rejected, never mapped to a default.
func ParseStatus(s string) (Status, error) {
	token := kernel.NormalizeToken(s)
	for status, name := range getValidStatusStrings() {
		if name == token {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further pipeline movement is expected.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Archived || s == Delivered || s == Completed
}

// DispatchToFactory is the to-factory batch creation transition.
func (s Status) DispatchToFactory() (Status, error) {
	return s.transition(Pending, InTransit, "dispatch to factory")
}

// ReceiveAtFactory is the cascade of a to-factory batch being received.
func (s Status) ReceiveAtFactory() (Status, error) {
	return s.transition(InTransit, Processing, "receive at factory")
}

// DispatchToStore is the return-to-store batch creation transition.
func (s Status) DispatchToStore() (Status, error) {
	return s.transition(Processing, ReadyForTransit, "dispatch to store")
}

// ReceiveAtStore is the cascade of a return-to-store batch being received.
// Pickup and delivery orders both land in ReadyForPickup.
func (s Status) ReceiveAtStore() (Status, error) {
	return s.transition(ReadyForTransit, ReadyForPickup, "receive at store")
}

func (s Status) transition(from, to Status, action string) (Status, error) {
	if s != from {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to %s, expected %s", s, action, from),
		)
	}
	return to, nil
}
