package order

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// FulfillmentType says how the customer gets the finished order back.
type FulfillmentType int

const (
	UnknownFulfillment FulfillmentType = iota
	Pickup
	Delivery
)

func (f FulfillmentType) String() string {
	switch f {
	case Pickup:
		return "pickup"
	case Delivery:
		return "delivery"
	default:
		return "unknown"
	}
}

func (f FulfillmentType) Validate() error {
	if f != Pickup && f != Delivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"fulfillment type is invalid",
			fmt.Errorf("%d is not a valid fulfillment type", f),
		)
	}
	return nil
}

func ParseFulfillmentType(s string) (FulfillmentType, error) {
	switch kernel.NormalizeToken(s) {
	case "pickup":
		return Pickup, nil
	case "delivery":
		return Delivery, nil
	}
	return UnknownFulfillment, errs.NewValueIsInvalidErrorWithCause(
		"fulfillment type is invalid",
		fmt.Errorf("%q is not a valid fulfillment type", s),
	)
}

// Priority is the handling urgency set at intake.
type Priority int

const (
	UnknownPriority Priority = iota
	Low
	Normal
	High
	Urgent
)

var priorityNames = map[Priority]string{
	Low:    "low",
	Normal: "normal",
	High:   "high",
	Urgent: "urgent",
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "unknown"
}

func (p Priority) Validate() error {
	if _, ok := priorityNames[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority is invalid",
			fmt.Errorf("%d is not a valid priority", p),
		)
	}
	return nil
}

// ParsePriority maps an empty string to Normal; orders without an explicit
// priority are treated as normal ones.
func ParsePriority(s string) (Priority, error) {
	token := kernel.NormalizeToken(s)
	if token == "" {
		return Normal, nil
	}
	for p, name := range priorityNames {
		if name == token {
			return p, nil
		}
	}
	return UnknownPriority, errs.NewValueIsInvalidErrorWithCause(
		"priority is invalid",
		fmt.Errorf("%q is not a valid priority", s),
	)
}

// IsElevated reports whether the priority alone makes an order express.
func (p Priority) IsElevated() bool {
	return p == High || p == Urgent
}
