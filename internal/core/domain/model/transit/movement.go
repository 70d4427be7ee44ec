package transit

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// MovementType is the direction of a batch between store and factory.
type MovementType int

const (
	// UnknownMovement is also what ParseMovementType returns for an empty
	// direction; eligibility treats it as "both directions".
	UnknownMovement MovementType = iota
	ToFactory
	ReturnToStore
)

func (m MovementType) String() string {
	switch m {
	case ToFactory:
		return "to_factory"
	case ReturnToStore:
		return "return_to_store"
	default:
		return "unknown"
	}
}

func (m MovementType) Validate() error {
	if m != ToFactory && m != ReturnToStore {
		return errs.NewValueIsInvalidErrorWithCause(
			"movement type is invalid",
			fmt.Errorf("%d is not a valid movement type", m),
		)
	}
	return nil
}

// ParseMovementType accepts the snake_case names as well as the legacy display
// strings ("To Factory", "Return to Store") in any case.
func ParseMovementType(s string) (MovementType, error) {
	switch kernel.NormalizeToken(s) {
	case "to_factory":
		return ToFactory, nil
	case "return_to_store":
		return ReturnToStore, nil
	}
	return UnknownMovement, errs.NewValueIsInvalidErrorWithCause(
		"movement type is invalid",
		fmt.Errorf("%q is not a valid movement type", s),
	)
}

// Suffix is the trailing letter of batch ids: F for to factory, S for return to store.
func (m MovementType) Suffix() byte {
	switch m {
	case ToFactory:
		return 'F'
	case ReturnToStore:
		return 'S'
	default:
		return 0
	}
}

func movementFromSuffix(b byte) MovementType {
	switch b {
	case 'F':
		return ToFactory
	case 'S':
		return ReturnToStore
	default:
		return UnknownMovement
	}
}

// SourceStatuses lists the order statuses a batch in this direction picks up.
// UnknownMovement yields both directions' statuses.
func (m MovementType) SourceStatuses() []order.Status {
	switch m {
	case ToFactory:
		return []order.Status{order.Pending}
	case ReturnToStore:
		return []order.Status{order.Processing}
	default:
		return []order.Status{order.Pending, order.Processing}
	}
}

// Dispatch applies the creation transition for this direction to o.
func (m MovementType) Dispatch(o *order.Order) error {
	switch m {
	case ToFactory:
		return o.DispatchToFactory()
	case ReturnToStore:
		return o.DispatchToStore()
	default:
		return m.Validate()
	}
}

// Receive applies the receipt cascade for this direction to o.
func (m MovementType) Receive(o *order.Order) error {
	switch m {
	case ToFactory:
		return o.ReceiveAtFactory()
	case ReturnToStore:
		return o.ReceiveAtStore()
	default:
		return m.Validate()
	}
}
