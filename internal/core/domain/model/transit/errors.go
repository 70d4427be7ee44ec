package transit

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid transit status transition")
	ErrSequenceExhausted = errors.New("transit sequence exhausted")
	ErrForeignOrder      = errors.New("order belongs to another franchise")

	// ErrOrderAlreadyClaimed means another active batch already holds the order.
	ErrOrderAlreadyClaimed = errors.New("order is already claimed by an active batch")
)

// InvalidTransitionError is returned for a non-adjacent or backward batch transition.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
