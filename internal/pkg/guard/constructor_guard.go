// Package guard holds the constructor guard embedded by commands, queries and
// aggregates to tell constructed values apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as produced by its constructor.
// The zero value is "not constructed".
//
// Example:
//
//	type AdvanceTransitStatusCommand struct {
//	    batchID transit.ID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c AdvanceTransitStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrAdvanceTransitStatusCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not created through NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
