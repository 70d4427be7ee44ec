// Package order models customer orders as seen by the transit coordinator.
//
// Orders are created and edited by intake paths outside this service. The
// coordinator restores them from storage, ranks them for transit selection and
// moves their Status through the four transit-owned transitions
// (DispatchToFactory, ReceiveAtFactory, DispatchToStore, ReceiveAtStore).
// Each transition checks its source status, so an order whose status was changed
// by another writer fails the transition instead of being silently overwritten.
package order
