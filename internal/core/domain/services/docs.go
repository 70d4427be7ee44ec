// Package services provides domain services that work across aggregates.
//
// The package includes:
//   - EligibilityComputer: selects and ranks the orders a new batch may pick up
//   - TransitIDGenerator: derives batch ids from the per-tenant sequence
package services
