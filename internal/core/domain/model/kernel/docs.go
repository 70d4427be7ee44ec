// Package kernel provides the shared value objects of the transit domain.
//
// The package includes:
//   - UUID: identifier for orders and audit rows, wrapping github.com/google/uuid
//   - TenantID: opaque franchise identifier every aggregate is scoped to
//
// Both are immutable and their zero values fail Validate, so a value that
// skipped its constructor is caught at the first domain boundary it crosses.
package kernel
