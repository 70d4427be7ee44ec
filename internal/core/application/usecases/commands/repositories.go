// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle, including savepoints
	// for per-order work that may fail without aborting the batch.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
		SavePoint(ctx context.Context, name string) error
		RollbackTo(ctx context.Context, name string) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	TransitRepoFactory interface {
		TransitRepository() ports.TransitRepository
	}

	// SequenceRepoFactory provides the repositories the id generator needs.
	SequenceRepoFactory interface {
		SequenceRepository() ports.SequenceRepository
		FranchiseRepository() ports.FranchiseRepository
	}

	// AdvanceUoW manages transactions for status transitions.
	AdvanceUoW interface {
		TxManager
		OrderRepoFactory
		TransitRepoFactory
	}

	AdvanceUoWFactory interface {
		Create() AdvanceUoW
	}

	// CreateUoW manages transactions for batch creation, which also reserves
	// the batch id.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   transitRepo := uow.TransitRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	CreateUoW interface {
		TxManager
		OrderRepoFactory
		TransitRepoFactory
		SequenceRepoFactory
	}

	CreateUoWFactory interface {
		Create() CreateUoW
	}
)
