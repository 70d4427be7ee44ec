package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// SavePoint marks a point inside the current transaction that
	// RollbackTo can return to without abandoning the whole transaction.
	SavePoint(ctx context.Context, name string) error

	// RollbackTo undoes every write made after the named savepoint.
	RollbackTo(ctx context.Context, name string) error

	// Repositories are bound to the transaction started by Begin, or to the
	// plain connection when no transaction is active.
	OrderRepository() OrderRepository
	TransitRepository() TransitRepository
	SequenceRepository() SequenceRepository
	FranchiseRepository() FranchiseRepository
}
