package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every mutating use
// case runs inside exactly one unit of work: all repository writes and event
// appends between Begin and Commit apply atomically, which is what makes each
// operation an all-or-nothing transition (concurrent calls against the same
// order serialize on the database row).
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Rolling back after a
	// successful commit is a no-op, which permits `defer uow.Rollback(ctx)`.
	Rollback(ctx context.Context) error

	// ProductRepository returns a ProductRepository bound to the transaction.
	ProductRepository() ProductRepository

	// OrderRepository returns an OrderRepository bound to the transaction.
	OrderRepository() OrderRepository

	// DisputeRepository returns a DisputeRepository bound to the transaction.
	DisputeRepository() DisputeRepository

	// AuditorRepository returns an AuditorRepository bound to the transaction.
	AuditorRepository() AuditorRepository

	// EventPublisher returns an EventPublisher bound to the transaction.
	EventPublisher() EventPublisher

	// CatalogReference returns the CatalogReference bound to the transaction.
	CatalogReference() CatalogReference
}
