package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a write transaction boundary.
//
// Units of work created by the same factory are mutually exclusive: Begin
// blocks while another unit of work of the same store is between its Begin
// and its Commit or Rollback. This serializes every store mutation.
type UnitOfWork interface {
	// Begin acquires the store's write lock and starts a transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and releases the write lock.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and releases the write lock.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// MenuRepository returns a MenuRepository bound to the current transaction.
	MenuRepository() MenuRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository
}

// ReadView gives read access to the store for the duration of one View call.
type ReadView interface {
	MenuRepository() MenuRepository
	OrderRepository() OrderRepository
}

// Viewer runs read-only work against the store. Views run concurrently with
// each other and wait only for a write in progress, so they never observe a
// half-written record.
type Viewer interface {
	View(ctx context.Context, fn func(view ReadView) error) error
}
