package persistence

import (
	"context"
)

// SessionUnitOfWork coordinates atomic persistence through a live
// transactional session. Begin opens the transaction eagerly; repository
// calls obtained from this coordinator execute immediately inside it, so
// their results (including store-assigned IDs) are observable before the
// caller decides to commit or roll back.
//
// The coordinator owns at most one open transaction at a time:
// Idle -> Begin -> Active -> Commit | Rollback -> Idle, no other transition.
// An instance serves one logical unit of work and is not safe for
// concurrent use; create one per request via the factory
type SessionUnitOfWork interface {
	// Begin opens a transaction bound to ctx and transitions to Active
	//
	// Possible errors:
	// - ErrTransactionAlreadyActive: a transaction is already open; state is unchanged
	// - ErrBeginFailed: the store could not open a transaction; state remains Idle
	//   and Begin may be retried
	Begin(ctx context.Context) error

	// Commit finalizes the open transaction durably and transitions to Idle.
	// The handle is released even when the underlying commit fails; a failed
	// commit is never retried on the same handle
	//
	// Possible errors:
	// - ErrNoActiveTransaction: no transaction is open
	// - ErrCommitFailed: the underlying commit call failed
	Commit(ctx context.Context) error

	// Rollback discards all writes made in the open transaction and
	// transitions to Idle. The handle is released even when the underlying
	// rollback fails
	//
	// Possible errors:
	// - ErrNoActiveTransaction: no transaction is open
	// - ErrRollbackFailed: the underlying rollback call failed
	Rollback(ctx context.Context) error

	// UserRepository returns a user repository bound to the open transaction,
	// or to the base connection when Idle
	UserRepository() UserRepository

	// ShopRepository returns a shop repository bound to the open transaction
	ShopRepository() ShopRepository

	// OrderRepository returns an order repository bound to the open transaction
	OrderRepository() OrderRepository
}

// SessionUnitOfWorkFactory creates a freshly-owned SessionUnitOfWork per
// logical unit of work
type SessionUnitOfWorkFactory interface {
	NewSessionUnitOfWork() SessionUnitOfWork
}
