package persistence

import (
	"context"

	"github.com/poi2/shopflow/internal/domain/entity"
)

// StagedUnitOfWork coordinates atomic persistence by accumulating commands
// in memory and executing all of them inside a single transaction at commit
// time. No I/O happens before Commit is called, which also means
// store-assigned state (such as generated IDs) is not observable before
// commit; use SessionUnitOfWork when intermediate results are needed
type StagedUnitOfWork interface {
	// StageCreate records an insert of the given aggregate. Pure in-memory
	// append: it never fails and performs no I/O
	StageCreate(aggregate entity.Aggregate)

	// StageUpdate records an update of the given aggregate
	StageUpdate(aggregate entity.Aggregate)

	// StageDelete records a removal of the given aggregate
	StageDelete(aggregate entity.Aggregate)

	// Commit takes ownership of the entire staged change log (subsequent
	// commits start from an empty log regardless of outcome), opens one
	// transaction, and replays every command in staging order. Any failed
	// command aborts the transaction so that nothing becomes durable.
	// A commit with nothing staged succeeds without touching the store
	//
	// Possible errors:
	// - PersistenceError: a replayed operation failed; the transaction was rolled back
	// - ErrBeginFailed / ErrCommitFailed: the transaction itself could not be opened or finalized
	Commit(ctx context.Context) error
}

// StagedUnitOfWorkFactory creates a freshly-owned StagedUnitOfWork per
// logical unit of work. Coordinator instances must not be shared between
// concurrent units of work
type StagedUnitOfWorkFactory interface {
	NewStagedUnitOfWork() StagedUnitOfWork
}
