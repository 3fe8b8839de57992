package database

import (
	"context"
	"fmt"

	errs "github.com/poi2/shopflow/internal/domain/error"
	coreport "github.com/poi2/shopflow/internal/domain/port/core"
	"github.com/poi2/shopflow/internal/domain/port/persistence"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// SessionUnitOfWork implements the live-session unit of work. The tx field
// is the coordinator state: nil means Idle, non-nil means Active and holds
// the single open transaction handle. The handle is owned exclusively by
// this instance and is never reused after Commit or Rollback.
//
// An instance serves one logical unit of work at a time and must not be
// shared between goroutines
type SessionUnitOfWork struct {
	db           *gorm.DB
	tx           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewSessionUnitOfWork creates an Idle SessionUnitOfWork
func NewSessionUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.SessionUnitOfWork {
	return &SessionUnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Begin opens a transaction bound to ctx. Binding to ctx means a cancelled
// caller aborts the server-side transaction at the driver level; the owner
// must still call Rollback to release the handle
func (u *SessionUnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		u.logger.Warn("Begin called with a transaction already active", nil)
		return errs.ErrTransactionAlreadyActive
	}

	u.logger.Debug("Beginning database transaction", nil)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		// State stays Idle, so the caller may retry Begin
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return fmt.Errorf("%w: %s", errs.ErrBeginFailed, tx.Error.Error())
	}

	u.tx = tx
	return nil
}

// Commit finalizes the open transaction. The handle is released before the
// driver outcome is inspected: a failed commit surfaces an error but never
// leaves a handle behind, and is never retried
func (u *SessionUnitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		u.logger.Warn("Commit called with no active transaction", nil)
		return errs.ErrNoActiveTransaction
	}

	tx := u.tx
	u.tx = nil

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: %s", errs.ErrCommitFailed, err.Error())
	}

	return nil
}

// Rollback discards the open transaction. Like Commit, the handle is
// released regardless of the driver outcome
func (u *SessionUnitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		u.logger.Warn("Rollback called with no active transaction", nil)
		return errs.ErrNoActiveTransaction
	}

	tx := u.tx
	u.tx = nil

	u.logger.Debug("Rolling back database transaction", nil)
	if err := tx.Rollback().Error; err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: %s", errs.ErrRollbackFailed, err.Error())
	}

	return nil
}

// UserRepository returns a user repository bound to the current scope
func (u *SessionUnitOfWork) UserRepository() persistence.UserRepository {
	return repository.NewUserRepository(u.scope(), u.timeProvider, u.logger)
}

// ShopRepository returns a shop repository bound to the current scope
func (u *SessionUnitOfWork) ShopRepository() persistence.ShopRepository {
	return repository.NewShopRepository(u.scope(), u.timeProvider, u.logger)
}

// OrderRepository returns an order repository bound to the current scope
func (u *SessionUnitOfWork) OrderRepository() persistence.OrderRepository {
	return repository.NewOrderRepository(u.scope(), u.timeProvider, u.logger)
}

// scope returns the open transaction when Active, the base connection when Idle
func (u *SessionUnitOfWork) scope() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
