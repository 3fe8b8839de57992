package database

import (
	"context"
	"fmt"

	"github.com/poi2/shopflow/internal/domain/entity"
	errs "github.com/poi2/shopflow/internal/domain/error"
	coreport "github.com/poi2/shopflow/internal/domain/port/core"
	"github.com/poi2/shopflow/internal/domain/port/persistence"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// repositorySet bundles the capability repositories bound to one
// transactional scope
type repositorySet struct {
	users  persistence.UserRepository
	shops  persistence.ShopRepository
	orders persistence.OrderRepository
}

// newRepositorySet binds the full capability set to the given scope
func newRepositorySet(tx *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *repositorySet {
	return &repositorySet{
		users:  repository.NewUserRepository(tx, timeProvider, logger),
		shops:  repository.NewShopRepository(tx, timeProvider, logger),
		orders: repository.NewOrderRepository(tx, timeProvider, logger),
	}
}

// dispatchKey addresses one handler in the dispatch table
type dispatchKey struct {
	kind      entity.AggregateKind
	operation entity.Operation
}

// commandHandler executes one staged command against the repositories bound
// to the open transaction
type commandHandler func(ctx context.Context, repos *repositorySet, aggregate entity.Aggregate) error

// StagedUnitOfWork implements the command-staging unit of work: stage calls
// append to an in-memory change log and Commit replays the whole log inside
// a single database transaction. The dispatch table is the closed mapping
// from (aggregate kind, operation) to the matching repository call; adding
// an aggregate kind means adding its entries here
type StagedUnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	changeLog    *entity.ChangeLog
	dispatch     map[dispatchKey]commandHandler
}

// NewStagedUnitOfWork creates a StagedUnitOfWork with an empty change log
func NewStagedUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.StagedUnitOfWork {
	return &StagedUnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		changeLog:    entity.NewChangeLog(),
		dispatch:     defaultDispatchTable(),
	}
}

// defaultDispatchTable maps every (kind, operation) pair of the closed
// aggregate set to its repository call
func defaultDispatchTable() map[dispatchKey]commandHandler {
	return map[dispatchKey]commandHandler{
		{entity.KindUser, entity.OperationCreate}: func(ctx context.Context, repos *repositorySet, aggregate entity.Aggregate) error {
			_, err := repos.users.Create(ctx, aggregate.(*entity.User))
			return err
		},
		{entity.KindUser, entity.OperationUpdate}: func(ctx context.Context, repos *repositorySet, aggregate entity.Aggregate) error {
			_, err := repos.users.Update(ctx, aggregate.(*entity.User))
			return err
		},
		{entity.KindUser, entity.OperationDelete}: func(ctx context.Context, repos *repositorySet, aggregate entity.Aggregate) error {
			return repos.users.Delete(ctx, aggregate.(*entity.User))
		},
		{entity.KindShop, entity.OperationCreate}: func(ctx context.Context, repos *repositorySet, aggregate entity.Aggregate) error {
			_, err := repos.shops.Create(ctx, aggregate.(*entity.Shop))
			return err
		},
		{entity.KindShop, entity.OperationUpdate}: func(ctx context.Context, repos *repositorySet, aggregate entity.Aggregate) error {
			_, err := repos.shops.Update(ctx, aggregate.(*entity.Shop))
			return err
		},
		{entity.KindShop, entity.OperationDelete}: func(ctx context.Context, repos *repositorySet, aggregate entity.Aggregate) error {
			return repos.shops.Delete(ctx, aggregate.(*entity.Shop))
		},
		{entity.KindOrder, entity.OperationCreate}: func(ctx context.Context, repos *repositorySet, aggregate entity.Aggregate) error {
			_, err := repos.orders.Create(ctx, aggregate.(*entity.Order))
			return err
		},
		{entity.KindOrder, entity.OperationUpdate}: func(ctx context.Context, repos *repositorySet, aggregate entity.Aggregate) error {
			_, err := repos.orders.Update(ctx, aggregate.(*entity.Order))
			return err
		},
		{entity.KindOrder, entity.OperationDelete}: func(ctx context.Context, repos *repositorySet, aggregate entity.Aggregate) error {
			return repos.orders.Delete(ctx, aggregate.(*entity.Order))
		},
	}
}

// StageCreate records an insert of the given aggregate
func (u *StagedUnitOfWork) StageCreate(aggregate entity.Aggregate) {
	u.stage(aggregate, entity.OperationCreate)
}

// StageUpdate records an update of the given aggregate
func (u *StagedUnitOfWork) StageUpdate(aggregate entity.Aggregate) {
	u.stage(aggregate, entity.OperationUpdate)
}

// StageDelete records a removal of the given aggregate
func (u *StagedUnitOfWork) StageDelete(aggregate entity.Aggregate) {
	u.stage(aggregate, entity.OperationDelete)
}

func (u *StagedUnitOfWork) stage(aggregate entity.Aggregate, operation entity.Operation) {
	u.changeLog.Append(entity.NewCommand(aggregate, operation))
	u.logger.Debug("Staged command", map[string]any{
		"kind":      aggregate.Kind().String(),
		"operation": operation.String(),
		"staged":    u.changeLog.Len(),
	})
}

// Commit drains the change log and replays it front-to-back inside one
// transaction. The log is consumed as soon as execution begins: whatever the
// outcome, the next commit starts from an empty log
func (u *StagedUnitOfWork) Commit(ctx context.Context) error {
	commands := u.changeLog.Drain()
	if len(commands) == 0 {
		u.logger.Debug("Commit with empty change log, nothing to do", nil)
		return nil
	}

	u.logger.Debug("Committing staged unit of work", map[string]any{
		"commands": len(commands),
	})

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return fmt.Errorf("%w: %s", errs.ErrBeginFailed, tx.Error.Error())
	}

	repos := newRepositorySet(tx, u.timeProvider, u.logger)

	for i, cmd := range commands {
		key := dispatchKey{cmd.Aggregate().Kind(), cmd.Operation()}
		handler, ok := u.dispatch[key]
		if !ok {
			u.rollbackQuietly(tx)
			return errs.NewPersistenceError(key.kind.String(), key.operation.String(),
				fmt.Errorf("no handler registered"))
		}

		if err := handler(ctx, repos, cmd.Aggregate()); err != nil {
			u.logger.Warn("Staged command failed, aborting transaction", map[string]any{
				"position":  i,
				"kind":      key.kind.String(),
				"operation": key.operation.String(),
				"error":     err.Error(),
			})
			u.rollbackQuietly(tx)
			return errs.NewPersistenceError(key.kind.String(), key.operation.String(), err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: %s", errs.ErrCommitFailed, err.Error())
	}

	u.logger.Info("Staged unit of work committed", map[string]any{
		"commands": len(commands),
	})
	return nil
}

// rollbackQuietly aborts the transaction; a rollback failure here cannot
// change the outcome the caller sees, so it is only logged
func (u *StagedUnitOfWork) rollbackQuietly(tx *gorm.DB) {
	if err := tx.Rollback().Error; err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
	}
}
