package database

import (
	"context"
	"testing"

	"github.com/poi2/shopflow/internal/domain/entity"
	errs "github.com/poi2/shopflow/internal/domain/error"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionUnitOfWorkExposesStoreAssignedIDsBeforeCommit(t *testing.T) {
	db, log, tp := newTestDB(t)
	ctx := context.Background()

	buyer := seedUser(t, db, log, tp, "alice@example.com", 10000)
	shop := seedShop(t, db, log, tp, buyer.ID, "alice-books")

	uow := NewSessionUnitOfWork(db, log, tp)
	require.NoError(t, uow.Begin(ctx))

	order, err := entity.NewOrder(buyer.ID, shop.ID, "25.50", tp)
	require.NoError(t, err)
	created, err := uow.OrderRepository().Create(ctx, order)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// The uncommitted row is visible through the session's own repositories
	inTx, err := uow.OrderRepository().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Reference, inTx.Reference)

	require.NoError(t, uow.Commit(ctx))

	stored, err := repository.NewOrderRepository(db, tp, log).GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Reference, stored.Reference)
}

func TestSessionUnitOfWorkBeginTwiceFails(t *testing.T) {
	db, log, tp := newTestDB(t)
	ctx := context.Background()

	uow := NewSessionUnitOfWork(db, log, tp)
	require.NoError(t, uow.Begin(ctx))

	assert.ErrorIs(t, uow.Begin(ctx), errs.ErrTransactionAlreadyActive)

	// The rejected Begin leaves the original transaction intact
	require.NoError(t, uow.Rollback(ctx))
}

func TestSessionUnitOfWorkCommitAndRollbackRequireActiveTransaction(t *testing.T) {
	db, log, tp := newTestDB(t)
	ctx := context.Background()

	uow := NewSessionUnitOfWork(db, log, tp)

	assert.ErrorIs(t, uow.Commit(ctx), errs.ErrNoActiveTransaction)
	assert.ErrorIs(t, uow.Rollback(ctx), errs.ErrNoActiveTransaction)
}

func TestSessionUnitOfWorkRollbackDiscardsWrites(t *testing.T) {
	db, log, tp := newTestDB(t)
	ctx := context.Background()

	uow := NewSessionUnitOfWork(db, log, tp)
	require.NoError(t, uow.Begin(ctx))

	user, err := entity.NewUser("bob", "bob@example.com", "200.00", tp)
	require.NoError(t, err)
	created, err := uow.UserRepository().Create(ctx, user)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	require.NoError(t, uow.Rollback(ctx))

	_, err = repository.NewUserRepository(db, tp, log).GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestSessionUnitOfWorkReleasesHandleAfterFinalize(t *testing.T) {
	db, log, tp := newTestDB(t)
	ctx := context.Background()

	uow := NewSessionUnitOfWork(db, log, tp)

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit(ctx))
	assert.ErrorIs(t, uow.Commit(ctx), errs.ErrNoActiveTransaction)
	assert.ErrorIs(t, uow.Rollback(ctx), errs.ErrNoActiveTransaction)

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Rollback(ctx))
	assert.ErrorIs(t, uow.Rollback(ctx), errs.ErrNoActiveTransaction)
}

func TestSessionUnitOfWorkReleasesHandleWhenCommitFails(t *testing.T) {
	db, log, tp := newTestDB(t)

	uow := NewSessionUnitOfWork(db, log, tp)

	// Cancelling the transaction context makes the driver-level commit fail
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, uow.Begin(ctx))
	cancel()

	assert.ErrorIs(t, uow.Commit(ctx), errs.ErrCommitFailed)

	// The failed commit still released the handle: no retry on it is
	// possible and the session is back to Idle
	assert.ErrorIs(t, uow.Commit(context.Background()), errs.ErrNoActiveTransaction)
	assert.ErrorIs(t, uow.Rollback(context.Background()), errs.ErrNoActiveTransaction)

	require.NoError(t, uow.Begin(context.Background()))
	require.NoError(t, uow.Rollback(context.Background()))
}

func TestSessionUnitOfWorkReleasesHandleWhenRollbackFails(t *testing.T) {
	db, log, tp := newTestDB(t)

	uow := NewSessionUnitOfWork(db, log, tp)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, uow.Begin(ctx))
	cancel()

	// The driver may report the aborted transaction either way; the handle
	// is released regardless of that outcome
	_ = uow.Rollback(ctx)

	assert.ErrorIs(t, uow.Rollback(context.Background()), errs.ErrNoActiveTransaction)
	assert.ErrorIs(t, uow.Commit(context.Background()), errs.ErrNoActiveTransaction)
}

func TestSessionUnitOfWorkIsReusableAcrossUnitsOfWork(t *testing.T) {
	db, log, tp := newTestDB(t)
	ctx := context.Background()
	userRepo := repository.NewUserRepository(db, tp, log)

	uow := NewSessionUnitOfWork(db, log, tp)

	require.NoError(t, uow.Begin(ctx))
	first, err := entity.NewUser("bob", "bob@example.com", "200.00", tp)
	require.NoError(t, err)
	first, err = uow.UserRepository().Create(ctx, first)
	require.NoError(t, err)
	require.NoError(t, uow.Commit(ctx))

	require.NoError(t, uow.Begin(ctx))
	second, err := entity.NewUser("carol", "carol@example.com", "300.00", tp)
	require.NoError(t, err)
	second, err = uow.UserRepository().Create(ctx, second)
	require.NoError(t, err)
	require.NoError(t, uow.Commit(ctx))

	for _, id := range []uint64{first.ID, second.ID} {
		stored, err := userRepo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.NotZero(t, stored.ID)
	}
}

func TestSessionUnitOfWorkStaysIdleWhenBeginFails(t *testing.T) {
	db, log, tp := newTestDB(t)
	ctx := context.Background()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	uow := NewSessionUnitOfWork(db, log, tp)

	// A failed open leaves the coordinator Idle, so the retry takes the
	// Begin edge again instead of being rejected as already active
	assert.ErrorIs(t, uow.Begin(ctx), errs.ErrBeginFailed)
	assert.ErrorIs(t, uow.Begin(ctx), errs.ErrBeginFailed)
	assert.ErrorIs(t, uow.Commit(ctx), errs.ErrNoActiveTransaction)
}

func TestSessionUnitOfWorkIdleRepositoriesUseBaseConnection(t *testing.T) {
	db, log, tp := newTestDB(t)
	ctx := context.Background()

	buyer := seedUser(t, db, log, tp, "alice@example.com", 10000)

	uow := NewSessionUnitOfWork(db, log, tp)

	stored, err := uow.UserRepository().GetByID(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, buyer.ID, stored.ID)
}
