package database

import (
	"context"
	"testing"

	"github.com/poi2/shopflow/internal/domain/entity"
	errs "github.com/poi2/shopflow/internal/domain/error"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStagedUnitOfWorkCommitPersistsAllStagedCommands(t *testing.T) {
	db, log, tp := newTestDB(t)
	ctx := context.Background()

	buyer := seedUser(t, db, log, tp, "alice@example.com", 10000)
	shop := seedShop(t, db, log, tp, buyer.ID, "alice-books")

	order, err := entity.NewOrder(buyer.ID, shop.ID, "25.50", tp)
	require.NoError(t, err)
	require.NoError(t, buyer.Debit(order.TotalCents(), tp))
	shop.RecordSale(tp)

	uow := NewStagedUnitOfWork(db, log, tp)
	uow.StageUpdate(buyer)
	uow.StageUpdate(shop)
	uow.StageCreate(order)

	require.NoError(t, uow.Commit(ctx))

	storedUser, err := repository.NewUserRepository(db, tp, log).GetByID(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7450), storedUser.Balance())
	assert.Equal(t, uint64(1), storedUser.OrderCount)

	storedShop, err := repository.NewShopRepository(db, tp, log).GetByID(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), storedShop.SaleCount)

	storedOrder, err := repository.NewOrderRepository(db, tp, log).GetByReference(ctx, order.Reference)
	require.NoError(t, err)
	assert.NotZero(t, storedOrder.ID)
	assert.Equal(t, int64(2550), storedOrder.TotalCents())
	assert.Equal(t, entity.OrderStatusPlaced, storedOrder.Status)
}

func TestStagedUnitOfWorkCommitWithEmptyLogIsNoOp(t *testing.T) {
	db, log, tp := newTestDB(t)

	uow := NewStagedUnitOfWork(db, log, tp)

	assert.NoError(t, uow.Commit(context.Background()))
}

func TestStagedUnitOfWorkCommitRollsBackEverythingOnFailure(t *testing.T) {
	db, log, tp := newTestDB(t)
	ctx := context.Background()

	buyer := seedUser(t, db, log, tp, "alice@example.com", 10000)
	shop := seedShop(t, db, log, tp, buyer.ID, "alice-books")
	orderRepo := repository.NewOrderRepository(db, tp, log)

	existing, err := entity.NewOrder(buyer.ID, shop.ID, "10.00", tp)
	require.NoError(t, err)
	existing, err = orderRepo.Create(ctx, existing)
	require.NoError(t, err)

	// The colliding reference makes the last staged command fail, so the
	// user update replayed before it must be rolled back as well
	colliding, err := entity.NewOrder(buyer.ID, shop.ID, "25.50", tp)
	require.NoError(t, err)
	colliding.Reference = existing.Reference
	require.NoError(t, buyer.Debit(colliding.TotalCents(), tp))

	uow := NewStagedUnitOfWork(db, log, tp)
	uow.StageUpdate(buyer)
	uow.StageCreate(colliding)

	err = uow.Commit(ctx)
	require.Error(t, err)

	var persistenceErr *errs.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.Equal(t, "order", persistenceErr.Kind)
	assert.Equal(t, "create", persistenceErr.Operation)
	assert.ErrorIs(t, err, errs.ErrDuplicateOrder)

	storedUser, err := repository.NewUserRepository(db, tp, log).GetByID(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), storedUser.Balance())
	assert.Equal(t, uint64(0), storedUser.OrderCount)
}

func TestStagedUnitOfWorkDrainsLogBeforeExecution(t *testing.T) {
	db, log, tp := newTestDB(t)
	ctx := context.Background()

	buyer := seedUser(t, db, log, tp, "alice@example.com", 10000)
	shop := seedShop(t, db, log, tp, buyer.ID, "alice-books")
	orderRepo := repository.NewOrderRepository(db, tp, log)

	existing, err := entity.NewOrder(buyer.ID, shop.ID, "10.00", tp)
	require.NoError(t, err)
	existing, err = orderRepo.Create(ctx, existing)
	require.NoError(t, err)

	colliding, err := entity.NewOrder(buyer.ID, shop.ID, "25.50", tp)
	require.NoError(t, err)
	colliding.Reference = existing.Reference

	uow := NewStagedUnitOfWork(db, log, tp)
	uow.StageCreate(colliding)
	require.Error(t, uow.Commit(ctx))

	// The failed commit consumed the log, so the retry has nothing to replay
	assert.NoError(t, uow.Commit(ctx))

	// The same instance accepts fresh commands after a failed run
	replacement, err := entity.NewOrder(buyer.ID, shop.ID, "25.50", tp)
	require.NoError(t, err)
	uow.StageCreate(replacement)
	require.NoError(t, uow.Commit(ctx))

	stored, err := orderRepo.GetByReference(ctx, replacement.Reference)
	require.NoError(t, err)
	assert.NotZero(t, stored.ID)
}

func TestStagedUnitOfWorkWrapsDriverCommitFailure(t *testing.T) {
	db, log, tp := newTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	buyer := seedUser(t, db, log, tp, "alice@example.com", 10000)
	shop := seedShop(t, db, log, tp, buyer.ID, "alice-books")

	// Cancel the transaction context once the replayed insert has executed,
	// so every staged command succeeds and the driver-level commit is the
	// first call that fails
	err := db.Callback().Create().After("gorm:create").Register("cancel_after_create", func(*gorm.DB) {
		cancel()
	})
	require.NoError(t, err)

	order, err := entity.NewOrder(buyer.ID, shop.ID, "25.50", tp)
	require.NoError(t, err)

	uow := NewStagedUnitOfWork(db, log, tp)
	uow.StageCreate(order)

	assert.ErrorIs(t, uow.Commit(ctx), errs.ErrCommitFailed)

	// The failed commit left nothing durable
	_, err = repository.NewOrderRepository(db, tp, log).GetByReference(context.Background(), order.Reference)
	assert.ErrorIs(t, err, errs.ErrOrderNotFound)
}

func TestStagedUnitOfWorkReplaysDeletes(t *testing.T) {
	db, log, tp := newTestDB(t)
	ctx := context.Background()

	buyer := seedUser(t, db, log, tp, "alice@example.com", 10000)
	shop := seedShop(t, db, log, tp, buyer.ID, "alice-books")
	orderRepo := repository.NewOrderRepository(db, tp, log)

	order, err := entity.NewOrder(buyer.ID, shop.ID, "25.50", tp)
	require.NoError(t, err)
	require.NoError(t, buyer.Debit(order.TotalCents(), tp))
	order, err = orderRepo.Create(ctx, order)
	require.NoError(t, err)

	buyer.Credit(order.TotalCents(), tp)

	uow := NewStagedUnitOfWork(db, log, tp)
	uow.StageUpdate(buyer)
	uow.StageDelete(order)
	require.NoError(t, uow.Commit(ctx))

	_, err = orderRepo.GetByID(ctx, order.ID)
	assert.ErrorIs(t, err, errs.ErrOrderNotFound)

	storedUser, err := repository.NewUserRepository(db, tp, log).GetByID(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), storedUser.Balance())
}
