package order

import (
	"context"
	"testing"
	"time"

	"github.com/poi2/shopflow/internal/domain/entity"
	errs "github.com/poi2/shopflow/internal/domain/error"
	"github.com/poi2/shopflow/internal/domain/port/usecase"
	coremocks "github.com/poi2/shopflow/mocks/port/core"
	persistencemocks "github.com/poi2/shopflow/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceMocks struct {
	stagedFactory  *persistencemocks.MockStagedUnitOfWorkFactory
	sessionFactory *persistencemocks.MockSessionUnitOfWorkFactory
	userRepo       *persistencemocks.MockUserRepository
	shopRepo       *persistencemocks.MockShopRepository
	orderRepo      *persistencemocks.MockOrderRepository
	timeProvider   *coremocks.MockTimeProvider
	logger         *coremocks.MockLogger
}

func newServiceMocks(t *testing.T) *serviceMocks {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	m := &serviceMocks{
		stagedFactory:  persistencemocks.NewMockStagedUnitOfWorkFactory(t),
		sessionFactory: persistencemocks.NewMockSessionUnitOfWorkFactory(t),
		userRepo:       persistencemocks.NewMockUserRepository(t),
		shopRepo:       persistencemocks.NewMockShopRepository(t),
		orderRepo:      persistencemocks.NewMockOrderRepository(t),
		timeProvider:   coremocks.NewMockTimeProvider(t),
		logger:         coremocks.NewMockLogger(t),
	}
	m.timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *serviceMocks) service() *Service {
	return NewService(
		m.stagedFactory,
		m.sessionFactory,
		m.userRepo,
		m.shopRepo,
		m.orderRepo,
		m.timeProvider,
		m.logger,
	)
}

func testUser(id uint64, balanceCents int64) *entity.User {
	user := &entity.User{ID: id, Name: "alice", Email: "alice@example.com"}
	user.SetBalance(balanceCents)
	return user
}

func testShop(id, ownerID uint64) *entity.Shop {
	return &entity.Shop{ID: id, OwnerID: ownerID, Name: "alice-books"}
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Stages buyer, shop and order in that order and commits once", func(t *testing.T) {
		m := newServiceMocks(t)

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(testUser(1, 10000), nil).Once()
		m.shopRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(testShop(2, 9), nil).Once()

		var staged []entity.AggregateKind
		mockUow := persistencemocks.NewMockStagedUnitOfWork(t)
		mockUow.EXPECT().StageUpdate(mock.Anything).Run(func(aggregate entity.Aggregate) {
			staged = append(staged, aggregate.Kind())
		}).Twice()
		mockUow.EXPECT().StageCreate(mock.MatchedBy(func(aggregate entity.Aggregate) bool {
			order, ok := aggregate.(*entity.Order)
			return ok && order.TotalCents() == 2550 && order.Status == entity.OrderStatusPlaced
		})).Run(func(aggregate entity.Aggregate) {
			staged = append(staged, aggregate.Kind())
		}).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.stagedFactory.EXPECT().NewStagedUnitOfWork().Return(mockUow).Once()

		m.orderRepo.EXPECT().GetByReference(mock.Anything, mock.AnythingOfType("string")).
			RunAndReturn(func(_ context.Context, reference string) (*entity.Order, error) {
				order := &entity.Order{ID: 77, Reference: reference, UserID: 1, ShopID: 2, Status: entity.OrderStatusPlaced}
				order.SetTotalCents(2550)
				return order, nil
			}).Once()

		service := m.service()
		order, err := service.PlaceOrder(ctx, 1, usecase.PlaceOrderRequest{ShopID: 2, Total: "25.50"})

		require.NoError(t, err)
		assert.Equal(t, uint64(77), order.ID)
		assert.Equal(t, []entity.AggregateKind{entity.KindUser, entity.KindShop, entity.KindOrder}, staged)
	})

	t.Run("Debits the buyer and counts the sale before staging", func(t *testing.T) {
		m := newServiceMocks(t)

		user := testUser(1, 10000)
		shop := testShop(2, 9)
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(user, nil).Once()
		m.shopRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(shop, nil).Once()

		mockUow := persistencemocks.NewMockStagedUnitOfWork(t)
		mockUow.EXPECT().StageUpdate(mock.MatchedBy(func(aggregate entity.Aggregate) bool {
			staged, ok := aggregate.(*entity.User)
			return ok && staged.Balance() == 7450 && staged.OrderCount == 1
		})).Once()
		mockUow.EXPECT().StageUpdate(mock.MatchedBy(func(aggregate entity.Aggregate) bool {
			staged, ok := aggregate.(*entity.Shop)
			return ok && staged.SaleCount == 1
		})).Once()
		mockUow.EXPECT().StageCreate(mock.Anything).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.stagedFactory.EXPECT().NewStagedUnitOfWork().Return(mockUow).Once()

		m.orderRepo.EXPECT().GetByReference(mock.Anything, mock.Anything).
			Return(&entity.Order{ID: 5, Reference: "ref"}, nil).Once()

		service := m.service()
		_, err := service.PlaceOrder(ctx, 1, usecase.PlaceOrderRequest{ShopID: 2, Total: "25.50"})

		require.NoError(t, err)
	})

	t.Run("Unknown buyer", func(t *testing.T) {
		m := newServiceMocks(t)
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(nil, errs.ErrUserNotFound).Once()

		service := m.service()
		order, err := service.PlaceOrder(ctx, 1, usecase.PlaceOrderRequest{ShopID: 2, Total: "25.50"})

		assert.Nil(t, order)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Unknown shop", func(t *testing.T) {
		m := newServiceMocks(t)
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(testUser(1, 10000), nil).Once()
		m.shopRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(nil, errs.ErrShopNotFound).Once()

		service := m.service()
		order, err := service.PlaceOrder(ctx, 1, usecase.PlaceOrderRequest{ShopID: 2, Total: "25.50"})

		assert.Nil(t, order)
		assert.ErrorIs(t, err, errs.ErrShopNotFound)
	})

	t.Run("Insufficient balance stages nothing", func(t *testing.T) {
		m := newServiceMocks(t)
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(testUser(1, 100), nil).Once()
		m.shopRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(testShop(2, 9), nil).Once()

		service := m.service()
		order, err := service.PlaceOrder(ctx, 1, usecase.PlaceOrderRequest{ShopID: 2, Total: "25.50"})

		assert.Nil(t, order)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	})

	t.Run("Commit failure is returned", func(t *testing.T) {
		m := newServiceMocks(t)
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(testUser(1, 10000), nil).Once()
		m.shopRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(testShop(2, 9), nil).Once()

		commitErr := errs.NewPersistenceError("order", "create", errs.ErrConstraintViolation)
		mockUow := persistencemocks.NewMockStagedUnitOfWork(t)
		mockUow.EXPECT().StageUpdate(mock.Anything).Twice()
		mockUow.EXPECT().StageCreate(mock.Anything).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(commitErr).Once()
		m.stagedFactory.EXPECT().NewStagedUnitOfWork().Return(mockUow).Once()

		service := m.service()
		order, err := service.PlaceOrder(ctx, 1, usecase.PlaceOrderRequest{ShopID: 2, Total: "25.50"})

		assert.Nil(t, order)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})
}
