package order

import (
	"context"
	"testing"

	"github.com/poi2/shopflow/internal/domain/entity"
	errs "github.com/poi2/shopflow/internal/domain/error"
	"github.com/poi2/shopflow/internal/domain/port/usecase"
	persistencemocks "github.com/poi2/shopflow/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionMocks struct {
	session   *persistencemocks.MockSessionUnitOfWork
	userRepo  *persistencemocks.MockUserRepository
	shopRepo  *persistencemocks.MockShopRepository
	orderRepo *persistencemocks.MockOrderRepository
}

// newSessionMocks wires a session coordinator mock whose repositories are
// distinct from the service's base-connection repositories, mirroring
// transaction-bound repository instances
func newSessionMocks(t *testing.T, m *serviceMocks) *sessionMocks {
	s := &sessionMocks{
		session:   persistencemocks.NewMockSessionUnitOfWork(t),
		userRepo:  persistencemocks.NewMockUserRepository(t),
		shopRepo:  persistencemocks.NewMockShopRepository(t),
		orderRepo: persistencemocks.NewMockOrderRepository(t),
	}
	m.sessionFactory.EXPECT().NewSessionUnitOfWork().Return(s.session).Once()
	return s
}

func (s *sessionMocks) expectRepositories() {
	s.session.EXPECT().UserRepository().Return(s.userRepo).Once()
	s.session.EXPECT().ShopRepository().Return(s.shopRepo).Once()
	s.session.EXPECT().OrderRepository().Return(s.orderRepo).Once()
}

func TestPlaceOrderChecked(t *testing.T) {
	ctx := context.Background()
	req := usecase.PlaceOrderRequest{ShopID: 2, Total: "25.50"}

	t.Run("Commits when every post-write state is valid", func(t *testing.T) {
		m := newServiceMocks(t)
		s := newSessionMocks(t, m)

		s.session.EXPECT().Begin(mock.Anything).Return(nil).Once()
		s.expectRepositories()

		s.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(testUser(1, 10000), nil).Once()
		s.shopRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(testShop(2, 9), nil).Once()

		// The store assigns the ID inside the open transaction
		s.orderRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
			RunAndReturn(func(_ context.Context, order *entity.Order) (*entity.Order, error) {
				created := *order
				created.ID = 77
				return &created, nil
			}).Once()

		s.userRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Balance() == 7450
		})).RunAndReturn(func(_ context.Context, user *entity.User) (*entity.User, error) {
			return user, nil
		}).Once()

		s.shopRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(shop *entity.Shop) bool {
			return shop.SaleCount == 1
		})).RunAndReturn(func(_ context.Context, shop *entity.Shop) (*entity.Shop, error) {
			return shop, nil
		}).Once()

		s.session.EXPECT().Commit(mock.Anything).Return(nil).Once()

		service := m.service()
		order, err := service.PlaceOrderChecked(ctx, 1, req)

		require.NoError(t, err)
		assert.Equal(t, uint64(77), order.ID)
	})

	t.Run("Rolls back when the created order fails validation", func(t *testing.T) {
		m := newServiceMocks(t)
		s := newSessionMocks(t, m)

		s.session.EXPECT().Begin(mock.Anything).Return(nil).Once()
		s.expectRepositories()

		s.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(testUser(1, 10000), nil).Once()
		s.shopRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(testShop(2, 9), nil).Once()

		// Created order keeps a zero ID, which must fail the validity check
		s.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, order *entity.Order) (*entity.Order, error) {
				return order, nil
			}).Once()
		s.userRepo.EXPECT().Update(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, user *entity.User) (*entity.User, error) {
				return user, nil
			}).Once()
		s.shopRepo.EXPECT().Update(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, shop *entity.Shop) (*entity.Shop, error) {
				return shop, nil
			}).Once()

		s.session.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := m.service()
		order, err := service.PlaceOrderChecked(ctx, 1, req)

		assert.Nil(t, order)
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})

	t.Run("Rolls back when the buyer cannot afford the total", func(t *testing.T) {
		m := newServiceMocks(t)
		s := newSessionMocks(t, m)

		s.session.EXPECT().Begin(mock.Anything).Return(nil).Once()
		s.expectRepositories()

		s.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(testUser(1, 100), nil).Once()
		s.shopRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(testShop(2, 9), nil).Once()
		s.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, order *entity.Order) (*entity.Order, error) {
				created := *order
				created.ID = 77
				return &created, nil
			}).Once()

		s.session.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := m.service()
		order, err := service.PlaceOrderChecked(ctx, 1, req)

		assert.Nil(t, order)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	})

	t.Run("Begin failure aborts before any repository call", func(t *testing.T) {
		m := newServiceMocks(t)
		s := newSessionMocks(t, m)

		s.session.EXPECT().Begin(mock.Anything).Return(errs.ErrBeginFailed).Once()

		service := m.service()
		order, err := service.PlaceOrderChecked(ctx, 1, req)

		assert.Nil(t, order)
		assert.ErrorIs(t, err, errs.ErrBeginFailed)
	})

	t.Run("Rollback failure is logged, original error wins", func(t *testing.T) {
		m := newServiceMocks(t)
		s := newSessionMocks(t, m)

		s.session.EXPECT().Begin(mock.Anything).Return(nil).Once()
		s.expectRepositories()

		s.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(nil, errs.ErrUserNotFound).Once()
		s.session.EXPECT().Rollback(mock.Anything).Return(errs.ErrRollbackFailed).Once()

		service := m.service()
		order, err := service.PlaceOrderChecked(ctx, 1, req)

		assert.Nil(t, order)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
