package order

import (
	"context"
	"testing"

	"github.com/poi2/shopflow/internal/domain/entity"
	errs "github.com/poi2/shopflow/internal/domain/error"
	persistencemocks "github.com/poi2/shopflow/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func placedOrder(id, userID, shopID uint64, totalCents int64) *entity.Order {
	order := &entity.Order{
		ID:        id,
		Reference: "ref-1",
		UserID:    userID,
		ShopID:    shopID,
		Status:    entity.OrderStatusPlaced,
	}
	order.SetTotalCents(totalCents)
	return order
}

func TestCancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Refunds the buyer and removes the order atomically", func(t *testing.T) {
		m := newServiceMocks(t)

		order := placedOrder(77, 1, 2, 2550)
		m.orderRepo.EXPECT().GetByID(mock.Anything, uint64(77)).Return(order, nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(testUser(1, 7450), nil).Once()
		shop := testShop(2, 9)
		shop.SaleCount = 1
		m.shopRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(shop, nil).Once()

		mockUow := persistencemocks.NewMockStagedUnitOfWork(t)
		mockUow.EXPECT().StageUpdate(mock.MatchedBy(func(aggregate entity.Aggregate) bool {
			user, ok := aggregate.(*entity.User)
			return ok && user.Balance() == 10000
		})).Once()
		mockUow.EXPECT().StageUpdate(mock.MatchedBy(func(aggregate entity.Aggregate) bool {
			staged, ok := aggregate.(*entity.Shop)
			return ok && staged.SaleCount == 0
		})).Once()
		mockUow.EXPECT().StageDelete(mock.MatchedBy(func(aggregate entity.Aggregate) bool {
			staged, ok := aggregate.(*entity.Order)
			return ok && staged.ID == 77
		})).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.stagedFactory.EXPECT().NewStagedUnitOfWork().Return(mockUow).Once()

		service := m.service()
		err := service.CancelOrder(ctx, 77)

		require.NoError(t, err)
	})

	t.Run("Unknown order", func(t *testing.T) {
		m := newServiceMocks(t)
		m.orderRepo.EXPECT().GetByID(mock.Anything, uint64(77)).Return(nil, errs.ErrOrderNotFound).Once()

		service := m.service()
		err := service.CancelOrder(ctx, 77)

		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("Already cancelled order", func(t *testing.T) {
		m := newServiceMocks(t)

		order := placedOrder(77, 1, 2, 2550)
		order.Status = entity.OrderStatusCancelled
		m.orderRepo.EXPECT().GetByID(mock.Anything, uint64(77)).Return(order, nil).Once()

		service := m.service()
		err := service.CancelOrder(ctx, 77)

		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("Commit failure leaves the error to the caller", func(t *testing.T) {
		m := newServiceMocks(t)

		m.orderRepo.EXPECT().GetByID(mock.Anything, uint64(77)).Return(placedOrder(77, 1, 2, 2550), nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(testUser(1, 7450), nil).Once()
		m.shopRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(testShop(2, 9), nil).Once()

		mockUow := persistencemocks.NewMockStagedUnitOfWork(t)
		mockUow.EXPECT().StageUpdate(mock.Anything).Twice()
		mockUow.EXPECT().StageDelete(mock.Anything).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(errs.ErrCommitFailed).Once()
		m.stagedFactory.EXPECT().NewStagedUnitOfWork().Return(mockUow).Once()

		service := m.service()
		err := service.CancelOrder(ctx, 77)

		assert.ErrorIs(t, err, errs.ErrCommitFailed)
	})
}
