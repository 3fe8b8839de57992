package order

import (
	"context"

	"github.com/poi2/shopflow/internal/domain/entity"
	errs "github.com/poi2/shopflow/internal/domain/error"
)

// CancelOrder cancels a placed order. The buyer refund, the shop sale-count
// revert and the order removal are staged in that order and committed
// atomically through the command-staging coordinator
func (s *Service) CancelOrder(ctx context.Context, orderID uint64) error {
	placed, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if placed.Status != entity.OrderStatusPlaced {
		return errs.ErrOrderNotFound
	}

	user, err := s.userRepo.GetByID(ctx, placed.UserID)
	if err != nil {
		return err
	}

	shop, err := s.shopRepo.GetByID(ctx, placed.ShopID)
	if err != nil {
		return err
	}

	user.Credit(placed.TotalCents(), s.timeProvider)
	shop.RevertSale(s.timeProvider)

	uow := s.stagedFactory.NewStagedUnitOfWork()
	uow.StageUpdate(user)
	uow.StageUpdate(shop)
	uow.StageDelete(placed)

	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Failed to commit order cancellation", map[string]any{
			"order_id": orderID,
			"error":    err.Error(),
		})
		return err
	}

	s.logger.Info("Order cancelled", map[string]any{
		"order_id": orderID,
		"user_id":  user.ID,
		"refund":   placed.FormattedTotal(),
	})
	return nil
}
