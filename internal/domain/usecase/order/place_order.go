package order

import (
	"context"

	"github.com/poi2/shopflow/internal/domain/entity"
	"github.com/poi2/shopflow/internal/domain/port/usecase"
)

// PlaceOrder places an order through the command-staging coordinator.
// The buyer debit, the shop sale count and the order insert are staged in
// foreign-key order and committed atomically; no write reaches the store
// before Commit. Because nothing executes until then, the order's
// store-assigned ID is read back by reference after the commit
func (s *Service) PlaceOrder(ctx context.Context, userID uint64, req usecase.PlaceOrderRequest) (*entity.Order, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	shop, err := s.shopRepo.GetByID(ctx, req.ShopID)
	if err != nil {
		return nil, err
	}

	placed, err := entity.NewOrder(user.ID, shop.ID, req.Total, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := user.Debit(placed.TotalCents(), s.timeProvider); err != nil {
		s.logger.Warn("Order rejected, buyer cannot afford the total", map[string]any{
			"user_id": userID,
			"total":   placed.FormattedTotal(),
			"balance": user.FormattedBalance(),
		})
		return nil, err
	}
	shop.RecordSale(s.timeProvider)

	uow := s.stagedFactory.NewStagedUnitOfWork()
	uow.StageUpdate(user)
	uow.StageUpdate(shop)
	uow.StageCreate(placed)

	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Failed to commit order placement", map[string]any{
			"user_id": userID,
			"shop_id": req.ShopID,
			"error":   err.Error(),
		})
		return nil, err
	}

	created, err := s.orderRepo.GetByReference(ctx, placed.Reference)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order placed", map[string]any{
		"order_id":  created.ID,
		"reference": created.Reference,
		"user_id":   userID,
		"shop_id":   req.ShopID,
		"total":     created.FormattedTotal(),
	})
	return created, nil
}
