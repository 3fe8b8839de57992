package order

import (
	"context"
	"fmt"

	"github.com/poi2/shopflow/internal/domain/entity"
	errs "github.com/poi2/shopflow/internal/domain/error"
	"github.com/poi2/shopflow/internal/domain/port/persistence"
	"github.com/poi2/shopflow/internal/domain/port/usecase"
)

// PlaceOrderChecked places an order through the live-session coordinator.
// Every repository call executes immediately inside the open transaction,
// so the store-assigned order state and the post-debit user state are
// observable before the commit decision: the whole unit of work is rolled
// back when any of them fails its validity check
func (s *Service) PlaceOrderChecked(ctx context.Context, userID uint64, req usecase.PlaceOrderRequest) (*entity.Order, error) {
	uow := s.sessionFactory.NewSessionUnitOfWork()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	created, err := s.placeOrderInSession(ctx, uow, userID, req)
	if err != nil {
		if rbErr := uow.Rollback(ctx); rbErr != nil {
			s.logger.Error("Failed to rollback order placement", map[string]any{
				"user_id": userID,
				"error":   rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		s.logger.Error("Failed to commit order placement", map[string]any{
			"user_id": userID,
			"shop_id": req.ShopID,
			"error":   err.Error(),
		})
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

// placeOrderInSession runs the writes of one order placement against the
// open session. The caller owns the transaction boundary: any error returned
// here means the session must be rolled back
func (s *Service) placeOrderInSession(ctx context.Context, uow persistence.SessionUnitOfWork, userID uint64, req usecase.PlaceOrderRequest) (*entity.Order, error) {
	users := uow.UserRepository()
	shops := uow.ShopRepository()
	orders := uow.OrderRepository()

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	shop, err := shops.GetByID(ctx, req.ShopID)
	if err != nil {
		return nil, err
	}

	order, err := entity.NewOrder(user.ID, shop.ID, req.Total, s.timeProvider)
	if err != nil {
		return nil, err
	}

	created, err := orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := user.Debit(created.TotalCents(), s.timeProvider); err != nil {
		return nil, err
	}
	updatedUser, err := users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	shop.RecordSale(s.timeProvider)
	if _, err := shops.Update(ctx, shop); err != nil {
		return nil, err
	}

	// The commit/rollback decision is based on the intermediate state the
	// live session makes observable
	if !created.IsValid() {
		return nil, fmt.Errorf("%w: order %d failed post-write validation", errs.ErrInternalServer, created.ID)
	}
	if !updatedUser.IsValid() {
		return nil, fmt.Errorf("%w: user %d failed post-write validation", errs.ErrInternalServer, updatedUser.ID)
	}

	return created, nil
}
