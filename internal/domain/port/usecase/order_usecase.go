package usecase

import (
	"context"

	"github.com/poi2/shopflow/internal/domain/entity"
)

// PlaceOrderRequest represents an incoming order placement request
type PlaceOrderRequest struct {
	ShopID uint64 `json:"shopId"`
	Total  string `json:"total"`
}

// OrderUseCase defines methods for order-related business operations
type OrderUseCase interface {
	// PlaceOrder places an order by staging the buyer debit, the shop sale
	// count and the order insert, then committing them atomically in that
	// order. The placed order is looked up by reference after the commit
	PlaceOrder(ctx context.Context, userID uint64, req PlaceOrderRequest) (*entity.Order, error)

	// PlaceOrderChecked places an order inside a live transactional session:
	// the order is created first so its store-assigned state can be
	// validated, and the whole unit of work is rolled back when any
	// post-write state fails its validity check
	PlaceOrderChecked(ctx context.Context, userID uint64, req PlaceOrderRequest) (*entity.Order, error)

	// CancelOrder cancels a placed order, refunding the buyer and reverting
	// the shop sale count atomically with the order removal
	CancelOrder(ctx context.Context, orderID uint64) error

	// GetOrder retrieves an order by ID
	GetOrder(ctx context.Context, orderID uint64) (*entity.Order, error)
}
