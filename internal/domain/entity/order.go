package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/poi2/shopflow/internal/domain/error"
	coreport "github.com/poi2/shopflow/internal/domain/port/core"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	// OrderStatusPlaced means the order has been persisted and paid for
	OrderStatusPlaced OrderStatus = "placed"
	// OrderStatusCancelled means the order was cancelled and refunded
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order represents a purchase of a user against a shop
type Order struct {
	ID         uint64      // Store-assigned identifier, zero until persisted
	Reference  string      // External reference, unique per order
	UserID     uint64      // Buying user, enforced by foreign key
	ShopID     uint64      // Selling shop, enforced by foreign key
	totalCents int64       // Order total in cents (private)
	Status     OrderStatus // Current lifecycle state
	CreatedAt  time.Time   // When the order was created
	UpdatedAt  time.Time   // When the order was last updated
}

// NewOrder creates a new order for the given user and shop with a generated reference
func NewOrder(userID, shopID uint64, total string, timeProvider coreport.TimeProvider) (*Order, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if shopID == 0 {
		return nil, errs.ErrInvalidShopID
	}

	totalCents, err := ParseAmount(total)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Order{
		Reference:  uuid.NewString(),
		UserID:     userID,
		ShopID:     shopID,
		totalCents: totalCents,
		Status:     OrderStatusPlaced,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// TotalCents returns the order total in cents
func (o *Order) TotalCents() int64 {
	return o.totalCents
}

// FormattedTotal returns the order total as a string with 2 decimal places
func (o *Order) FormattedTotal() string {
	return FormatCents(o.totalCents)
}

// SetTotalCents updates the total directly (for internal use, like repositories)
func (o *Order) SetTotalCents(totalCents int64) {
	o.totalCents = totalCents
}

// Cancel marks the order as cancelled
func (o *Order) Cancel(timeProvider coreport.TimeProvider) {
	o.Status = OrderStatusCancelled
	o.UpdatedAt = timeProvider.Now()
}

// IsValid reports whether the persisted order state is consistent:
// a positive identifier, a reference, and a positive total
func (o *Order) IsValid() bool {
	return o.ID > 0 && o.Reference != "" && o.totalCents > 0
}
