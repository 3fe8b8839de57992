package persistence

import (
	"context"

	"github.com/poi2/shopflow/internal/domain/entity"
)

// ShopRepository defines the persistence capability set for the Shop aggregate
type ShopRepository interface {
	// GetByID retrieves a shop by ID
	//
	// Possible errors:
	// - ErrShopNotFound: if no shop with the given ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Shop, error)

	// Create inserts a new shop and returns its post-write state,
	// including the store-assigned ID
	//
	// Possible errors:
	// - ErrDuplicateShop: if a shop with the same name already exists
	// - ErrConstraintViolation: if the owner does not exist
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, shop *entity.Shop) (*entity.Shop, error)

	// Update persists the given shop state and returns the post-write state
	//
	// Possible errors:
	// - ErrShopNotFound: if the shop doesn't exist
	// - ErrDatabaseConnection: if the database is unreachable
	Update(ctx context.Context, shop *entity.Shop) (*entity.Shop, error)

	// Delete removes the given shop
	//
	// Possible errors:
	// - ErrShopNotFound: if the shop doesn't exist
	// - ErrConstraintViolation: if orders still reference the shop
	// - ErrDatabaseConnection: if the database is unreachable
	Delete(ctx context.Context, shop *entity.Shop) error
}
