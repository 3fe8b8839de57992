package persistence

import (
	"context"

	"github.com/poi2/shopflow/internal/domain/entity"
)

// OrderRepository defines the persistence capability set for the Order aggregate
type OrderRepository interface {
	// GetByID retrieves an order by ID
	//
	// Possible errors:
	// - ErrOrderNotFound: if no order with the given ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Order, error)

	// GetByReference retrieves an order by its external reference
	//
	// Possible errors:
	// - ErrOrderNotFound: if no order with the given reference exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByReference(ctx context.Context, reference string) (*entity.Order, error)

	// Create inserts a new order and returns its post-write state,
	// including the store-assigned ID
	//
	// Possible errors:
	// - ErrDuplicateOrder: if an order with the same reference already exists
	// - ErrConstraintViolation: if the user or shop does not exist
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, order *entity.Order) (*entity.Order, error)

	// Update persists the given order state and returns the post-write state
	//
	// Possible errors:
	// - ErrOrderNotFound: if the order doesn't exist
	// - ErrDatabaseConnection: if the database is unreachable
	Update(ctx context.Context, order *entity.Order) (*entity.Order, error)

	// Delete removes the given order
	//
	// Possible errors:
	// - ErrOrderNotFound: if the order doesn't exist
	// - ErrDatabaseConnection: if the database is unreachable
	Delete(ctx context.Context, order *entity.Order) error
}
