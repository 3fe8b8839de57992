package persistence

import (
	"context"

	"github.com/poi2/shopflow/internal/domain/entity"
)

// UserRepository defines the persistence capability set for the User aggregate.
// Implementations are pure CRUD adapters: they execute within whatever
// transactional scope they were constructed for and never open or close one
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// Create inserts a new user and returns its post-write state,
	// including the store-assigned ID
	//
	// Possible errors:
	// - ErrDuplicateUser: if a user with the same email already exists
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, user *entity.User) (*entity.User, error)

	// Update persists the given user state and returns the post-write state
	//
	// Possible errors:
	// - ErrUserNotFound: if the user doesn't exist
	// - ErrDatabaseConnection: if the database is unreachable
	Update(ctx context.Context, user *entity.User) (*entity.User, error)

	// Delete removes the given user
	//
	// Possible errors:
	// - ErrUserNotFound: if the user doesn't exist
	// - ErrConstraintViolation: if shops or orders still reference the user
	// - ErrDatabaseConnection: if the database is unreachable
	Delete(ctx context.Context, user *entity.User) error
}
