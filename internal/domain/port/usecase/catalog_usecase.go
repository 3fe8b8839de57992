package usecase

import (
	"context"

	"github.com/poi2/shopflow/internal/domain/entity"
)

// CreateUserRequest represents an incoming user creation request
type CreateUserRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	InitialBalance string `json:"initialBalance"`
}

// CreateShopRequest represents an incoming shop creation request
type CreateShopRequest struct {
	OwnerID uint64 `json:"ownerId"`
	Name    string `json:"name"`
}

// CatalogUseCase defines methods for managing the user and shop catalog
type CatalogUseCase interface {
	// CreateUser creates a new user with the given name, email and initial balance
	CreateUser(ctx context.Context, req CreateUserRequest) (*entity.User, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, userID uint64) (*entity.User, error)

	// CreateShop creates a new shop owned by the given user
	CreateShop(ctx context.Context, req CreateShopRequest) (*entity.Shop, error)

	// GetShop retrieves a shop by ID
	GetShop(ctx context.Context, shopID uint64) (*entity.Shop, error)
}
