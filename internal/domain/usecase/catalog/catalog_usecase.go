package catalog

import (
	"context"

	"github.com/poi2/shopflow/internal/domain/entity"
	coreport "github.com/poi2/shopflow/internal/domain/port/core"
	"github.com/poi2/shopflow/internal/domain/port/persistence"
	"github.com/poi2/shopflow/internal/domain/port/usecase"
)

// CatalogUseCase implements user and shop catalog operations. Catalog writes
// touch a single aggregate each, so they go through the repositories
// directly; only multi-aggregate writes need a unit of work
type CatalogUseCase struct {
	userRepo     persistence.UserRepository
	shopRepo     persistence.ShopRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCatalogUseCase creates a new catalog use case
func NewCatalogUseCase(
	userRepo persistence.UserRepository,
	shopRepo persistence.ShopRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		userRepo:     userRepo,
		shopRepo:     shopRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateUser creates a new user with the given name, email and initial balance
func (uc *CatalogUseCase) CreateUser(ctx context.Context, req usecase.CreateUserRequest) (*entity.User, error) {
	user, err := entity.NewUser(req.Name, req.Email, req.InitialBalance, uc.timeProvider)
	if err != nil {
		return nil, err
	}

	created, err := uc.userRepo.Create(ctx, user)
	if err != nil {
		uc.logger.Error("Failed to create user", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	uc.logger.Info("User created", map[string]any{
		"user_id": created.ID,
		"email":   created.Email,
	})
	return created, nil
}

// GetUser retrieves a user by ID
func (uc *CatalogUseCase) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// CreateShop creates a new shop owned by the given user
func (uc *CatalogUseCase) CreateShop(ctx context.Context, req usecase.CreateShopRequest) (*entity.Shop, error) {
	shop, err := entity.NewShop(req.OwnerID, req.Name, uc.timeProvider)
	if err != nil {
		return nil, err
	}

	// Fail early with a domain error when the owner is missing instead of
	// surfacing a foreign key violation
	if _, err := uc.userRepo.GetByID(ctx, req.OwnerID); err != nil {
		return nil, err
	}

	created, err := uc.shopRepo.Create(ctx, shop)
	if err != nil {
		uc.logger.Error("Failed to create shop", map[string]any{
			"owner_id": req.OwnerID,
			"name":     req.Name,
			"error":    err.Error(),
		})
		return nil, err
	}

	uc.logger.Info("Shop created", map[string]any{
		"shop_id":  created.ID,
		"owner_id": created.OwnerID,
	})
	return created, nil
}

// GetShop retrieves a shop by ID
func (uc *CatalogUseCase) GetShop(ctx context.Context, shopID uint64) (*entity.Shop, error) {
	return uc.shopRepo.GetByID(ctx, shopID)
}
