package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/poi2/shopflow/internal/domain/entity"
	errs "github.com/poi2/shopflow/internal/domain/error"
	coreport "github.com/poi2/shopflow/internal/domain/port/core"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ShopRepository implements persistence.ShopRepository using GORM
type ShopRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewShopRepository creates a new ShopRepository instance
func NewShopRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ShopRepository {
	return &ShopRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *ShopRepository) modelToEntity(shopModel *model.Shop) *entity.Shop {
	return &entity.Shop{
		ID:        shopModel.ID,
		OwnerID:   shopModel.OwnerID,
		Name:      shopModel.Name,
		SaleCount: shopModel.SaleCount,
		CreatedAt: shopModel.CreatedAt,
		UpdatedAt: shopModel.UpdatedAt,
	}
}

func (r *ShopRepository) entityToModel(shop *entity.Shop) *model.Shop {
	return &model.Shop{
		ID:        shop.ID,
		OwnerID:   shop.OwnerID,
		Name:      shop.Name,
		SaleCount: shop.SaleCount,
		CreatedAt: shop.CreatedAt,
		UpdatedAt: shop.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *ShopRepository) handleDatabaseError(operation string, err error, shopID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"shop_id": shopID,
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrShopNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateShop
	}

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a shop by ID
func (r *ShopRepository) GetByID(ctx context.Context, id uint64) (*entity.Shop, error) {
	r.logger.Debug("Getting shop by ID", map[string]any{
		"shop_id": id,
	})

	var shopModel model.Shop
	result := r.db.WithContext(ctx).First(&shopModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting shop", result.Error, id)
	}

	return r.modelToEntity(&shopModel), nil
}

// Create inserts a new shop and returns its post-write state
func (r *ShopRepository) Create(ctx context.Context, shop *entity.Shop) (*entity.Shop, error) {
	r.logger.Debug("Creating new shop", map[string]any{
		"owner_id": shop.OwnerID,
		"name":     shop.Name,
	})

	shopModel := r.entityToModel(shop)

	result := r.db.WithContext(ctx).Create(shopModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("creating shop", result.Error, shop.ID)
	}

	created := r.modelToEntity(shopModel)
	r.logger.Info("Shop created", map[string]any{
		"shop_id":  created.ID,
		"owner_id": created.OwnerID,
	})
	return created, nil
}

// Update persists the given shop state and returns the post-write state
func (r *ShopRepository) Update(ctx context.Context, shop *entity.Shop) (*entity.Shop, error) {
	r.logger.Debug("Updating shop", map[string]any{
		"shop_id":    shop.ID,
		"sale_count": shop.SaleCount,
	})

	result := r.db.WithContext(ctx).Model(&model.Shop{}).
		Where("id = ?", shop.ID).
		Updates(map[string]interface{}{
			"name":       shop.Name,
			"sale_count": shop.SaleCount,
			"updated_at": shop.UpdatedAt,
		})

	if result.Error != nil {
		return nil, r.handleDatabaseError("updating shop", result.Error, shop.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Shop not found during update", map[string]any{
			"shop_id": shop.ID,
		})
		return nil, errs.ErrShopNotFound
	}

	var shopModel model.Shop
	if err := r.db.WithContext(ctx).First(&shopModel, shop.ID).Error; err != nil {
		return nil, r.handleDatabaseError("reading back shop", err, shop.ID)
	}

	return r.modelToEntity(&shopModel), nil
}

// Delete removes the given shop
func (r *ShopRepository) Delete(ctx context.Context, shop *entity.Shop) error {
	r.logger.Debug("Deleting shop", map[string]any{
		"shop_id": shop.ID,
	})

	result := r.db.WithContext(ctx).Delete(&model.Shop{}, shop.ID)
	if result.Error != nil {
		return r.handleDatabaseError("deleting shop", result.Error, shop.ID)
	}

	if result.RowsAffected == 0 {
		return errs.ErrShopNotFound
	}

	return nil
}
