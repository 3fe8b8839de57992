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

// OrderRepository implements persistence.OrderRepository using GORM
type OrderRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewOrderRepository creates a new OrderRepository instance
func NewOrderRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *OrderRepository {
	return &OrderRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *OrderRepository) modelToEntity(orderModel *model.Order) *entity.Order {
	order := &entity.Order{
		ID:        orderModel.ID,
		Reference: orderModel.Reference,
		UserID:    orderModel.UserID,
		ShopID:    orderModel.ShopID,
		Status:    entity.OrderStatus(orderModel.Status),
		CreatedAt: orderModel.CreatedAt,
		UpdatedAt: orderModel.UpdatedAt,
	}
	order.SetTotalCents(orderModel.TotalCents)
	return order
}

func (r *OrderRepository) entityToModel(order *entity.Order) *model.Order {
	return &model.Order{
		ID:         order.ID,
		Reference:  order.Reference,
		UserID:     order.UserID,
		ShopID:     order.ShopID,
		TotalCents: order.TotalCents(),
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *OrderRepository) handleDatabaseError(operation string, err error, orderID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"order_id": orderID,
		"error":    err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrOrderNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateOrder
	}

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id uint64) (*entity.Order, error) {
	r.logger.Debug("Getting order by ID", map[string]any{
		"order_id": id,
	})

	var orderModel model.Order
	result := r.db.WithContext(ctx).First(&orderModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting order", result.Error, id)
	}

	return r.modelToEntity(&orderModel), nil
}

// GetByReference retrieves an order by its external reference
func (r *OrderRepository) GetByReference(ctx context.Context, reference string) (*entity.Order, error) {
	r.logger.Debug("Getting order by reference", map[string]any{
		"reference": reference,
	})

	var orderModel model.Order
	result := r.db.WithContext(ctx).Where("reference = ?", reference).First(&orderModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting order by reference", result.Error, 0)
	}

	return r.modelToEntity(&orderModel), nil
}

// Create inserts a new order and returns its post-write state
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	r.logger.Debug("Creating new order", map[string]any{
		"reference": order.Reference,
		"user_id":   order.UserID,
		"shop_id":   order.ShopID,
		"total":     order.FormattedTotal(),
	})

	orderModel := r.entityToModel(order)

	result := r.db.WithContext(ctx).Create(orderModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("creating order", result.Error, order.ID)
	}

	created := r.modelToEntity(orderModel)
	r.logger.Info("Order created", map[string]any{
		"order_id":  created.ID,
		"reference": created.Reference,
		"total":     created.FormattedTotal(),
	})
	return created, nil
}

// Update persists the given order state and returns the post-write state
func (r *OrderRepository) Update(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	r.logger.Debug("Updating order", map[string]any{
		"order_id": order.ID,
		"status":   string(order.Status),
	})

	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"total_cents": order.TotalCents(),
			"status":      string(order.Status),
			"updated_at":  order.UpdatedAt,
		})

	if result.Error != nil {
		return nil, r.handleDatabaseError("updating order", result.Error, order.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Order not found during update", map[string]any{
			"order_id": order.ID,
		})
		return nil, errs.ErrOrderNotFound
	}

	var orderModel model.Order
	if err := r.db.WithContext(ctx).First(&orderModel, order.ID).Error; err != nil {
		return nil, r.handleDatabaseError("reading back order", err, order.ID)
	}

	return r.modelToEntity(&orderModel), nil
}

// Delete removes the given order
func (r *OrderRepository) Delete(ctx context.Context, order *entity.Order) error {
	r.logger.Debug("Deleting order", map[string]any{
		"order_id": order.ID,
	})

	result := r.db.WithContext(ctx).Delete(&model.Order{}, order.ID)
	if result.Error != nil {
		return r.handleDatabaseError("deleting order", result.Error, order.ID)
	}

	if result.RowsAffected == 0 {
		return errs.ErrOrderNotFound
	}

	return nil
}
