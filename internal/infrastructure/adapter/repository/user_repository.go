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

// UserRepository implements persistence.UserRepository using GORM.
// It executes every statement against the *gorm.DB it was constructed with,
// which may be a live transaction or the base connection
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:         userModel.ID,
		Name:       userModel.Name,
		Email:      userModel.Email,
		OrderCount: userModel.OrderCount,
		CreatedAt:  userModel.CreatedAt,
		UpdatedAt:  userModel.UpdatedAt,
	}
	user.SetBalance(userModel.Balance)
	return user
}

// entityToModel converts a user entity to a model
func (r *UserRepository) entityToModel(user *entity.User) *model.User {
	return &model.User{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Balance:    user.Balance(),
		OrderCount: user.OrderCount,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// Create inserts a new user and returns its post-write state
func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.logger.Debug("Creating new user", map[string]any{
		"name":    user.Name,
		"email":   user.Email,
		"balance": user.FormattedBalance(),
	})

	userModel := r.entityToModel(user)

	result := r.db.WithContext(ctx).Create(userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	created := r.modelToEntity(userModel)
	r.logger.Info("User created", map[string]any{
		"user_id": created.ID,
		"email":   created.Email,
	})
	return created, nil
}

// Update persists the given user state and returns the post-write state
func (r *UserRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.logger.Debug("Updating user", map[string]any{
		"user_id":     user.ID,
		"balance":     user.FormattedBalance(),
		"order_count": user.OrderCount,
	})

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"name":        user.Name,
			"email":       user.Email,
			"balance":     user.Balance(),
			"order_count": user.OrderCount,
			"updated_at":  user.UpdatedAt,
		})

	if result.Error != nil {
		return nil, r.handleDatabaseError("updating user", result.Error, user.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrUserNotFound
	}

	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, user.ID).Error; err != nil {
		return nil, r.handleDatabaseError("reading back user", err, user.ID)
	}

	return r.modelToEntity(&userModel), nil
}

// Delete removes the given user
func (r *UserRepository) Delete(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Deleting user", map[string]any{
		"user_id": user.ID,
	})

	result := r.db.WithContext(ctx).Delete(&model.User{}, user.ID)
	if result.Error != nil {
		return r.handleDatabaseError("deleting user", result.Error, user.ID)
	}

	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}
