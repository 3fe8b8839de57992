package order

import (
	"context"

	"github.com/poi2/shopflow/internal/domain/entity"
	coreport "github.com/poi2/shopflow/internal/domain/port/core"
	"github.com/poi2/shopflow/internal/domain/port/persistence"
)

// Service implements order placement and cancellation on top of the two
// unit-of-work coordinator variants. Every operation obtains a fresh
// coordinator from its factory: a coordinator instance serves exactly one
// logical unit of work
type Service struct {
	stagedFactory  persistence.StagedUnitOfWorkFactory
	sessionFactory persistence.SessionUnitOfWorkFactory

	// Read-side repositories bound to the base connection, used outside
	// any unit of work
	userRepo  persistence.UserRepository
	shopRepo  persistence.ShopRepository
	orderRepo persistence.OrderRepository

	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new order service
func NewService(
	stagedFactory persistence.StagedUnitOfWorkFactory,
	sessionFactory persistence.SessionUnitOfWorkFactory,
	userRepo persistence.UserRepository,
	shopRepo persistence.ShopRepository,
	orderRepo persistence.OrderRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		stagedFactory:  stagedFactory,
		sessionFactory: sessionFactory,
		userRepo:       userRepo,
		shopRepo:       shopRepo,
		orderRepo:      orderRepo,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// GetOrder retrieves an order by ID
func (s *Service) GetOrder(ctx context.Context, orderID uint64) (*entity.Order, error) {
	return s.orderRepo.GetByID(ctx, orderID)
}
