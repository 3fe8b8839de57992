package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/poi2/shopflow/internal/domain/entity"
	errs "github.com/poi2/shopflow/internal/domain/error"
	"github.com/poi2/shopflow/internal/domain/port/usecase"
	coremocks "github.com/poi2/shopflow/mocks/port/core"
	persistencemocks "github.com/poi2/shopflow/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogMocks struct {
	userRepo     *persistencemocks.MockUserRepository
	shopRepo     *persistencemocks.MockShopRepository
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
}

func newCatalogMocks(t *testing.T) *catalogMocks {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	m := &catalogMocks{
		userRepo:     persistencemocks.NewMockUserRepository(t),
		shopRepo:     persistencemocks.NewMockShopRepository(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	m.timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *catalogMocks) useCase() *CatalogUseCase {
	return NewCatalogUseCase(m.userRepo, m.shopRepo, m.timeProvider, m.logger)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	req := usecase.CreateUserRequest{Name: "alice", Email: "alice@example.com", InitialBalance: "100.00"}

	t.Run("Successful creation returns the persisted state", func(t *testing.T) {
		m := newCatalogMocks(t)

		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "alice@example.com" && user.Balance() == 10000
		})).RunAndReturn(func(_ context.Context, user *entity.User) (*entity.User, error) {
			created := *user
			created.ID = 1
			return &created, nil
		}).Once()

		user, err := m.useCase().CreateUser(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Equal(t, "100.00", user.FormattedBalance())
	})

	t.Run("Malformed balance never reaches the repository", func(t *testing.T) {
		m := newCatalogMocks(t)

		user, err := m.useCase().CreateUser(ctx, usecase.CreateUserRequest{Name: "alice", Email: "a@b.c", InitialBalance: "nope"})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		m := newCatalogMocks(t)
		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errs.ErrDuplicateUser).Once()

		user, err := m.useCase().CreateUser(ctx, req)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})
}

func TestCreateShop(t *testing.T) {
	ctx := context.Background()
	req := usecase.CreateShopRequest{OwnerID: 1, Name: "alice-books"}

	t.Run("Successful creation checks the owner first", func(t *testing.T) {
		m := newCatalogMocks(t)

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(&entity.User{ID: 1}, nil).Once()
		m.shopRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(shop *entity.Shop) bool {
			return shop.OwnerID == 1 && shop.Name == "alice-books"
		})).RunAndReturn(func(_ context.Context, shop *entity.Shop) (*entity.Shop, error) {
			created := *shop
			created.ID = 7
			return &created, nil
		}).Once()

		shop, err := m.useCase().CreateShop(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), shop.ID)
	})

	t.Run("Missing owner", func(t *testing.T) {
		m := newCatalogMocks(t)
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(nil, errs.ErrUserNotFound).Once()

		shop, err := m.useCase().CreateShop(ctx, req)

		assert.Nil(t, shop)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Duplicate shop name", func(t *testing.T) {
		m := newCatalogMocks(t)
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(&entity.User{ID: 1}, nil).Once()
		m.shopRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errs.ErrDuplicateShop).Once()

		shop, err := m.useCase().CreateShop(ctx, req)

		assert.Nil(t, shop)
		assert.ErrorIs(t, err, errs.ErrDuplicateShop)
	})
}

func TestGetUserAndShop(t *testing.T) {
	ctx := context.Background()

	m := newCatalogMocks(t)
	m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(&entity.User{ID: 1}, nil).Once()
	m.shopRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(nil, errs.ErrShopNotFound).Once()

	uc := m.useCase()

	user, err := uc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), user.ID)

	shop, err := uc.GetShop(ctx, 2)
	assert.Nil(t, shop)
	assert.ErrorIs(t, err, errs.ErrShopNotFound)
}
