package entity

import (
	"testing"
	"time"

	errs "github.com/poi2/shopflow/internal/domain/error"
	coremocks "github.com/poi2/shopflow/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedTimeProvider(t *testing.T, fixed time.Time) *coremocks.MockTimeProvider {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixed).Maybe()
	return mockTime
}

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := fixedTimeProvider(t, fixedTime)

		user, err := NewUser("alice", "alice@example.com", "100.00", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, int64(10000), user.Balance())
		assert.Equal(t, "100.00", user.FormattedBalance())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Zero(t, user.ID)
	})

	t.Run("Blank name", func(t *testing.T) {
		mockTime := fixedTimeProvider(t, fixedTime)

		user, err := NewUser("  ", "alice@example.com", "100.00", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidName)
	})

	t.Run("Malformed balance", func(t *testing.T) {
		mockTime := fixedTimeProvider(t, fixedTime)

		user, err := NewUser("alice", "alice@example.com", "not-a-number", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestUserDebit(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Sufficient balance", func(t *testing.T) {
		mockTime := fixedTimeProvider(t, fixedTime)
		user, err := NewUser("alice", "alice@example.com", "50.00", mockTime)
		require.NoError(t, err)

		err = user.Debit(1250, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(3750), user.Balance())
		assert.Equal(t, uint64(1), user.OrderCount)
	})

	t.Run("Exact balance", func(t *testing.T) {
		mockTime := fixedTimeProvider(t, fixedTime)
		user, err := NewUser("alice", "alice@example.com", "12.50", mockTime)
		require.NoError(t, err)

		err = user.Debit(1250, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), user.Balance())
	})

	t.Run("Insufficient balance leaves state untouched", func(t *testing.T) {
		mockTime := fixedTimeProvider(t, fixedTime)
		user, err := NewUser("alice", "alice@example.com", "10.00", mockTime)
		require.NoError(t, err)

		err = user.Debit(1001, mockTime)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, int64(1000), user.Balance())
		assert.Zero(t, user.OrderCount)
	})
}

func TestUserCredit(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := fixedTimeProvider(t, fixedTime)

	user, err := NewUser("alice", "alice@example.com", "10.00", mockTime)
	require.NoError(t, err)

	user.Credit(500, mockTime)

	assert.Equal(t, int64(1500), user.Balance())
}

func TestUserCanAfford(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := fixedTimeProvider(t, fixedTime)

	user, err := NewUser("alice", "alice@example.com", "10.00", mockTime)
	require.NoError(t, err)

	assert.True(t, user.CanAfford(1000))
	assert.True(t, user.CanAfford(999))
	assert.False(t, user.CanAfford(1001))
}

func TestUserIsValid(t *testing.T) {
	t.Run("Persisted user with non-negative balance", func(t *testing.T) {
		user := &User{ID: 1}
		user.SetBalance(0)
		assert.True(t, user.IsValid())
	})

	t.Run("Unpersisted user", func(t *testing.T) {
		user := &User{}
		user.SetBalance(100)
		assert.False(t, user.IsValid())
	})

	t.Run("Negative balance", func(t *testing.T) {
		user := &User{ID: 1}
		user.SetBalance(-1)
		assert.False(t, user.IsValid())
	})
}
