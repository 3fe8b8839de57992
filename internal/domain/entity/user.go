package entity

import (
	"strings"
	"time"

	errs "github.com/poi2/shopflow/internal/domain/error"
	coreport "github.com/poi2/shopflow/internal/domain/port/core"
)

// User represents a marketplace buyer with a prepaid balance
type User struct {
	ID         uint64    // Store-assigned identifier, zero until persisted
	Name       string    // Display name
	Email      string    // Contact email, unique per user
	balance    int64     // Balance in cents to avoid floating point precision issues (private)
	OrderCount uint64    // Count of orders placed by this user
	CreatedAt  time.Time // When the user was created
	UpdatedAt  time.Time // When the user was last updated
}

// NewUser creates a new user with the given name, email and initial balance
func NewUser(name, email, initialBalance string, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.ErrInvalidName
	}

	balanceInCents, err := ParseAmount(initialBalance)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		Name:      name,
		Email:     email,
		balance:   balanceInCents,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Balance returns the current balance in cents
func (u *User) Balance() int64 {
	return u.balance
}

// FormattedBalance returns the balance as a string with 2 decimal places
func (u *User) FormattedBalance() string {
	return FormatCents(u.balance)
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (u *User) SetBalance(balanceInCents int64) {
	u.balance = balanceInCents
}

// CanAfford checks if the user has enough balance to cover the given total
func (u *User) CanAfford(totalCents int64) bool {
	return u.balance >= totalCents
}

// Debit subtracts an order total from the balance and counts the order.
// Returns an error if the balance cannot cover it
func (u *User) Debit(totalCents int64, timeProvider coreport.TimeProvider) error {
	if u.balance < totalCents {
		return errs.ErrInsufficientBalance
	}

	u.balance -= totalCents
	u.OrderCount++
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Credit adds a refunded order total back to the balance
func (u *User) Credit(totalCents int64, timeProvider coreport.TimeProvider) {
	u.balance += totalCents
	u.UpdatedAt = timeProvider.Now()
}

// IsValid reports whether the persisted user state is consistent:
// a positive identifier and a non-negative balance
func (u *User) IsValid() bool {
	return u.ID > 0 && u.balance >= 0
}
