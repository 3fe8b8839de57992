package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4001
	CodeInvalidUserID       = 4002
	CodeInvalidShopID       = 4003
	CodeInvalidOrderID      = 4004
	CodeDuplicateOrder      = 4005
	CodeConstraintViolation = 4006
	CodeInsufficientBalance = 4007
	CodeUserNotFound        = 4040
	CodeShopNotFound        = 4041
	CodeOrderNotFound       = 4042

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeTransactionState = 5001
)

// Base error types
var (
	// ErrTransactionAlreadyActive is returned when Begin is called while a
	// transaction is already open on the same coordinator
	ErrTransactionAlreadyActive = errors.New("transaction already active")

	// ErrNoActiveTransaction is returned when Commit or Rollback is called
	// with no open transaction
	ErrNoActiveTransaction = errors.New("no active transaction")

	// ErrBeginFailed is returned when the underlying store fails to open a transaction
	ErrBeginFailed = errors.New("failed to begin transaction")

	// ErrCommitFailed is returned when the underlying commit call fails;
	// the handle is released regardless
	ErrCommitFailed = errors.New("failed to commit transaction")

	// ErrRollbackFailed is returned when the underlying rollback call fails;
	// the handle is released regardless
	ErrRollbackFailed = errors.New("failed to rollback transaction")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrShopNotFound is returned when the requested shop doesn't exist
	ErrShopNotFound = errors.New("shop not found")

	// ErrOrderNotFound is returned when the requested order doesn't exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateShop is returned when trying to create a shop that already exists
	ErrDuplicateShop = errors.New("shop already exists")

	// ErrDuplicateOrder is returned when an order with the same reference already exists
	ErrDuplicateOrder = errors.New("order with this reference already exists")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidShopID is returned when the shop ID is not a positive integer
	ErrInvalidShopID = errors.New("shop ID must be positive")

	// ErrInvalidOrderID is returned when the order ID is not a positive integer
	ErrInvalidOrderID = errors.New("order ID must be positive")

	// ErrInvalidAmount is returned when a money amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a money amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when an amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInsufficientBalance is returned when a buyer cannot cover an order total
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidName is returned when a user or shop name is empty
	ErrInvalidName = errors.New("name cannot be empty")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrAmountOverflow):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidShopID):
		return CodeInvalidShopID
	case errors.Is(err, ErrInvalidOrderID):
		return CodeInvalidOrderID
	case errors.Is(err, ErrDuplicateOrder):
		return CodeDuplicateOrder
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrShopNotFound):
		return CodeShopNotFound
	case errors.Is(err, ErrOrderNotFound):
		return CodeOrderNotFound
	case errors.Is(err, ErrTransactionAlreadyActive), errors.Is(err, ErrNoActiveTransaction):
		return CodeTransactionState
	default:
		return CodeInternalServer
	}
}

// PersistenceError reports the failure of a single replayed persistence
// operation, carrying which aggregate kind and operation failed
type PersistenceError struct {
	Kind      string
	Operation string
	Err       error
}

// Error implements the error interface for PersistenceError
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence operation %s %s failed: %v", e.Operation, e.Kind, e.Err)
}

// Unwrap returns the underlying cause
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError creates a PersistenceError wrapping the given cause
func NewPersistenceError(kind, operation string, err error) *PersistenceError {
	return &PersistenceError{
		Kind:      kind,
		Operation: operation,
		Err:       err,
	}
}
