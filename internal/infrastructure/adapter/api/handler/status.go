package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/poi2/shopflow/internal/domain/error"
)

// statusFromError maps domain errors to HTTP status codes and a
// client-safe message
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, domainerr.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domainerr.ErrShopNotFound):
		return http.StatusNotFound, "Shop not found"
	case errors.Is(err, domainerr.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"
	case errors.Is(err, domainerr.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, domainerr.ErrDuplicateUser):
		return http.StatusConflict, "User already exists"
	case errors.Is(err, domainerr.ErrDuplicateShop):
		return http.StatusConflict, "Shop already exists"
	case errors.Is(err, domainerr.ErrDuplicateOrder):
		return http.StatusConflict, "Order already exists"
	case errors.Is(err, domainerr.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity, "Insufficient balance"
	case errors.Is(err, domainerr.ErrInvalidUserID),
		errors.Is(err, domainerr.ErrInvalidShopID),
		errors.Is(err, domainerr.ErrInvalidOrderID),
		errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount),
		errors.Is(err, domainerr.ErrAmountOverflow),
		errors.Is(err, domainerr.ErrInvalidName),
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
