package entity

import (
	"strings"
	"time"

	errs "github.com/poi2/shopflow/internal/domain/error"
	coreport "github.com/poi2/shopflow/internal/domain/port/core"
)

// Shop represents a seller storefront owned by a user
type Shop struct {
	ID        uint64    // Store-assigned identifier, zero until persisted
	OwnerID   uint64    // Owning user, enforced by foreign key
	Name      string    // Storefront name
	SaleCount uint64    // Count of orders fulfilled by this shop
	CreatedAt time.Time // When the shop was created
	UpdatedAt time.Time // When the shop was last updated
}

// NewShop creates a new shop owned by the given user
func NewShop(ownerID uint64, name string, timeProvider coreport.TimeProvider) (*Shop, error) {
	if ownerID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.ErrInvalidName
	}

	now := timeProvider.Now()
	return &Shop{
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RecordSale counts one fulfilled order against this shop
func (s *Shop) RecordSale(timeProvider coreport.TimeProvider) {
	s.SaleCount++
	s.UpdatedAt = timeProvider.Now()
}

// RevertSale removes one fulfilled order when the order is cancelled
func (s *Shop) RevertSale(timeProvider coreport.TimeProvider) {
	if s.SaleCount > 0 {
		s.SaleCount--
	}
	s.UpdatedAt = timeProvider.Now()
}
