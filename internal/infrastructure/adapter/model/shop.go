package model

import (
	"time"
)

// Shop represents the database model for shops
type Shop struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	OwnerID   uint64    `gorm:"not null;index"`
	Name      string    `gorm:"uniqueIndex;not null;size:255"`
	SaleCount uint64    `gorm:"default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Define relationships
	Owner User `gorm:"foreignKey:OwnerID;references:ID"`
}

// TableName specifies the table name for Shop
func (Shop) TableName() string {
	return "shops"
}
