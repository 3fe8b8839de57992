package model

import (
	"time"
)

// Order represents the database model for orders
type Order struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	Reference  string    `gorm:"uniqueIndex;not null;size:64"`
	UserID     uint64    `gorm:"not null;index"`
	ShopID     uint64    `gorm:"not null;index"`
	TotalCents int64     `gorm:"not null"`
	Status     string    `gorm:"not null;size:50"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
	Shop Shop `gorm:"foreignKey:ShopID;references:ID"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}
