package dto

// CreateUserRequest represents the API request for creating a user
type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	InitialBalance string `json:"initialBalance" binding:"required"`
}

// UserResponse represents the API response for a user
type UserResponse struct {
	UserID     uint64 `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Balance    string `json:"balance"`
	OrderCount uint64 `json:"orderCount"`
}

// CreateShopRequest represents the API request for creating a shop
type CreateShopRequest struct {
	OwnerID uint64 `json:"ownerId" binding:"required"`
	Name    string `json:"name" binding:"required"`
}

// ShopResponse represents the API response for a shop
type ShopResponse struct {
	ShopID    uint64 `json:"shopId"`
	OwnerID   uint64 `json:"ownerId"`
	Name      string `json:"name"`
	SaleCount uint64 `json:"saleCount"`
}
