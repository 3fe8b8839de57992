package dto

// PlaceOrderRequest represents the API request for placing a single order
type PlaceOrderRequest struct {
	UserID uint64 `json:"userId" binding:"required"`
	ShopID uint64 `json:"shopId" binding:"required"`
	Total  string `json:"total" binding:"required"`
}

// OrderResponse represents the API response for an order
type OrderResponse struct {
	OrderID   uint64 `json:"orderId"`
	Reference string `json:"reference"`
	UserID    uint64 `json:"userId"`
	ShopID    uint64 `json:"shopId"`
	Total     string `json:"total"`
	Status    string `json:"status"`
}

// BatchPlaceOrdersRequest represents the API request for placing several
// orders in one call. Each order is committed independently
type BatchPlaceOrdersRequest struct {
	Orders []PlaceOrderRequest `json:"orders" binding:"required,min=1,dive"`
}

// BatchOrderResult represents the outcome of one order in a batch
type BatchOrderResult struct {
	Success bool           `json:"success"`
	Order   *OrderResponse `json:"order,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

// BatchPlaceOrdersResponse represents the API response for a batch placement
type BatchPlaceOrdersResponse struct {
	Results []BatchOrderResult `json:"results"`
}
