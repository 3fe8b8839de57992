package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poi2/shopflow/internal/domain/entity"
	domainerr "github.com/poi2/shopflow/internal/domain/error"
	coreport "github.com/poi2/shopflow/internal/domain/port/core"
	"github.com/poi2/shopflow/internal/domain/port/usecase"
	orderUseCase "github.com/poi2/shopflow/internal/domain/usecase/order"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/api/dto"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService   usecase.OrderUseCase
	placementQueue *orderUseCase.PlacementQueue
	logger         coreport.Logger
}

// NewOrderHandler creates a new order handler instance
func NewOrderHandler(
	orderService usecase.OrderUseCase,
	placementQueue *orderUseCase.PlacementQueue,
	logger coreport.Logger,
) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		placementQueue: placementQueue,
		logger:         logger,
	}
}

// PlaceOrder handles the POST /orders endpoint. The placement runs inside a
// live transactional session so the order can be validated with its
// store-assigned ID before anything is committed
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid order placement request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	order, err := h.orderService.PlaceOrderChecked(c.Request.Context(), req.UserID, usecase.PlaceOrderRequest{
		ShopID: req.ShopID,
		Total:  req.Total,
	})
	if err != nil {
		status, message := statusFromError(err)
		h.logger.Error("Error placing order", map[string]any{
			"userId": req.UserID,
			"shopId": req.ShopID,
			"error":  err.Error(),
		})
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusCreated, orderToResponse(order))
}

// PlaceOrdersBatch handles the POST /orders/batch endpoint. Each order is
// staged and committed as its own unit of work, serialized per buyer, so a
// failed placement never affects the others
func (h *OrderHandler) PlaceOrdersBatch(c *gin.Context) {
	var req dto.BatchPlaceOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid batch placement request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	results := make([]dto.BatchOrderResult, 0, len(req.Orders))
	for _, item := range req.Orders {
		order, err := h.placementQueue.Enqueue(c.Request.Context(), item.UserID, usecase.PlaceOrderRequest{
			ShopID: item.ShopID,
			Total:  item.Total,
		})
		if err != nil {
			_, message := statusFromError(err)
			results = append(results, dto.BatchOrderResult{
				Success: false,
				Error: &dto.ErrorResponse{
					Code:    domainerr.ErrorCode(err),
					Message: message,
				},
			})
			continue
		}

		resp := orderToResponse(order)
		results = append(results, dto.BatchOrderResult{
			Success: true,
			Order:   &resp,
		})
	}

	c.JSON(http.StatusOK, dto.BatchPlaceOrdersResponse{Results: results})
}

// GetOrder handles the GET /orders/{orderId} endpoint
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "orderId", domainerr.ErrInvalidOrderID)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		status, message := statusFromError(err)
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, orderToResponse(order))
}

// CancelOrder handles the DELETE /orders/{orderId} endpoint
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "orderId", domainerr.ErrInvalidOrderID)
	if !ok {
		return
	}

	if err := h.orderService.CancelOrder(c.Request.Context(), orderID); err != nil {
		status, message := statusFromError(err)
		h.logger.Error("Error cancelling order", map[string]any{
			"orderId": orderID,
			"error":   err.Error(),
		})
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func orderToResponse(order *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		OrderID:   order.ID,
		Reference: order.Reference,
		UserID:    order.UserID,
		ShopID:    order.ShopID,
		Total:     order.FormattedTotal(),
		Status:    string(order.Status),
	}
}
