package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/poi2/shopflow/internal/domain/entity"
	domainerr "github.com/poi2/shopflow/internal/domain/error"
	coreport "github.com/poi2/shopflow/internal/domain/port/core"
	"github.com/poi2/shopflow/internal/domain/port/usecase"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/api/dto"
)

// CatalogHandler handles user and shop HTTP requests
type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
	logger         coreport.Logger
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(
	catalogUseCase usecase.CatalogUseCase,
	logger coreport.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
		logger:         logger,
	}
}

// CreateUser handles the POST /users endpoint
func (h *CatalogHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid user creation request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	user, err := h.catalogUseCase.CreateUser(c.Request.Context(), usecase.CreateUserRequest{
		Name:           req.Name,
		Email:          req.Email,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		status, message := statusFromError(err)
		h.logger.Error("Error creating user", map[string]any{
			"name":  req.Name,
			"error": err.Error(),
		})
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusCreated, userToResponse(user))
}

// GetUser handles the GET /users/{userId} endpoint
func (h *CatalogHandler) GetUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", domainerr.ErrInvalidUserID)
	if !ok {
		return
	}

	user, err := h.catalogUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		status, message := statusFromError(err)
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, userToResponse(user))
}

// CreateShop handles the POST /shops endpoint
func (h *CatalogHandler) CreateShop(c *gin.Context) {
	var req dto.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid shop creation request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	shop, err := h.catalogUseCase.CreateShop(c.Request.Context(), usecase.CreateShopRequest{
		OwnerID: req.OwnerID,
		Name:    req.Name,
	})
	if err != nil {
		status, message := statusFromError(err)
		h.logger.Error("Error creating shop", map[string]any{
			"name":    req.Name,
			"ownerId": req.OwnerID,
			"error":   err.Error(),
		})
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusCreated, shopToResponse(shop))
}

// GetShop handles the GET /shops/{shopId} endpoint
func (h *CatalogHandler) GetShop(c *gin.Context) {
	shopID, ok := parseIDParam(c, "shopId", domainerr.ErrInvalidShopID)
	if !ok {
		return
	}

	shop, err := h.catalogUseCase.GetShop(c.Request.Context(), shopID)
	if err != nil {
		status, message := statusFromError(err)
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, shopToResponse(shop))
}

// parseIDParam extracts a numeric path parameter, writing a 400 response
// itself when the value is malformed
func parseIDParam(c *gin.Context, name string, invalidErr error) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(invalidErr),
			Message: "Invalid " + name + " format",
		})
		return 0, false
	}
	return id, true
}

func userToResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Balance:    user.FormattedBalance(),
		OrderCount: user.OrderCount,
	}
}

func shopToResponse(shop *entity.Shop) dto.ShopResponse {
	return dto.ShopResponse{
		ShopID:    shop.ID,
		OwnerID:   shop.OwnerID,
		Name:      shop.Name,
		SaleCount: shop.SaleCount,
	}
}
