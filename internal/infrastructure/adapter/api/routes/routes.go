package routes

import (
	"github.com/gin-gonic/gin"
	coreport "github.com/poi2/shopflow/internal/domain/port/core"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/api/handler"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	catalogHandler *handler.CatalogHandler,
	orderHandler *handler.OrderHandler,
) {
	// Catalog routes
	userRoutes := router.Group("/users")
	{
		// POST /users
		userRoutes.POST("", catalogHandler.CreateUser)

		// GET /users/:userId
		userRoutes.GET("/:userId", catalogHandler.GetUser)
	}

	shopRoutes := router.Group("/shops")
	{
		// POST /shops
		shopRoutes.POST("", catalogHandler.CreateShop)

		// GET /shops/:shopId
		shopRoutes.GET("/:shopId", catalogHandler.GetShop)
	}

	// Order routes
	orderRoutes := router.Group("/orders")
	{
		// POST /orders
		orderRoutes.POST("", orderHandler.PlaceOrder)

		// POST /orders/batch
		orderRoutes.POST("/batch", orderHandler.PlaceOrdersBatch)

		// GET /orders/:orderId
		orderRoutes.GET("/:orderId", orderHandler.GetOrder)

		// DELETE /orders/:orderId
		orderRoutes.DELETE("/:orderId", orderHandler.CancelOrder)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
