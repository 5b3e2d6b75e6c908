package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/velamart/storefront-api/controllers/order"
	"github.com/velamart/storefront-api/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/api/orders")
	orders.Use(middleware.RequireAuth)
	{
		// Create a new order from the caller's cart
		orders.POST("", orderControllers.PlaceOrderHandler(db))

		// Fetch the caller's orders
		orders.GET("/list", orderControllers.ListUserOrdersHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// delivered -> completed, the only customer-side transition
		orders.PATCH("/complete", orderControllers.CompleteOrderHandler(db))

		// Fetch one order with items and shipping
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
	}
}
