package router

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/adapter/api/handler"
	"lokapasar/internal/adapter/api/middleware"
)

// SetupAdminRouter wires the operations console routes
func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	adminOrderHandler := handler.GetAdminOrderHandler()
	supportQueueHandler := handler.GetSupportQueueHandler()
	sellerHandler := handler.GetSellerHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/orders", adminOrderHandler.ListOrders)

	admin.GET("/support/queue", supportQueueHandler.GetQueue)
	admin.PUT("/support/case", supportQueueHandler.ApplyAction, rateLimitMiddleware.Limit("case_action"))

	admin.PUT("/sellers/:id/status", sellerHandler.UpdateStatus, rateLimitMiddleware.Limit("seller_status"))
	admin.GET("/sellers/:id/activity", sellerHandler.GetActivity)
}
