package router

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupAdminRouter(e, authMiddleware, adminMiddleware, rateLimitMiddleware)
	SetupHealthRouter(e)
}
