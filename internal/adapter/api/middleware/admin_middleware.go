package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminMiddleware gates the operations console. Admin status is carried as a
// Firebase custom claim; account management itself lives outside this service.
type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get("claims").(map[string]interface{})
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		if isAdmin, _ := claims["admin"].(bool); !isAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
