package handler

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/usecase"
	"lokapasar/pkg/response"
	"lokapasar/pkg/utils"
)

type AdminOrderHandler struct {
	adminOrderUseCase *usecase.AdminOrderUseCase
}

func NewAdminOrderHandler(adminOrderUseCase *usecase.AdminOrderUseCase) *AdminOrderHandler {
	return &AdminOrderHandler{
		adminOrderUseCase: adminOrderUseCase,
	}
}

// ListOrders returns paginated orders annotated with their risk tier
func (h *AdminOrderHandler) ListOrders(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.adminOrderUseCase.List(c.Request().Context(), usecase.AdminOrderFilter{
		Payment:  c.QueryParam("payment"),
		Delivery: c.QueryParam("delivery"),
		Dispute:  c.QueryParam("dispute"),
		Risk:     c.QueryParam("risk"),
		Keyword:  c.QueryParam("keyword"),
		Page:     pagination.Page,
		Limit:    pagination.PageSize,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}
