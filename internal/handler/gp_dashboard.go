package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// GPDashboardHandler serves the GP / municipality admin dashboard.
type GPDashboardHandler struct {
	dashboard *service.GPDashboardService
}

func NewGPDashboardHandler(dashboard *service.GPDashboardService) *GPDashboardHandler {
	return &GPDashboardHandler{dashboard: dashboard}
}

func (h *GPDashboardHandler) Overview(c echo.Context) error {
	res, err := h.dashboard.Overview(c.Request().Context(), userID(c))
	return respond(c, res, err)
}
