package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// DashboardHandler serves the block admin dashboard.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Overview(c echo.Context) error {
	res, err := h.dashboard.Overview(c.Request().Context(), userID(c))
	return respond(c, res, err)
}
