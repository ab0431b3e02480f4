package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// GPDumpMonitoringHandler owns /api/gp/dump-monitoring.
type GPDumpMonitoringHandler struct {
	monitoring *service.GPDumpMonitoringService
}

func NewGPDumpMonitoringHandler(monitoring *service.GPDumpMonitoringService) *GPDumpMonitoringHandler {
	return &GPDumpMonitoringHandler{monitoring: monitoring}
}

func (h *GPDumpMonitoringHandler) Stats(c echo.Context) error {
	res, err := h.monitoring.Stats(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

func (h *GPDumpMonitoringHandler) List(c echo.Context) error {
	res, err := h.monitoring.List(c.Request().Context(), userID(c), c.QueryParam("search"))
	return respond(c, res, err)
}
