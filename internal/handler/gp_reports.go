package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// GPReportHandler owns /api/gp/reports.
type GPReportHandler struct {
	reports *service.GPReportService
}

func NewGPReportHandler(reports *service.GPReportService) *GPReportHandler {
	return &GPReportHandler{reports: reports}
}

func (h *GPReportHandler) WeeklyCollection(c echo.Context) error {
	res, err := h.reports.WeeklyCollection(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

func (h *GPReportHandler) CategoryDistribution(c echo.Context) error {
	res, err := h.reports.CategoryDistribution(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

func (h *GPReportHandler) CollectionLogs(c echo.Context) error {
	res, err := h.reports.CollectionLogs(c.Request().Context(), userID(c),
		c.QueryParam("status"), c.QueryParam("wasteType"), optionalString(c, "date"))
	return respond(c, res, err)
}
