package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// BlockReportHandler owns the block-tier /api/reports surface.
type BlockReportHandler struct {
	reports *service.BlockReportService
}

func NewBlockReportHandler(reports *service.BlockReportService) *BlockReportHandler {
	return &BlockReportHandler{reports: reports}
}

func (h *BlockReportHandler) Summary(c echo.Context) error {
	res, err := h.reports.Summary(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

func (h *BlockReportHandler) CollectionTrend(c echo.Context) error {
	period := c.QueryParam("period")
	if period == "" {
		period = "daily"
	}
	res, err := h.reports.CollectionTrend(c.Request().Context(), userID(c), period,
		optionalString(c, "startDate"), optionalString(c, "endDate"))
	return respond(c, res, err)
}

func (h *BlockReportHandler) WasteDistribution(c echo.Context) error {
	res, err := h.reports.WasteDistribution(c.Request().Context(), userID(c),
		optionalString(c, "startDate"), optionalString(c, "endDate"))
	return respond(c, res, err)
}

func (h *BlockReportHandler) CollectionLogs(c echo.Context) error {
	page, pageSize, err := pageParams(c, 20)
	if err != nil {
		return badRequest(c, "Invalid pagination parameters")
	}
	res, err := h.reports.CollectionLogs(c.Request().Context(), userID(c),
		c.QueryParam("status"), optionalString(c, "date"), page, pageSize)
	return respond(c, res, err)
}
