package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// DistrictReportHandler owns /api/district/reports.
type DistrictReportHandler struct {
	reports *service.DistrictReportService
}

func NewDistrictReportHandler(reports *service.DistrictReportService) *DistrictReportHandler {
	return &DistrictReportHandler{reports: reports}
}

func (h *DistrictReportHandler) window(c echo.Context) (service.ReportWindow, error) {
	blockID, err := optionalID(c, "blockId")
	if err != nil {
		return service.ReportWindow{}, err
	}
	return service.ReportWindow{
		StartDate: optionalString(c, "startDate"),
		EndDate:   optionalString(c, "endDate"),
		BlockID:   blockID,
	}, nil
}

func (h *DistrictReportHandler) CollectionTrends(c echo.Context) error {
	w, err := h.window(c)
	if err != nil {
		return badRequest(c, "Invalid block ID")
	}
	res, err := h.reports.CollectionTrends(c.Request().Context(), userID(c), w)
	return respond(c, res, err)
}

func (h *DistrictReportHandler) WasteDistribution(c echo.Context) error {
	w, err := h.window(c)
	if err != nil {
		return badRequest(c, "Invalid block ID")
	}
	res, err := h.reports.WasteDistribution(c.Request().Context(), userID(c), w)
	return respond(c, res, err)
}

func (h *DistrictReportHandler) BlockPerformance(c echo.Context) error {
	res, err := h.reports.BlockPerformance(c.Request().Context(), userID(c),
		optionalString(c, "startDate"), optionalString(c, "endDate"))
	return respond(c, res, err)
}

func (h *DistrictReportHandler) ActivityLogs(c echo.Context) error {
	days, err := intQuery(c, "days", 7)
	if err != nil || days < 1 {
		return badRequest(c, "Invalid days parameter")
	}
	res, err := h.reports.ActivityLogs(c.Request().Context(), userID(c), days)
	return respond(c, res, err)
}
