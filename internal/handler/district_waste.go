package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// DistrictWasteHandler owns /api/district/waste-operations.
type DistrictWasteHandler struct {
	waste *service.DistrictWasteService
}

func NewDistrictWasteHandler(waste *service.DistrictWasteService) *DistrictWasteHandler {
	return &DistrictWasteHandler{waste: waste}
}

func (h *DistrictWasteHandler) Stats(c echo.Context) error {
	res, err := h.waste.Stats(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

func (h *DistrictWasteHandler) Trends(c echo.Context) error {
	days, err := intQuery(c, "days", 30)
	if err != nil || days < 1 {
		return badRequest(c, "Invalid days parameter")
	}
	res, err := h.waste.Trends(c.Request().Context(), userID(c), days)
	return respond(c, res, err)
}

func (h *DistrictWasteHandler) Summary(c echo.Context) error {
	blockID, err := optionalID(c, "blockId")
	if err != nil {
		return badRequest(c, "Invalid block ID")
	}
	res, err := h.waste.Summary(c.Request().Context(), userID(c), blockID,
		optionalString(c, "startDate"), optionalString(c, "endDate"))
	return respond(c, res, err)
}
