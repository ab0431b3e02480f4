package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// GPSegregationHandler owns /api/gp/segregation-reports.
type GPSegregationHandler struct {
	segregation *service.GPSegregationService
}

func NewGPSegregationHandler(segregation *service.GPSegregationService) *GPSegregationHandler {
	return &GPSegregationHandler{segregation: segregation}
}

func (h *GPSegregationHandler) Stats(c echo.Context) error {
	res, err := h.segregation.Stats(c.Request().Context(), userID(c),
		optionalString(c, "dateFrom"), optionalString(c, "dateTo"))
	return respond(c, res, err)
}

func (h *GPSegregationHandler) ByWard(c echo.Context) error {
	res, err := h.segregation.ByWard(c.Request().Context(), userID(c),
		optionalString(c, "dateFrom"), optionalString(c, "dateTo"), c.QueryParam("search"))
	return respond(c, res, err)
}
