package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// GPCollectionTrackingHandler owns /api/gp/collection-tracking.
type GPCollectionTrackingHandler struct {
	tracking *service.GPCollectionTrackingService
}

func NewGPCollectionTrackingHandler(tracking *service.GPCollectionTrackingService) *GPCollectionTrackingHandler {
	return &GPCollectionTrackingHandler{tracking: tracking}
}

func (h *GPCollectionTrackingHandler) Stats(c echo.Context) error {
	res, err := h.tracking.Stats(c.Request().Context(), userID(c), optionalString(c, "date"))
	return respond(c, res, err)
}

func (h *GPCollectionTrackingHandler) Routes(c echo.Context) error {
	res, err := h.tracking.Routes(c.Request().Context(), userID(c),
		optionalString(c, "date"), c.QueryParam("search"))
	return respond(c, res, err)
}
