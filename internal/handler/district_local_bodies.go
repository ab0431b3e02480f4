package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// DistrictLocalBodyHandler owns /api/district/blocks-municipalities.
type DistrictLocalBodyHandler struct {
	bodies *service.DistrictLocalBodyService
}

func NewDistrictLocalBodyHandler(bodies *service.DistrictLocalBodyService) *DistrictLocalBodyHandler {
	return &DistrictLocalBodyHandler{bodies: bodies}
}

func (h *DistrictLocalBodyHandler) Stats(c echo.Context) error {
	res, err := h.bodies.Stats(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

func (h *DistrictLocalBodyHandler) List(c echo.Context) error {
	page, pageSize, err := pageParams(c, 15)
	if err != nil {
		return badRequest(c, "Invalid pagination parameters")
	}
	res, err := h.bodies.List(c.Request().Context(), userID(c),
		queryOr(c, "type", "all"), c.QueryParam("search"), page, pageSize)
	return respond(c, res, err)
}
