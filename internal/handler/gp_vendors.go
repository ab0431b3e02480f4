package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// GPVendorHandler owns /api/gp/vendor-coordination.
type GPVendorHandler struct {
	vendors *service.GPVendorService
}

func NewGPVendorHandler(vendors *service.GPVendorService) *GPVendorHandler {
	return &GPVendorHandler{vendors: vendors}
}

func (h *GPVendorHandler) Stats(c echo.Context) error {
	res, err := h.vendors.Stats(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

func (h *GPVendorHandler) List(c echo.Context) error {
	res, err := h.vendors.List(c.Request().Context(), userID(c), c.QueryParam("search"))
	return respond(c, res, err)
}
