package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// DumpYardHandler owns the block-tier /api/dump-yards surface.
type DumpYardHandler struct {
	yards *service.DumpYardService
}

func NewDumpYardHandler(yards *service.DumpYardService) *DumpYardHandler {
	return &DumpYardHandler{yards: yards}
}

func (h *DumpYardHandler) Stats(c echo.Context) error {
	res, err := h.yards.Stats(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

func (h *DumpYardHandler) List(c echo.Context) error {
	res, err := h.yards.List(c.Request().Context(), userID(c))
	return respond(c, res, err)
}
