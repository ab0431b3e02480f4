package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// DistrictVehicleHandler owns /api/district/vehicles.
type DistrictVehicleHandler struct {
	vehicles *service.DistrictVehicleService
}

func NewDistrictVehicleHandler(vehicles *service.DistrictVehicleService) *DistrictVehicleHandler {
	return &DistrictVehicleHandler{vehicles: vehicles}
}

func (h *DistrictVehicleHandler) Stats(c echo.Context) error {
	res, err := h.vehicles.Stats(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

func (h *DistrictVehicleHandler) List(c echo.Context) error {
	page, pageSize, err := pageParams(c, 15)
	if err != nil {
		return badRequest(c, "Invalid pagination parameters")
	}
	blockID, err := optionalID(c, "blockId")
	if err != nil {
		return badRequest(c, "Invalid block ID")
	}
	res, err := h.vehicles.List(c.Request().Context(), userID(c), service.DistrictVehicleFilter{
		BlockID:     blockID,
		Status:      c.QueryParam("status"),
		VehicleType: c.QueryParam("vehicleType"),
		Search:      c.QueryParam("search"),
	}, page, pageSize)
	return respond(c, res, err)
}
