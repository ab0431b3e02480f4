package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// VehicleHandler owns the block-tier /api/vehicles surface.
type VehicleHandler struct {
	vehicles *service.VehicleService
}

func NewVehicleHandler(vehicles *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

func (h *VehicleHandler) Stats(c echo.Context) error {
	res, err := h.vehicles.Stats(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

type addVehicleRequest struct {
	RegistrationNumber string  `json:"registrationNumber"`
	VehicleType        string  `json:"vehicleType"`
	CapacityKg         float64 `json:"capacityKg"`
	GPID               *int64  `json:"gpId"`
	MunicipalityID     *int64  `json:"municipalityId"`
}

// Add enforces the assignment rule here so the message is stable regardless
// of procedure-side validation: a vehicle belongs to exactly one local body.
func (h *VehicleHandler) Add(c echo.Context) error {
	var req addVehicleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.RegistrationNumber == "" || req.VehicleType == "" {
		return badRequest(c, "Registration number and vehicle type are required")
	}
	if req.GPID != nil && req.MunicipalityID != nil {
		return badRequest(c, "Vehicle can only be assigned to either GP or Municipality, not both")
	}
	if req.GPID == nil && req.MunicipalityID == nil {
		return badRequest(c, "Either GP ID or Municipality ID must be provided")
	}
	res, err := h.vehicles.Add(c.Request().Context(), userID(c), service.AddVehicleInput{
		RegistrationNumber: req.RegistrationNumber,
		VehicleType:        req.VehicleType,
		CapacityKg:         req.CapacityKg,
		GPID:               req.GPID,
		MunicipalityID:     req.MunicipalityID,
	})
	if err == nil {
		publishActivity(c, res, "vehicle.added", "vehicle", "vehicleId", req.RegistrationNumber)
	}
	return respondCreated(c, res, err)
}

func (h *VehicleHandler) List(c echo.Context) error {
	page, pageSize, err := pageParams(c, 15)
	if err != nil {
		return badRequest(c, "Invalid pagination parameters")
	}
	res, err := h.vehicles.List(c.Request().Context(), userID(c), queryOr(c, "type", "all"), page, pageSize)
	return respond(c, res, err)
}
