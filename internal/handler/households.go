package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// HouseholdHandler owns /api/gp/households.
type HouseholdHandler struct {
	households *service.HouseholdService
}

func NewHouseholdHandler(households *service.HouseholdService) *HouseholdHandler {
	return &HouseholdHandler{households: households}
}

func (h *HouseholdHandler) Stats(c echo.Context) error {
	res, err := h.households.Stats(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

type registerHouseRequest struct {
	WardNumber      int64  `json:"wardNumber"`
	Zone            string `json:"zone"`
	Address         string `json:"address"`
	HeadOfHousehold string `json:"headOfHousehold"`
	FamilyMembers   int64  `json:"familyMembers"`
	Phone           string `json:"phone"`
}

func (h *HouseholdHandler) Register(c echo.Context) error {
	var req registerHouseRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	switch {
	case req.WardNumber < 1:
		return badRequest(c, "Ward number is required")
	case req.Address == "":
		return badRequest(c, "Address is required")
	case req.HeadOfHousehold == "":
		return badRequest(c, "Head of household is required")
	}
	res, err := h.households.Register(c.Request().Context(), userID(c), service.RegisterHouseInput{
		WardNumber:      req.WardNumber,
		Zone:            req.Zone,
		Address:         req.Address,
		HeadOfHousehold: req.HeadOfHousehold,
		FamilyMembers:   req.FamilyMembers,
		Phone:           req.Phone,
	})
	if err == nil {
		publishActivity(c, res, "household.registered", "household", "houseId", req.Address)
	}
	return respondCreated(c, res, err)
}

func (h *HouseholdHandler) List(c echo.Context) error {
	page, pageSize, err := pageParams(c, 15)
	if err != nil {
		return badRequest(c, "Invalid pagination parameters")
	}
	ward, err := optionalID(c, "ward")
	if err != nil {
		return badRequest(c, "Invalid ward parameter")
	}
	res, err := h.households.List(c.Request().Context(), userID(c), service.HouseholdFilter{
		Ward:     ward,
		Zone:     c.QueryParam("zone"),
		QRStatus: c.QueryParam("qrStatus"),
		Search:   c.QueryParam("search"),
	}, page, pageSize)
	return respond(c, res, err)
}

// ByID returns 404 when the house does not exist or belongs to another
// local body.
func (h *HouseholdHandler) ByID(c echo.Context) error {
	houseID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid household ID")
	}
	res, err := h.households.ByID(c.Request().Context(), userID(c), houseID)
	return respondLookup(c, res, err)
}
