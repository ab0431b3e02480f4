package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// LocalBodyHandler owns the block-tier /api/gp-municipality surface.
type LocalBodyHandler struct {
	bodies *service.LocalBodyService
}

func NewLocalBodyHandler(bodies *service.LocalBodyService) *LocalBodyHandler {
	return &LocalBodyHandler{bodies: bodies}
}

func (h *LocalBodyHandler) Stats(c echo.Context) error {
	res, err := h.bodies.Stats(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

type addLocalBodyRequest struct {
	Name          string  `json:"name"`
	Population    int64   `json:"population"`
	AreaSqKm      float64 `json:"areaSqKm"`
	WardsCount    int64   `json:"wardsCount"`
	AdminUsername string  `json:"adminUsername"`
	AdminEmail    string  `json:"adminEmail"`
	AdminFullName string  `json:"adminFullName"`
	AdminPhone    string  `json:"adminPhone"`
	AdminPassword string  `json:"adminPassword"`
}

func (r *addLocalBodyRequest) validate() string {
	switch {
	case r.Name == "":
		return "Name is required"
	case r.AdminUsername == "":
		return "Admin username is required"
	case r.AdminEmail == "":
		return "Admin email is required"
	case r.AdminFullName == "":
		return "Admin full name is required"
	case r.AdminPassword == "":
		return "Admin password is required"
	}
	return ""
}

func (h *LocalBodyHandler) AddGramPanchayat(c echo.Context) error {
	var req addLocalBodyRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return badRequest(c, msg)
	}
	res, err := h.bodies.AddGramPanchayat(c.Request().Context(), userID(c), h.input(req))
	if err == nil {
		publishActivity(c, res, "gram_panchayat.added", "gram_panchayat", "gpId", req.Name)
	}
	return respondCreated(c, res, err)
}

func (h *LocalBodyHandler) AddMunicipality(c echo.Context) error {
	var req addLocalBodyRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return badRequest(c, msg)
	}
	if req.WardsCount < 1 {
		return badRequest(c, "Wards count is required")
	}
	res, err := h.bodies.AddMunicipality(c.Request().Context(), userID(c), h.input(req))
	if err == nil {
		publishActivity(c, res, "municipality.added", "municipality", "municipalityId", req.Name)
	}
	return respondCreated(c, res, err)
}

func (h *LocalBodyHandler) input(req addLocalBodyRequest) service.AddLocalBodyInput {
	return service.AddLocalBodyInput{
		Name:          req.Name,
		Population:    req.Population,
		AreaSqKm:      req.AreaSqKm,
		WardsCount:    req.WardsCount,
		AdminUsername: req.AdminUsername,
		AdminEmail:    req.AdminEmail,
		AdminFullName: req.AdminFullName,
		AdminPhone:    req.AdminPhone,
		AdminPassword: req.AdminPassword,
	}
}

func (h *LocalBodyHandler) List(c echo.Context) error {
	page, pageSize, err := pageParams(c, 10)
	if err != nil {
		return badRequest(c, "Invalid pagination parameters")
	}
	res, err := h.bodies.List(c.Request().Context(), userID(c), queryOr(c, "type", "all"), page, pageSize)
	return respond(c, res, err)
}
