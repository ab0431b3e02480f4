package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// GPRouteHandler owns /api/gp/routes.
type GPRouteHandler struct {
	routes *service.GPRouteService
}

func NewGPRouteHandler(routes *service.GPRouteService) *GPRouteHandler {
	return &GPRouteHandler{routes: routes}
}

func (h *GPRouteHandler) Stats(c echo.Context) error {
	res, err := h.routes.Stats(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

func (h *GPRouteHandler) List(c echo.Context) error {
	page, pageSize, err := pageParams(c, 10)
	if err != nil {
		return badRequest(c, "Invalid pagination parameters")
	}
	res, err := h.routes.List(c.Request().Context(), userID(c), c.QueryParam("search"), page, pageSize)
	return respond(c, res, err)
}

type createRouteRequest struct {
	RouteName   string  `json:"routeName"`
	HouseIDs    []int64 `json:"houseIds"`
	CollectorID *int64  `json:"collectorId"`
}

func (h *GPRouteHandler) Create(c echo.Context) error {
	var req createRouteRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.RouteName == "" {
		return badRequest(c, "Route name is required")
	}
	if len(req.HouseIDs) == 0 {
		return badRequest(c, "At least one house is required")
	}
	res, err := h.routes.Create(c.Request().Context(), userID(c), service.CreateRouteInput{
		RouteName:   req.RouteName,
		HouseIDs:    req.HouseIDs,
		CollectorID: req.CollectorID,
	})
	if err == nil {
		publishActivity(c, res, "route.created", "route", "routeId", req.RouteName)
	}
	return respondCreated(c, res, err)
}

func (h *GPRouteHandler) Wards(c echo.Context) error {
	res, err := h.routes.Wards(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

func (h *GPRouteHandler) HousesByWard(c echo.Context) error {
	if c.QueryParam("wardNumber") == "" {
		return badRequest(c, "Ward number is required")
	}
	ward, err := optionalID(c, "wardNumber")
	if err != nil {
		return badRequest(c, "Invalid ward number")
	}
	res, err := h.routes.HousesByWard(c.Request().Context(), userID(c), *ward)
	return respond(c, res, err)
}
