package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// GPCollectorHandler owns /api/gp/collectors.
type GPCollectorHandler struct {
	collectors *service.GPCollectorService
}

func NewGPCollectorHandler(collectors *service.GPCollectorService) *GPCollectorHandler {
	return &GPCollectorHandler{collectors: collectors}
}

func (h *GPCollectorHandler) Stats(c echo.Context) error {
	res, err := h.collectors.Stats(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

func (h *GPCollectorHandler) List(c echo.Context) error {
	page, pageSize, err := pageParams(c, 20)
	if err != nil {
		return badRequest(c, "Invalid pagination parameters")
	}
	res, err := h.collectors.List(c.Request().Context(), userID(c), c.QueryParam("search"), page, pageSize)
	return respond(c, res, err)
}

type addCollectorRequest struct {
	FullName  string `json:"fullName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	RouteID   *int64 `json:"routeId"`
	VehicleID *int64 `json:"vehicleId"`
}

func (h *GPCollectorHandler) Add(c echo.Context) error {
	var req addCollectorRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	switch {
	case req.FullName == "":
		return badRequest(c, "Full name is required")
	case req.Username == "":
		return badRequest(c, "Username is required")
	case req.Password == "":
		return badRequest(c, "Password is required")
	}
	res, err := h.collectors.Add(c.Request().Context(), userID(c), service.AddCollectorInput{
		FullName:  req.FullName,
		Username:  req.Username,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		RouteID:   req.RouteID,
		VehicleID: req.VehicleID,
	})
	if err == nil {
		publishActivity(c, res, "collector.added", "collector", "collectorId", req.FullName)
	}
	return respondCreated(c, res, err)
}

type updateCollectorRequest struct {
	FullName  *string `json:"fullName"`
	Phone     *string `json:"phone"`
	RouteID   *int64  `json:"routeId"`
	VehicleID *int64  `json:"vehicleId"`
	Status    *string `json:"status"`
}

// Update is a partial update; absent fields keep their current values.
func (h *GPCollectorHandler) Update(c echo.Context) error {
	collectorID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid collector ID")
	}
	var req updateCollectorRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	res, err := h.collectors.Update(c.Request().Context(), userID(c), collectorID, service.UpdateCollectorInput{
		FullName:  req.FullName,
		Phone:     req.Phone,
		RouteID:   req.RouteID,
		VehicleID: req.VehicleID,
		Status:    req.Status,
	})
	return respond(c, res, err)
}
