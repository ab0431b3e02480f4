package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// DistrictBlockAdminHandler owns /api/district/block-admins.
type DistrictBlockAdminHandler struct {
	blocks *service.DistrictBlockAdminService
}

func NewDistrictBlockAdminHandler(blocks *service.DistrictBlockAdminService) *DistrictBlockAdminHandler {
	return &DistrictBlockAdminHandler{blocks: blocks}
}

func (h *DistrictBlockAdminHandler) Stats(c echo.Context) error {
	res, err := h.blocks.Stats(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

func (h *DistrictBlockAdminHandler) List(c echo.Context) error {
	page, pageSize, err := pageParams(c, 15)
	if err != nil {
		return badRequest(c, "Invalid pagination parameters")
	}
	res, err := h.blocks.List(c.Request().Context(), userID(c), c.QueryParam("search"), page, pageSize)
	return respond(c, res, err)
}

type addBlockRequest struct {
	BlockName     string `json:"blockName"`
	AdminFullName string `json:"adminFullName"`
	AdminUsername string `json:"adminUsername"`
	AdminEmail    string `json:"adminEmail"`
	AdminPhone    string `json:"adminPhone"`
	AdminPassword string `json:"adminPassword"`
}

func (h *DistrictBlockAdminHandler) AddBlock(c echo.Context) error {
	var req addBlockRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	switch {
	case req.BlockName == "":
		return badRequest(c, "Block name is required")
	case req.AdminUsername == "":
		return badRequest(c, "Admin username is required")
	case req.AdminEmail == "":
		return badRequest(c, "Admin email is required")
	case req.AdminFullName == "":
		return badRequest(c, "Admin full name is required")
	case req.AdminPassword == "":
		return badRequest(c, "Admin password is required")
	}
	res, err := h.blocks.AddBlock(c.Request().Context(), userID(c), service.AddBlockInput{
		BlockName:     req.BlockName,
		AdminFullName: req.AdminFullName,
		AdminUsername: req.AdminUsername,
		AdminEmail:    req.AdminEmail,
		AdminPhone:    req.AdminPhone,
		AdminPassword: req.AdminPassword,
	})
	if err == nil {
		publishActivity(c, res, "block.added", "block", "blockId", req.BlockName)
	}
	return respondCreated(c, res, err)
}

type updateBlockRequest struct {
	BlockName     *string `json:"blockName"`
	AdminFullName *string `json:"adminFullName"`
	AdminEmail    *string `json:"adminEmail"`
	AdminPhone    *string `json:"adminPhone"`
}

// UpdateBlock requires the name and admin identity fields; only the phone
// may be omitted, in which case the stored value is kept.
func (h *DistrictBlockAdminHandler) UpdateBlock(c echo.Context) error {
	blockID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid block ID")
	}
	var req updateBlockRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.BlockName == nil || req.AdminFullName == nil || req.AdminEmail == nil {
		return badRequest(c, "Missing required fields")
	}
	res, err := h.blocks.UpdateBlock(c.Request().Context(), userID(c), blockID, service.UpdateBlockInput{
		BlockName:     req.BlockName,
		AdminFullName: req.AdminFullName,
		AdminEmail:    req.AdminEmail,
		AdminPhone:    req.AdminPhone,
	})
	return respond(c, res, err)
}
