package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

// DistrictDumpSiteHandler owns /api/district/dump-yards.
type DistrictDumpSiteHandler struct {
	sites *service.DistrictDumpSiteService
}

func NewDistrictDumpSiteHandler(sites *service.DistrictDumpSiteService) *DistrictDumpSiteHandler {
	return &DistrictDumpSiteHandler{sites: sites}
}

func (h *DistrictDumpSiteHandler) Stats(c echo.Context) error {
	res, err := h.sites.Stats(c.Request().Context(), userID(c))
	return respond(c, res, err)
}

func (h *DistrictDumpSiteHandler) List(c echo.Context) error {
	page, pageSize, err := pageParams(c, 10)
	if err != nil {
		return badRequest(c, "Invalid pagination parameters")
	}
	blockID, err := optionalID(c, "blockId")
	if err != nil {
		return badRequest(c, "Invalid block ID")
	}
	res, err := h.sites.List(c.Request().Context(), userID(c), service.DistrictDumpSiteFilter{
		Search:   c.QueryParam("search"),
		Status:   c.QueryParam("status"),
		SiteType: c.QueryParam("siteType"),
		BlockID:  blockID,
	}, page, pageSize)
	return respond(c, res, err)
}
