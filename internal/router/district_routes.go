package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/handler"
	"github.com/sswm/waste-admin-api/internal/middleware"
)

// DistrictHandlers bundles the handlers mounted for the district admin tier.
type DistrictHandlers struct {
	Vehicles    *handler.DistrictVehicleHandler
	DumpSites   *handler.DistrictDumpSiteHandler
	BlockAdmins *handler.DistrictBlockAdminHandler
	LocalBodies *handler.DistrictLocalBodyHandler
	Reports     *handler.DistrictReportHandler
	Waste       *handler.DistrictWasteHandler
}

// RegisterDistrict registers the district-admin endpoints under
// /api/district. All routes require a valid token and the district_admin
// role.
func RegisterDistrict(e *echo.Echo, h DistrictHandlers, jwtSecret string) {
	g := e.Group(
		"/api/district",
		middleware.Auth(jwtSecret),
		middleware.RequireRole("district_admin"),
	)

	g.GET("/vehicles/stats", h.Vehicles.Stats)
	g.GET("/vehicles/list", h.Vehicles.List)

	g.GET("/dump-yards/stats", h.DumpSites.Stats)
	g.GET("/dump-yards/list", h.DumpSites.List)

	g.GET("/block-admins/stats", h.BlockAdmins.Stats)
	g.GET("/block-admins/list", h.BlockAdmins.List)
	g.POST("/block-admins/add", h.BlockAdmins.AddBlock)
	g.PUT("/block-admins/update/:id", h.BlockAdmins.UpdateBlock)

	g.GET("/blocks-municipalities/stats", h.LocalBodies.Stats)
	g.GET("/blocks-municipalities/list", h.LocalBodies.List)

	g.GET("/reports/collection-trends", h.Reports.CollectionTrends)
	g.GET("/reports/waste-distribution", h.Reports.WasteDistribution)
	g.GET("/reports/block-performance", h.Reports.BlockPerformance)
	g.GET("/reports/activity-logs", h.Reports.ActivityLogs)

	g.GET("/waste-operations/stats", h.Waste.Stats)
	g.GET("/waste-operations/trends", h.Waste.Trends)
	g.GET("/waste-operations/summary", h.Waste.Summary)
}
