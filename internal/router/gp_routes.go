package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/handler"
	"github.com/sswm/waste-admin-api/internal/middleware"
)

// GPHandlers bundles the handlers mounted for the GP / municipality admin
// tier. Both roles share the same surface; the procedures scope results to
// the caller's own local body.
type GPHandlers struct {
	Dashboard  *handler.GPDashboardHandler
	Collectors *handler.GPCollectorHandler
	Households *handler.HouseholdHandler
	Routes     *handler.GPRouteHandler
	Reports    *handler.GPReportHandler
	Segregation *handler.GPSegregationHandler
	Tracking   *handler.GPCollectionTrackingHandler
	Vendors    *handler.GPVendorHandler
	DumpSites  *handler.GPDumpMonitoringHandler
}

// RegisterGP registers the GP-tier endpoints under /api/gp for the
// gp_admin and municipality_admin roles.
func RegisterGP(e *echo.Echo, h GPHandlers, jwtSecret string) {
	g := e.Group(
		"/api/gp",
		middleware.Auth(jwtSecret),
		middleware.RequireRole("gp_admin", "municipality_admin"),
	)

	g.GET("/dashboard/overview", h.Dashboard.Overview)

	g.GET("/collectors/stats", h.Collectors.Stats)
	g.GET("/collectors/list", h.Collectors.List)
	g.POST("/collectors/add", h.Collectors.Add)
	g.PUT("/collectors/update/:id", h.Collectors.Update)

	g.GET("/households/stats", h.Households.Stats)
	g.GET("/households", h.Households.List)
	g.POST("/households/register", h.Households.Register)
	g.GET("/households/:id", h.Households.ByID)

	g.GET("/routes/stats", h.Routes.Stats)
	g.GET("/routes/list", h.Routes.List)
	g.POST("/routes/add", h.Routes.Create)
	g.GET("/routes/wards", h.Routes.Wards)
	g.GET("/routes/houses", h.Routes.HousesByWard)

	g.GET("/reports/weekly-collection", h.Reports.WeeklyCollection)
	g.GET("/reports/category-distribution", h.Reports.CategoryDistribution)
	g.GET("/reports/collection-logs", h.Reports.CollectionLogs)

	g.GET("/segregation-reports/stats", h.Segregation.Stats)
	g.GET("/segregation-reports/wards", h.Segregation.ByWard)

	g.GET("/collection-tracking/stats", h.Tracking.Stats)
	g.GET("/collection-tracking/routes", h.Tracking.Routes)

	g.GET("/vendor-coordination/stats", h.Vendors.Stats)
	g.GET("/vendor-coordination/vendors", h.Vendors.List)

	g.GET("/dump-monitoring/stats", h.DumpSites.Stats)
	g.GET("/dump-monitoring/sites", h.DumpSites.List)
}
