package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/handler"
	"github.com/sswm/waste-admin-api/internal/middleware"
)

// BlockHandlers bundles the handlers mounted for the block admin tier.
type BlockHandlers struct {
	Dashboard   *handler.DashboardHandler
	Vehicles    *handler.VehicleHandler
	DumpYards   *handler.DumpYardHandler
	LocalBodies *handler.LocalBodyHandler
	Reports     *handler.BlockReportHandler
}

// RegisterBlock registers the block-admin endpoints under /api. All routes
// require a valid token and the block_admin role.
func RegisterBlock(e *echo.Echo, h BlockHandlers, jwtSecret string) {
	g := e.Group(
		"/api",
		middleware.Auth(jwtSecret),
		middleware.RequireRole("block_admin"),
	)

	g.GET("/dashboard/overview", h.Dashboard.Overview)

	g.GET("/vehicles/stats", h.Vehicles.Stats)
	g.POST("/vehicles/add", h.Vehicles.Add)
	g.GET("/vehicles/list", h.Vehicles.List)

	g.GET("/dump-yards/stats", h.DumpYards.Stats)
	g.GET("/dump-yards/list", h.DumpYards.List)

	g.GET("/gp-municipality/stats", h.LocalBodies.Stats)
	g.GET("/gp-municipality/list", h.LocalBodies.List)
	g.POST("/gp-municipality/add-gp", h.LocalBodies.AddGramPanchayat)
	g.POST("/gp-municipality/add-municipality", h.LocalBodies.AddMunicipality)

	g.GET("/reports/summary", h.Reports.Summary)
	g.GET("/reports/collection-trend", h.Reports.CollectionTrend)
	g.GET("/reports/waste-distribution", h.Reports.WasteDistribution)
	g.GET("/reports/collection-logs", h.Reports.CollectionLogs)
}
