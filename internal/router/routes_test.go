package router

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/handler"
)

// Frontend clients are built against these paths; renaming one is a breaking
// change, so the mounted surface is pinned here.
func TestMountedRoutePaths(t *testing.T) {
	e := echo.New()
	RegisterDistrict(e, DistrictHandlers{
		Vehicles:    handler.NewDistrictVehicleHandler(nil),
		DumpSites:   handler.NewDistrictDumpSiteHandler(nil),
		BlockAdmins: handler.NewDistrictBlockAdminHandler(nil),
		LocalBodies: handler.NewDistrictLocalBodyHandler(nil),
		Reports:     handler.NewDistrictReportHandler(nil),
		Waste:       handler.NewDistrictWasteHandler(nil),
	}, "secret")
	RegisterGP(e, GPHandlers{
		Dashboard:   handler.NewGPDashboardHandler(nil),
		Collectors:  handler.NewGPCollectorHandler(nil),
		Households:  handler.NewHouseholdHandler(nil),
		Routes:      handler.NewGPRouteHandler(nil),
		Reports:     handler.NewGPReportHandler(nil),
		Segregation: handler.NewGPSegregationHandler(nil),
		Tracking:    handler.NewGPCollectionTrackingHandler(nil),
		Vendors:     handler.NewGPVendorHandler(nil),
		DumpSites:   handler.NewGPDumpMonitoringHandler(nil),
	}, "secret")

	mounted := make(map[string]bool)
	for _, r := range e.Routes() {
		mounted[r.Method+" "+r.Path] = true
	}

	want := []string{
		http.MethodPut + " /api/district/block-admins/update/:id",
		http.MethodPut + " /api/gp/collectors/update/:id",
		http.MethodGet + " /api/gp/households",
		http.MethodGet + " /api/gp/households/:id",
		http.MethodPost + " /api/gp/routes/add",
		http.MethodGet + " /api/gp/routes/houses",
		http.MethodGet + " /api/gp/segregation-reports/wards",
		http.MethodGet + " /api/gp/vendor-coordination/vendors",
		http.MethodGet + " /api/gp/dump-monitoring/sites",
	}
	for _, w := range want {
		if !mounted[w] {
			t.Errorf("route %q is not mounted", w)
		}
	}
}
