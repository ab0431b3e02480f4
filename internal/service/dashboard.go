package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// DashboardService builds the block admin landing page from the single
// multi-result-set overview procedure.
type DashboardService struct{ db *sql.DB }

func NewDashboardService(db *sql.DB) *DashboardService { return &DashboardService{db: db} }

// DashboardStats is the first result set of the overview procedure.
type DashboardStats struct {
	TotalGPs            int64   `json:"totalGPs"`
	TotalMunicipalities int64   `json:"totalMunicipalities"`
	ActiveCollectors    int64   `json:"activeCollectors"`
	TodaysCollection    float64 `json:"todaysCollection"`
	AvgEfficiency       float64 `json:"avgEfficiency"`
	TotalHouseholds     int64   `json:"totalHouseholds"`
	TotalVehicles       int64   `json:"totalVehicles"`
	TotalAlerts         int64   `json:"totalAlerts"`
}

// Overview returns the block dashboard: headline stats, per-local-body rows,
// derived chart series and the recent activity feed.
func (s *DashboardService) Overview(ctx context.Context, userID uint64) (Result, error) {
	var (
		stats      DashboardStats
		gpData     []map[string]any
		munData    []map[string]any
		activities []map[string]any
		meta       procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_dashboard_overview(?, @error, @msg)`,
		[]any{userID},
		func(rows *sql.Rows) error {
			// Result set 1: a single stats row.
			if rows.Next() {
				var (
					gps, muns, collectors, houses, vehicles, alerts sql.NullInt64
					today, eff                                      sql.NullFloat64
				)
				if err := rows.Scan(&gps, &muns, &collectors, &today, &eff, &houses, &vehicles, &alerts); err != nil {
					return err
				}
				stats = DashboardStats{
					TotalGPs:            gps.Int64,
					TotalMunicipalities: muns.Int64,
					ActiveCollectors:    collectors.Int64,
					TodaysCollection:    today.Float64,
					AvgEfficiency:       eff.Float64,
					TotalHouseholds:     houses.Int64,
					TotalVehicles:       vehicles.Int64,
					TotalAlerts:         alerts.Int64,
				}
			}
			if err := rows.Err(); err != nil {
				return err
			}

			// Result set 2: gram panchayat rows.
			if !rows.NextResultSet() {
				return rows.Err()
			}
			var err error
			if gpData, err = procedure.CollectRows(rows); err != nil {
				return err
			}

			// Result set 3: municipality rows.
			if !rows.NextResultSet() {
				return rows.Err()
			}
			if munData, err = procedure.CollectRows(rows); err != nil {
				return err
			}

			// Result set 4: recent activities.
			if !rows.NextResultSet() {
				return rows.Err()
			}
			activities, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @error, @msg`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve dashboard overview")), nil
	}
	return OK("Dashboard overview retrieved successfully", map[string]any{
		"stats": stats,
		"quickAnalytics": map[string]any{
			"collectionEfficiency": stats.AvgEfficiency,
			"todaysCollection":     stats.TodaysCollection,
			"householdCoverage":    stats.TotalHouseholds,
			"activeAlerts":         stats.TotalAlerts,
		},
		"gpData":                gpData,
		"municipalityData":      munData,
		"gpChartData":           chartSeries(gpData),
		"municipalityChartData": chartSeries(munData),
		"recentActivities":      activities,
	}), nil
}

// chartSeries reduces local body rows to the name/efficiency pairs the
// dashboard bar charts consume.
func chartSeries(rows []map[string]any) []map[string]any {
	series := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		series = append(series, map[string]any{
			"name":       row["name"],
			"efficiency": row["efficiency"],
		})
	}
	return series
}
