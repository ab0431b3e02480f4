package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// GPDashboardService builds the GP / municipality admin landing page.
type GPDashboardService struct{ db *sql.DB }

func NewGPDashboardService(db *sql.DB) *GPDashboardService { return &GPDashboardService{db: db} }

// Overview returns the GP dashboard. The procedure emits six result sets:
// stats, today's collection progress, recent activities, the weekly trend,
// the waste category split and the top collector leaderboard.
func (s *GPDashboardService) Overview(ctx context.Context, userID uint64) (Result, error) {
	var (
		sets [6][]map[string]any
		meta procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_gp_dashboard_overview(?, @error, @msg)`,
		[]any{userID},
		func(rows *sql.Rows) error {
			for i := range sets {
				if i > 0 && !rows.NextResultSet() {
					return rows.Err()
				}
				var err error
				if sets[i], err = procedure.CollectRows(rows); err != nil {
					return err
				}
			}
			return nil
		},
		`SELECT @error, @msg`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve dashboard overview")), nil
	}
	var stats map[string]any
	if len(sets[0]) > 0 {
		stats = sets[0][0]
	}
	return OK("Dashboard overview retrieved successfully", map[string]any{
		"stats":              stats,
		"collectionProgress": sets[1],
		"recentActivities":   sets[2],
		"weeklyTrend":        sets[3],
		"wasteDistribution":  sets[4],
		"topCollectors":      sets[5],
	}), nil
}
