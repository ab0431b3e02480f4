package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// GPCollectionTrackingService serves the live per-route collection tracking
// screen. date defaults to today when nil.
type GPCollectionTrackingService struct{ db *sql.DB }

func NewGPCollectionTrackingService(db *sql.DB) *GPCollectionTrackingService {
	return &GPCollectionTrackingService{db: db}
}

type CollectionTrackingStats struct {
	TotalRoutes       int64   `json:"totalRoutes"`
	TotalCollected    int64   `json:"totalCollected"`
	OverallCompletion float64 `json:"overallCompletionPct"`
	TotalHouseholds   int64   `json:"totalHouseholds"`
}

func (s *GPCollectionTrackingService) Stats(ctx context.Context, userID uint64, date *string) (Result, error) {
	var (
		routes, collected, households sql.NullInt64
		completion                    sql.NullFloat64
		meta                          procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_collection_tracking_stats(?, ?, @total_routes, @total_collected, @overall_completion_pct, @total_households, @error, @msg)`,
		[]any{userID, date},
		`SELECT @total_routes, @total_collected, @overall_completion_pct, @total_households, @error, @msg`,
		&routes, &collected, &completion, &households, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve tracking statistics")), nil
	}
	return OK("Tracking statistics retrieved successfully", CollectionTrackingStats{
		TotalRoutes:       routes.Int64,
		TotalCollected:    collected.Int64,
		OverallCompletion: completion.Float64,
		TotalHouseholds:   households.Int64,
	}), nil
}

// Routes returns the per-route completion breakdown for the day.
func (s *GPCollectionTrackingService) Routes(ctx context.Context, userID uint64, date *string, search string) (Result, error) {
	var (
		routes []map[string]any
		meta   procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_collection_tracking_routes(?, ?, ?, @error, @msg)`,
		[]any{userID, date, search},
		func(rows *sql.Rows) error {
			var err error
			routes, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @error, @msg`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve route tracking")), nil
	}
	return OK("Route tracking retrieved successfully", map[string]any{"routes": routes}), nil
}
