package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// DistrictReportService serves the district analytics screens. Every report
// here is a raw pass-through of the procedure's result set.
type DistrictReportService struct{ db *sql.DB }

func NewDistrictReportService(db *sql.DB) *DistrictReportService {
	return &DistrictReportService{db: db}
}

// ReportWindow bounds a report to a date range and, optionally, one block.
type ReportWindow struct {
	StartDate *string
	EndDate   *string
	BlockID   *int64
}

func (s *DistrictReportService) CollectionTrends(ctx context.Context, userID uint64, w ReportWindow) (Result, error) {
	return s.passthrough(ctx,
		`CALL sp_get_district_collection_trends(?, ?, ?, ?, @error, @msg)`,
		[]any{userID, w.StartDate, w.EndDate, w.BlockID},
		"trends", "Collection trends retrieved successfully", "Failed to retrieve collection trends")
}

func (s *DistrictReportService) WasteDistribution(ctx context.Context, userID uint64, w ReportWindow) (Result, error) {
	return s.passthrough(ctx,
		`CALL sp_get_district_waste_distribution(?, ?, ?, ?, @error, @msg)`,
		[]any{userID, w.StartDate, w.EndDate, w.BlockID},
		"distribution", "Waste distribution retrieved successfully", "Failed to retrieve waste distribution")
}

func (s *DistrictReportService) BlockPerformance(ctx context.Context, userID uint64, start, end *string) (Result, error) {
	return s.passthrough(ctx,
		`CALL sp_get_district_block_performance_report(?, ?, ?, @error, @msg)`,
		[]any{userID, start, end},
		"blocks", "Block performance report retrieved successfully", "Failed to retrieve block performance report")
}

// ActivityLogs returns the latest district activity, capped to the last
// `days` days (defaulting upstream to a week).
func (s *DistrictReportService) ActivityLogs(ctx context.Context, userID uint64, days int) (Result, error) {
	return s.passthrough(ctx,
		`CALL sp_get_district_activity_logs(?, ?, @error, @msg)`,
		[]any{userID, days},
		"activities", "Activity logs retrieved successfully", "Failed to retrieve activity logs")
}

func (s *DistrictReportService) passthrough(ctx context.Context, call string, args []any, key, okMsg, failMsg string) (Result, error) {
	var (
		items []map[string]any
		meta  procedure.Meta
	)
	err := procedure.Query(ctx, s.db, call, args,
		func(rows *sql.Rows) error {
			var err error
			items, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @error, @msg`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text(failMsg)), nil
	}
	return OK(okMsg, map[string]any{key: items}), nil
}
