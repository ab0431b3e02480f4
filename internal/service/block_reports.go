package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// BlockReportService serves the block-tier reports screen.
type BlockReportService struct{ db *sql.DB }

func NewBlockReportService(db *sql.DB) *BlockReportService { return &BlockReportService{db: db} }

// ReportSummary is the headline card row of the block reports page.
type ReportSummary struct {
	TotalCollections int64   `json:"totalCollections"`
	TotalWasteKg     float64 `json:"totalWasteKg"`
	HousesCovered    int64   `json:"housesCovered"`
	AvgDailyKg       float64 `json:"avgDailyKg"`
	TopPerformer     string  `json:"topPerformer"`
	Efficiency       float64 `json:"efficiency"`
}

func (s *BlockReportService) Summary(ctx context.Context, userID uint64) (Result, error) {
	var (
		collections, houses     sql.NullInt64
		waste, avgDaily, eff    sql.NullFloat64
		topPerformer            sql.NullString
		meta                    procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_report_summary(?, @total_collections, @total_waste, @houses_covered, @avg_daily, @top_performer, @efficiency, @error, @msg)`,
		[]any{userID},
		`SELECT @total_collections, @total_waste, @houses_covered, @avg_daily, @top_performer, @efficiency, @error, @msg`,
		&collections, &waste, &houses, &avgDaily, &topPerformer, &eff, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve report summary")), nil
	}
	return OK("Report summary retrieved successfully", ReportSummary{
		TotalCollections: collections.Int64,
		TotalWasteKg:     waste.Float64,
		HousesCovered:    houses.Int64,
		AvgDailyKg:       avgDaily.Float64,
		TopPerformer:     topPerformer.String,
		Efficiency:       eff.Float64,
	}), nil
}

// CollectionTrend returns the time-bucketed collection series.  period is
// "daily", "weekly" or "monthly"; start and end are optional date bounds.
func (s *BlockReportService) CollectionTrend(ctx context.Context, userID uint64, period string, start, end *string) (Result, error) {
	return s.passthrough(ctx,
		`CALL sp_get_collection_trend(?, ?, ?, ?, @error, @msg)`,
		[]any{userID, period, start, end},
		"trend", "Collection trend retrieved successfully", "Failed to retrieve collection trend")
}

// WasteDistribution returns per-category waste totals for a date window.
func (s *BlockReportService) WasteDistribution(ctx context.Context, userID uint64, start, end *string) (Result, error) {
	return s.passthrough(ctx,
		`CALL sp_get_waste_distribution(?, ?, ?, @error, @msg)`,
		[]any{userID, start, end},
		"distribution", "Waste distribution retrieved successfully", "Failed to retrieve waste distribution")
}

// CollectionLogs pages through the raw collection log entries.
func (s *BlockReportService) CollectionLogs(ctx context.Context, userID uint64, status string, date *string, page, pageSize int) (Result, error) {
	var (
		logs  []map[string]any
		total sql.NullInt64
		meta  procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_collection_logs(?, ?, ?, ?, ?, @total, @error, @msg)`,
		[]any{userID, status, date, page, pageSize},
		func(rows *sql.Rows) error {
			var err error
			logs, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @total, @error, @msg`,
		&total, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve collection logs")), nil
	}
	return OK("Collection logs retrieved successfully", map[string]any{
		"logs":       logs,
		"pagination": NewPagination(page, pageSize, total.Int64),
	}), nil
}

// passthrough runs a single-result-set report procedure and wraps the raw
// rows under the given key.
func (s *BlockReportService) passthrough(ctx context.Context, call string, args []any, key, okMsg, failMsg string) (Result, error) {
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
