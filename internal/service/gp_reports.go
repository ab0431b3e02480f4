package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// GPReportService serves the GP-tier reports screen.
type GPReportService struct{ db *sql.DB }

func NewGPReportService(db *sql.DB) *GPReportService { return &GPReportService{db: db} }

// WeeklyCollection returns the per-day collection totals for the current
// week.
func (s *GPReportService) WeeklyCollection(ctx context.Context, userID uint64) (Result, error) {
	return s.passthrough(ctx,
		`CALL sp_get_weekly_collection_report(?, @error, @msg)`,
		[]any{userID},
		"weekly", "Weekly collection report retrieved successfully", "Failed to retrieve weekly collection report")
}

// CategoryDistribution returns waste totals split by category.
func (s *GPReportService) CategoryDistribution(ctx context.Context, userID uint64) (Result, error) {
	return s.passthrough(ctx,
		`CALL sp_get_category_distribution_report(?, @error, @msg)`,
		[]any{userID},
		"categories", "Category distribution retrieved successfully", "Failed to retrieve category distribution")
}

// CollectionLogs filters the GP-level collection log entries.
func (s *GPReportService) CollectionLogs(ctx context.Context, userID uint64, status, wasteType string, date *string) (Result, error) {
	return s.passthrough(ctx,
		`CALL sp_get_collection_logs_report(?, ?, ?, ?, @error, @msg)`,
		[]any{userID, status, wasteType, date},
		"logs", "Collection logs retrieved successfully", "Failed to retrieve collection logs")
}

func (s *GPReportService) passthrough(ctx context.Context, call string, args []any, key, okMsg, failMsg string) (Result, error) {
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
