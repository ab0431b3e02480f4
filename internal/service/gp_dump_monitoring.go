package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// GPDumpMonitoringService serves the GP-tier dump site monitoring screen.
type GPDumpMonitoringService struct{ db *sql.DB }

func NewGPDumpMonitoringService(db *sql.DB) *GPDumpMonitoringService {
	return &GPDumpMonitoringService{db: db}
}

type DumpMonitoringStats struct {
	TotalSites          int64   `json:"totalSites"`
	TotalUsedMT         float64 `json:"totalUsedMT"`
	SitesHighUsage      int64   `json:"sitesHighUsage"`
	AvailableCapacityMT float64 `json:"availableCapacityMT"`
}

func (s *GPDumpMonitoringService) Stats(ctx context.Context, userID uint64) (Result, error) {
	var (
		sites, highUsage sql.NullInt64
		used, available  sql.NullFloat64
		meta             procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_dump_monitoring_stats(?, @total_sites, @total_used_mt, @sites_high_usage, @available_capacity_mt, @error, @msg)`,
		[]any{userID},
		`SELECT @total_sites, @total_used_mt, @sites_high_usage, @available_capacity_mt, @error, @msg`,
		&sites, &used, &highUsage, &available, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve dump monitoring statistics")), nil
	}
	return OK("Dump monitoring statistics retrieved successfully", DumpMonitoringStats{
		TotalSites:          sites.Int64,
		TotalUsedMT:         used.Float64,
		SitesHighUsage:      highUsage.Int64,
		AvailableCapacityMT: available.Float64,
	}), nil
}

func (s *GPDumpMonitoringService) List(ctx context.Context, userID uint64, search string) (Result, error) {
	var (
		sites []map[string]any
		meta  procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_dump_sites_list(?, ?, @error, @msg)`,
		[]any{userID, search},
		func(rows *sql.Rows) error {
			var err error
			sites, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @error, @msg`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve dump sites")), nil
	}
	return OK("Dump sites retrieved successfully", map[string]any{"dumpSites": sites}), nil
}
