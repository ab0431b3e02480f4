package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// DistrictDumpSiteService covers the district dump site screens.
type DistrictDumpSiteService struct{ db *sql.DB }

func NewDistrictDumpSiteService(db *sql.DB) *DistrictDumpSiteService {
	return &DistrictDumpSiteService{db: db}
}

type DistrictDumpSiteStats struct {
	TotalSites       int64   `json:"totalSites"`
	TotalCapacityMT  float64 `json:"totalCapacityMT"`
	TotalUsageMT     float64 `json:"totalUsageMT"`
	Utilization      float64 `json:"utilization"`
	OperationalSites int64   `json:"operationalSites"`
	CriticalSites    int64   `json:"criticalSites"`
}

func (s *DistrictDumpSiteService) Stats(ctx context.Context, userID uint64) (Result, error) {
	var (
		total, operational, critical   sql.NullInt64
		capacity, usage, utilization   sql.NullFloat64
		meta                           procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_district_dump_sites_stats(?, @total, @capacity, @usage, @utilization, @operational, @critical, @error, @msg)`,
		[]any{userID},
		`SELECT @total, @capacity, @usage, @utilization, @operational, @critical, @error, @msg`,
		&total, &capacity, &usage, &utilization, &operational, &critical, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve dump site statistics")), nil
	}
	return OK("Dump site statistics retrieved successfully", DistrictDumpSiteStats{
		TotalSites:       total.Int64,
		TotalCapacityMT:  capacity.Float64,
		TotalUsageMT:     usage.Float64,
		Utilization:      utilization.Float64,
		OperationalSites: operational.Int64,
		CriticalSites:    critical.Int64,
	}), nil
}

type DistrictDumpSiteFilter struct {
	Search   string
	Status   string
	SiteType string
	BlockID  *int64
}

func (s *DistrictDumpSiteService) List(ctx context.Context, userID uint64, f DistrictDumpSiteFilter, page, pageSize int) (Result, error) {
	var (
		sites []map[string]any
		total sql.NullInt64
		meta  procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_district_dump_sites_list(?, ?, ?, ?, ?, ?, ?, @total, @error, @msg)`,
		[]any{userID, page, pageSize, f.Search, f.Status, f.SiteType, f.BlockID},
		func(rows *sql.Rows) error {
			var err error
			sites, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @total, @error, @msg`,
		&total, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve dump sites")), nil
	}
	return OK("Dump sites retrieved successfully", map[string]any{
		"dumpSites":  sites,
		"pagination": NewPagination(page, pageSize, total.Int64),
	}), nil
}
