package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// DumpYardService exposes the block-tier dump yard procedures.
type DumpYardService struct{ db *sql.DB }

func NewDumpYardService(db *sql.DB) *DumpYardService { return &DumpYardService{db: db} }

// DumpYardStats aggregates capacity across the block's yards.
type DumpYardStats struct {
	TotalCapacity float64 `json:"totalCapacity"`
	TotalUsed     float64 `json:"totalUsed"`
	Utilization   float64 `json:"utilization"`
	CriticalSites int64   `json:"criticalSites"`
}

func (s *DumpYardService) Stats(ctx context.Context, userID uint64) (Result, error) {
	var (
		capacity, used, utilization sql.NullFloat64
		critical                    sql.NullInt64
		meta                        procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_dump_yard_stats(?, @total_capacity, @total_used, @utilization, @critical, @error, @msg)`,
		[]any{userID},
		`SELECT @total_capacity, @total_used, @utilization, @critical, @error, @msg`,
		&capacity, &used, &utilization, &critical, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve dump yard statistics")), nil
	}
	return OK("Dump yard statistics retrieved successfully", DumpYardStats{
		TotalCapacity: capacity.Float64,
		TotalUsed:     used.Float64,
		Utilization:   utilization.Float64,
		CriticalSites: critical.Int64,
	}), nil
}

// List returns every dump yard visible to the caller. The procedure has no
// pagination; the block tier shows the full set.
func (s *DumpYardService) List(ctx context.Context, userID uint64) (Result, error) {
	var (
		yards []map[string]any
		meta  procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_dump_yards_list(?, @error, @msg)`,
		[]any{userID},
		func(rows *sql.Rows) error {
			var err error
			yards, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @error, @msg`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve dump yards")), nil
	}
	return OK("Dump yards retrieved successfully", map[string]any{"dumpYards": yards}), nil
}
