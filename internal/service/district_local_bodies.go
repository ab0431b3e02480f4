package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// DistrictLocalBodyService is the district-wide view over blocks, gram
// panchayats and municipalities.
type DistrictLocalBodyService struct{ db *sql.DB }

func NewDistrictLocalBodyService(db *sql.DB) *DistrictLocalBodyService {
	return &DistrictLocalBodyService{db: db}
}

type DistrictLocalBodyStats struct {
	TotalBlocks         int64   `json:"totalBlocks"`
	TotalGPs            int64   `json:"totalGPs"`
	TotalMunicipalities int64   `json:"totalMunicipalities"`
	TotalPopulation     int64   `json:"totalPopulation"`
	TotalAreaSqKm       float64 `json:"totalAreaSqKm"`
}

func (s *DistrictLocalBodyService) Stats(ctx context.Context, userID uint64) (Result, error) {
	var (
		blocks, gps, muns, pop sql.NullInt64
		area                   sql.NullFloat64
		meta                   procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_district_blocks_mun_stats(?, @blocks, @gps, @muns, @pop, @area, @error, @msg)`,
		[]any{userID},
		`SELECT @blocks, @gps, @muns, @pop, @area, @error, @msg`,
		&blocks, &gps, &muns, &pop, &area, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve statistics")), nil
	}
	return OK("Statistics retrieved successfully", DistrictLocalBodyStats{
		TotalBlocks:         blocks.Int64,
		TotalGPs:            gps.Int64,
		TotalMunicipalities: muns.Int64,
		TotalPopulation:     pop.Int64,
		TotalAreaSqKm:       area.Float64,
	}), nil
}

// List pages local bodies district-wide. typ filters to "block", "gp" or
// "municipality"; empty returns all three kinds interleaved.
func (s *DistrictLocalBodyService) List(ctx context.Context, userID uint64, typ, search string, page, pageSize int) (Result, error) {
	var (
		items []map[string]any
		total sql.NullInt64
		meta  procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_district_blocks_mun_list(?, ?, ?, ?, ?, @total, @error, @msg)`,
		[]any{userID, typ, search, page, pageSize},
		func(rows *sql.Rows) error {
			var err error
			items, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @total, @error, @msg`,
		&total, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve list")), nil
	}
	return OK("List retrieved successfully", map[string]any{
		"localBodies": items,
		"pagination":  NewPagination(page, pageSize, total.Int64),
	}), nil
}
