package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// GPSegregationService serves the segregation compliance screens.
type GPSegregationService struct{ db *sql.DB }

func NewGPSegregationService(db *sql.DB) *GPSegregationService {
	return &GPSegregationService{db: db}
}

type SegregationStats struct {
	DryPct     float64 `json:"dryPct"`
	WetPct     float64 `json:"wetPct"`
	MixedPct   float64 `json:"mixedPct"`
	TotalWards int64   `json:"totalWards"`
}

func (s *GPSegregationService) Stats(ctx context.Context, userID uint64, dateFrom, dateTo *string) (Result, error) {
	var (
		dry, wet, mixed sql.NullFloat64
		wards           sql.NullInt64
		meta            procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_segregation_stats(?, ?, ?, @dry_pct, @wet_pct, @mixed_pct, @total_wards, @error, @msg)`,
		[]any{userID, dateFrom, dateTo},
		`SELECT @dry_pct, @wet_pct, @mixed_pct, @total_wards, @error, @msg`,
		&dry, &wet, &mixed, &wards, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve segregation statistics")), nil
	}
	return OK("Segregation statistics retrieved successfully", SegregationStats{
		DryPct:     dry.Float64,
		WetPct:     wet.Float64,
		MixedPct:   mixed.Float64,
		TotalWards: wards.Int64,
	}), nil
}

// ByWard returns per-ward segregation compliance for a date window.
func (s *GPSegregationService) ByWard(ctx context.Context, userID uint64, dateFrom, dateTo *string, search string) (Result, error) {
	var (
		wards []map[string]any
		meta  procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_segregation_by_ward(?, ?, ?, ?, @error, @msg)`,
		[]any{userID, dateFrom, dateTo, search},
		func(rows *sql.Rows) error {
			var err error
			wards, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @error, @msg`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve ward segregation")), nil
	}
	return OK("Ward segregation retrieved successfully", map[string]any{"wards": wards}), nil
}
