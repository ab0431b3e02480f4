package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// DistrictWasteService serves the district waste operations screens.
type DistrictWasteService struct{ db *sql.DB }

func NewDistrictWasteService(db *sql.DB) *DistrictWasteService {
	return &DistrictWasteService{db: db}
}

type DistrictWasteStats struct {
	TotalWasteKg     float64 `json:"totalWasteKg"`
	TodaysWasteKg    float64 `json:"todaysWasteKg"`
	HouseholdsServed int64   `json:"householdsServed"`
	Efficiency       float64 `json:"efficiency"`
	SegregationRate  float64 `json:"segregationRate"`
}

func (s *DistrictWasteService) Stats(ctx context.Context, userID uint64) (Result, error) {
	var (
		total, today, eff, segregation sql.NullFloat64
		households                     sql.NullInt64
		meta                           procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_district_waste_stats(?, @total, @today, @households, @efficiency, @segregation, @error, @msg)`,
		[]any{userID},
		`SELECT @total, @today, @households, @efficiency, @segregation, @error, @msg`,
		&total, &today, &households, &eff, &segregation, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve waste statistics")), nil
	}
	return OK("Waste statistics retrieved successfully", DistrictWasteStats{
		TotalWasteKg:     total.Float64,
		TodaysWasteKg:    today.Float64,
		HouseholdsServed: households.Int64,
		Efficiency:       eff.Float64,
		SegregationRate:  segregation.Float64,
	}), nil
}

// Trends returns the daily waste series for the trailing `days` window.
func (s *DistrictWasteService) Trends(ctx context.Context, userID uint64, days int) (Result, error) {
	var (
		trends []map[string]any
		meta   procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_district_waste_trends(?, ?, @error, @msg)`,
		[]any{userID, days},
		func(rows *sql.Rows) error {
			var err error
			trends, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @error, @msg`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve waste trends")), nil
	}
	return OK("Waste trends retrieved successfully", map[string]any{"trends": trends}), nil
}

// Summary breaks waste totals down per block, or per GP when blockID is set.
func (s *DistrictWasteService) Summary(ctx context.Context, userID uint64, blockID *int64, start, end *string) (Result, error) {
	var (
		summary []map[string]any
		meta    procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_district_waste_summary(?, ?, ?, ?, @error, @msg)`,
		[]any{userID, blockID, start, end},
		func(rows *sql.Rows) error {
			var err error
			summary, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @error, @msg`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve waste summary")), nil
	}
	return OK("Waste summary retrieved successfully", map[string]any{"summary": summary}), nil
}
