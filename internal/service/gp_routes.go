package service

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// GPRouteService manages collection routes and the ward/house lookups used
// when composing them.
type GPRouteService struct{ db *sql.DB }

func NewGPRouteService(db *sql.DB) *GPRouteService { return &GPRouteService{db: db} }

type GPRouteStats struct {
	TotalRoutes     int64   `json:"totalRoutes"`
	TotalCollectors int64   `json:"totalCollectors"`
	TotalHouseholds int64   `json:"totalHouseholds"`
	AvgHouseholds   float64 `json:"avgHouseholds"`
}

func (s *GPRouteService) Stats(ctx context.Context, userID uint64) (Result, error) {
	var (
		routes, collectors, households sql.NullInt64
		avg                            sql.NullFloat64
		meta                           procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_gp_routes_stats(?, @total_routes, @total_collectors, @total_households, @avg_households, @error_code, @message)`,
		[]any{userID},
		`SELECT @total_routes, @total_collectors, @total_households, @avg_households, @error_code, @message`,
		&routes, &collectors, &households, &avg, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve route statistics")), nil
	}
	return OK("Route statistics retrieved successfully", GPRouteStats{
		TotalRoutes:     routes.Int64,
		TotalCollectors: collectors.Int64,
		TotalHouseholds: households.Int64,
		AvgHouseholds:   avg.Float64,
	}), nil
}

func (s *GPRouteService) List(ctx context.Context, userID uint64, search string, page, pageSize int) (Result, error) {
	var (
		routes    []map[string]any
		total     sql.NullInt64
		timestamp sql.NullString
		meta      procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_gp_routes_list(?, ?, ?, ?, @total_records, @timestamp, @error_code, @message)`,
		[]any{userID, search, page, pageSize},
		func(rows *sql.Rows) error {
			var err error
			routes, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @total_records, @timestamp, @error_code, @message`,
		&total, &timestamp, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve routes")), nil
	}
	return OK("Routes retrieved successfully", map[string]any{
		"routes":     routes,
		"pagination": NewPagination(page, pageSize, total.Int64),
	}), nil
}

// CreateRouteInput is the route composer form. HouseIDs is the ordered set
// of households on the route; it is serialized to JSON for the procedure.
type CreateRouteInput struct {
	RouteName   string
	HouseIDs    []int64
	CollectorID *int64
}

func (s *GPRouteService) Create(ctx context.Context, userID uint64, in CreateRouteInput) (Result, error) {
	houseIDs, err := json.Marshal(in.HouseIDs)
	if err != nil {
		return Result{}, err
	}
	var (
		routeID sql.NullInt64
		meta    procedure.Meta
	)
	err = procedure.Exec(ctx, s.db,
		`CALL sp_create_gp_route(?, ?, NULL, ?, ?, @route_id, @error_code, @message)`,
		[]any{userID, in.RouteName, string(houseIDs), in.CollectorID},
		`SELECT @route_id, @error_code, @message`,
		&routeID, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to create route")), nil
	}
	return OK("Route created successfully", map[string]any{"routeId": routeID.Int64}), nil
}

// Wards lists the wards of the caller's local body for the route composer.
func (s *GPRouteService) Wards(ctx context.Context, userID uint64) (Result, error) {
	var (
		wards []map[string]any
		meta  procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_gp_wards(?, @error_code, @message)`,
		[]any{userID},
		func(rows *sql.Rows) error {
			var err error
			wards, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @error_code, @message`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve wards")), nil
	}
	return OK("Wards retrieved successfully", map[string]any{"wards": wards}), nil
}

// HousesByWard lists the unassigned houses of one ward.
func (s *GPRouteService) HousesByWard(ctx context.Context, userID uint64, wardNumber int64) (Result, error) {
	var (
		houses []map[string]any
		meta   procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_gp_houses_by_ward(?, ?, @error_code, @message)`,
		[]any{userID, wardNumber},
		func(rows *sql.Rows) error {
			var err error
			houses, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @error_code, @message`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve houses")), nil
	}
	return OK("Houses retrieved successfully", map[string]any{"houses": houses}), nil
}
