package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
	"github.com/sswm/waste-admin-api/internal/utils"
)

// GPCollectorService manages waste collector accounts under one GP or
// municipality.
type GPCollectorService struct {
	db         *sql.DB
	bcryptCost int
}

func NewGPCollectorService(db *sql.DB, bcryptCost int) *GPCollectorService {
	return &GPCollectorService{db: db, bcryptCost: bcryptCost}
}

type GPCollectorStats struct {
	TotalCollectors  int64 `json:"totalCollectors"`
	ActiveCollectors int64 `json:"activeCollectors"`
	OnLeave          int64 `json:"onLeave"`
	AssignedRoutes   int64 `json:"assignedRoutes"`
}

func (s *GPCollectorService) Stats(ctx context.Context, userID uint64) (Result, error) {
	var (
		total, active, leave, routes sql.NullInt64
		meta                         procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_gp_collectors_stats(?, @total, @active, @leave, @routes, @error, @msg)`,
		[]any{userID},
		`SELECT @total, @active, @leave, @routes, @error, @msg`,
		&total, &active, &leave, &routes, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve collector statistics")), nil
	}
	return OK("Collector statistics retrieved successfully", GPCollectorStats{
		TotalCollectors:  total.Int64,
		ActiveCollectors: active.Int64,
		OnLeave:          leave.Int64,
		AssignedRoutes:   routes.Int64,
	}), nil
}

func (s *GPCollectorService) List(ctx context.Context, userID uint64, search string, page, pageSize int) (Result, error) {
	var (
		collectors []map[string]any
		total      sql.NullInt64
		meta       procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_gp_collectors_list(?, ?, ?, ?, @total, @error, @msg)`,
		[]any{userID, search, page, pageSize},
		func(rows *sql.Rows) error {
			var err error
			collectors, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @total, @error, @msg`,
		&total, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve collectors")), nil
	}
	return OK("Collectors retrieved successfully", map[string]any{
		"collectors": collectors,
		"pagination": NewPagination(page, pageSize, total.Int64),
	}), nil
}

// AddCollectorInput is the create-collector form. RouteID and VehicleID are
// optional initial assignments.
type AddCollectorInput struct {
	FullName  string
	Username  string
	Email     string
	Phone     string
	Password  string
	RouteID   *int64
	VehicleID *int64
}

func (s *GPCollectorService) Add(ctx context.Context, userID uint64, in AddCollectorInput) (Result, error) {
	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return Result{}, err
	}
	var (
		collectorID sql.NullInt64
		meta        procedure.Meta
	)
	err = procedure.Exec(ctx, s.db,
		`CALL sp_add_gp_collector(?, ?, ?, ?, ?, ?, ?, ?, @collector_id, @error, @msg)`,
		[]any{userID, in.FullName, in.Username, in.Email, in.Phone, hash, in.RouteID, in.VehicleID},
		`SELECT @collector_id, @error, @msg`,
		&collectorID, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to add collector")), nil
	}
	return OK("Collector added successfully", map[string]any{"collectorId": collectorID.Int64}), nil
}

// UpdateCollectorInput is a partial update; nil fields are passed as NULL
// and left unchanged by the procedure.
type UpdateCollectorInput struct {
	FullName  *string
	Phone     *string
	RouteID   *int64
	VehicleID *int64
	Status    *string
}

func (s *GPCollectorService) Update(ctx context.Context, userID uint64, collectorID int64, in UpdateCollectorInput) (Result, error) {
	var meta procedure.Meta
	err := procedure.Exec(ctx, s.db,
		`CALL sp_update_gp_collector(?, ?, ?, ?, ?, ?, ?, @error, @msg)`,
		[]any{userID, collectorID, in.FullName, in.Phone, in.RouteID, in.VehicleID, in.Status},
		`SELECT @error, @msg`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to update collector")), nil
	}
	return OK("Collector updated successfully", nil), nil
}
