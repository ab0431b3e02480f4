package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// VehicleService wraps the block-tier vehicle procedures.
type VehicleService struct{ db *sql.DB }

func NewVehicleService(db *sql.DB) *VehicleService { return &VehicleService{db: db} }

// VehicleStats summarizes the block's fleet for the dashboard cards.
type VehicleStats struct {
	TotalVehicles int64 `json:"totalVehicles"`
	OnRoute       int64 `json:"onRoute"`
	InWorkshop    int64 `json:"inWorkshop"`
	Standby       int64 `json:"standby"`
}

// Stats returns fleet counts scoped to the caller's block.
func (s *VehicleService) Stats(ctx context.Context, userID uint64) (Result, error) {
	var (
		total, onRoute, workshop, standby sql.NullInt64
		meta                              procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_vehicle_stats(?, @total, @on_route, @workshop, @standby, @error, @msg)`,
		[]any{userID},
		`SELECT @total, @on_route, @workshop, @standby, @error, @msg`,
		&total, &onRoute, &workshop, &standby, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve statistics")), nil
	}
	return OK("Vehicle statistics retrieved successfully", VehicleStats{
		TotalVehicles: total.Int64,
		OnRoute:       onRoute.Int64,
		InWorkshop:    workshop.Int64,
		Standby:       standby.Int64,
	}), nil
}

// AddVehicleInput carries the validated add-vehicle fields.  Exactly one of
// GPID and MunicipalityID is set; the handler enforces the rule before the
// service is reached.
type AddVehicleInput struct {
	RegistrationNumber string
	VehicleType        string
	CapacityKg         float64
	GPID               *int64
	MunicipalityID     *int64
}

// Add registers a vehicle against the caller's block.
func (s *VehicleService) Add(ctx context.Context, userID uint64, in AddVehicleInput) (Result, error) {
	var (
		vehicleID sql.NullInt64
		meta      procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_add_vehicle(?, ?, ?, ?, ?, ?, @vehicle_id, @error, @msg)`,
		[]any{userID, in.RegistrationNumber, in.VehicleType, in.CapacityKg, in.GPID, in.MunicipalityID},
		`SELECT @vehicle_id, @error, @msg`,
		&vehicleID, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to add vehicle")), nil
	}
	return OK("Vehicle added successfully", map[string]any{"vehicleId": vehicleID.Int64}), nil
}

// List returns the block's vehicles, optionally filtered to GP-assigned or
// municipality-assigned ones, with the standard pagination envelope.
func (s *VehicleService) List(ctx context.Context, userID uint64, typ string, page, pageSize int) (Result, error) {
	var (
		vehicles []map[string]any
		total    sql.NullInt64
		meta     procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_vehicles_list(?, ?, ?, ?, @total, @error, @msg)`,
		[]any{userID, typ, page, pageSize},
		func(rows *sql.Rows) error {
			var err error
			vehicles, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @total, @error, @msg`,
		&total, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve vehicles list")), nil
	}
	return OK("Vehicles list retrieved successfully", map[string]any{
		"vehicles":   vehicles,
		"pagination": NewPagination(page, pageSize, total.Int64),
	}), nil
}
