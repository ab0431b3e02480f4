package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// DistrictVehicleService covers the district-tier fleet screens.
type DistrictVehicleService struct{ db *sql.DB }

func NewDistrictVehicleService(db *sql.DB) *DistrictVehicleService {
	return &DistrictVehicleService{db: db}
}

type DistrictVehicleStats struct {
	TotalVehicles  int64 `json:"totalVehicles"`
	ActiveVehicles int64 `json:"activeVehicles"`
	InMaintenance  int64 `json:"inMaintenance"`
	Inactive       int64 `json:"inactive"`
}

func (s *DistrictVehicleService) Stats(ctx context.Context, userID uint64) (Result, error) {
	var (
		total, active, maintenance, inactive sql.NullInt64
		meta                                 procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_district_vehicles_stats(?, @total, @active, @maintenance, @inactive, @error, @msg)`,
		[]any{userID},
		`SELECT @total, @active, @maintenance, @inactive, @error, @msg`,
		&total, &active, &maintenance, &inactive, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve vehicle statistics")), nil
	}
	return OK("Vehicle statistics retrieved successfully", DistrictVehicleStats{
		TotalVehicles:  total.Int64,
		ActiveVehicles: active.Int64,
		InMaintenance:  maintenance.Int64,
		Inactive:       inactive.Int64,
	}), nil
}

// DistrictVehicle is one row of the district fleet list. The list is the
// busiest grid in the district UI, so the columns get explicit types instead
// of the raw pass-through used elsewhere.
type DistrictVehicle struct {
	VehicleID           int64    `json:"vehicleId"`
	RegistrationNumber  string   `json:"registrationNumber"`
	VehicleType         string   `json:"vehicleType"`
	CapacityKg          float64  `json:"capacityKg"`
	Status              string   `json:"status"`
	IsActive            bool     `json:"isActive"`
	LastMaintenanceDate *string  `json:"lastMaintenanceDate"`
	NextMaintenanceDate *string  `json:"nextMaintenanceDate"`
	TotalKmDriven       float64  `json:"totalKmDriven"`
	BlockID             *int64   `json:"blockId"`
	BlockName           *string  `json:"blockName"`
	AssignedToName      *string  `json:"assignedToName"`
	AssignedToType      *string  `json:"assignedToType"`
	AssignedCollector   *string  `json:"assignedCollector"`
}

// ListFilter narrows the district fleet list. Nil / empty fields are passed
// to the procedure as NULL and ignored there.
type DistrictVehicleFilter struct {
	BlockID     *int64
	Status      string
	VehicleType string
	Search      string
}

func (s *DistrictVehicleService) List(ctx context.Context, userID uint64, f DistrictVehicleFilter, page, pageSize int) (Result, error) {
	var (
		vehicles []DistrictVehicle
		total    sql.NullInt64
		meta     procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_district_vehicles_list(?, ?, ?, ?, ?, ?, ?, @total, @error, @msg)`,
		[]any{userID, f.BlockID, f.Status, f.VehicleType, f.Search, page, pageSize},
		func(rows *sql.Rows) error {
			for rows.Next() {
				var (
					v                      DistrictVehicle
					capacity, km           sql.NullFloat64
					lastMaint, nextMaint   sql.NullString
					blockID                sql.NullInt64
					blockName, toName      sql.NullString
					toType, collector      sql.NullString
					isActive               sql.NullBool
				)
				if err := rows.Scan(&v.VehicleID, &v.RegistrationNumber, &v.VehicleType, &capacity,
					&v.Status, &isActive, &lastMaint, &nextMaint, &km,
					&blockID, &blockName, &toName, &toType, &collector); err != nil {
					return err
				}
				v.CapacityKg = capacity.Float64
				v.IsActive = isActive.Bool
				v.TotalKmDriven = km.Float64
				v.LastMaintenanceDate = nullableString(lastMaint)
				v.NextMaintenanceDate = nullableString(nextMaint)
				v.BlockID = nullableID(blockID)
				v.BlockName = nullableString(blockName)
				v.AssignedToName = nullableString(toName)
				v.AssignedToType = nullableString(toType)
				v.AssignedCollector = nullableString(collector)
				vehicles = append(vehicles, v)
			}
			return rows.Err()
		},
		`SELECT @total, @error, @msg`,
		&total, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve vehicles list")), nil
	}
	if vehicles == nil {
		vehicles = []DistrictVehicle{}
	}
	return OK("Vehicles list retrieved successfully", map[string]any{
		"vehicles":   vehicles,
		"pagination": NewPagination(page, pageSize, total.Int64),
	}), nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
