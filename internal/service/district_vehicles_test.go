package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDistrictVehicleListMapsRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	cols := []string{
		"vehicle_id", "registration_number", "vehicle_type", "capacity_kg",
		"status", "is_active", "last_maintenance_date", "next_maintenance_date",
		"total_km_driven", "block_id", "block_name", "assigned_to_name",
		"assigned_to_type", "assigned_collector",
	}
	mock.ExpectQuery(regexp.QuoteMeta(`CALL sp_get_district_vehicles_list(`)).
		WithArgs(uint64(3), nil, "active", "", "", 1, 15).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(11, "KA-05-2001", "tipper", 1500.0, "active", true,
				"2026-07-01", "2026-10-01", 4521.5, 2, "North Block", "Ward 4 GP", "gp", "R. Kumar").
			AddRow(12, "KA-05-2002", "auto", 600.0, "active", true,
				nil, nil, 980.0, nil, nil, nil, nil, nil))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT @total, @error, @msg`)).
		WillReturnRows(sqlmock.NewRows([]string{"@total", "@error", "@msg"}).AddRow(2, 0, "Success"))

	svc := NewDistrictVehicleService(db)
	res, err := svc.List(context.Background(), 3, DistrictVehicleFilter{Status: "active"}, 1, 15)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.ErrorCode != 0 {
		t.Fatalf("ErrorCode = %d, message %q", res.ErrorCode, res.Message)
	}
	data := res.Data.(map[string]any)
	vehicles := data["vehicles"].([]DistrictVehicle)
	if len(vehicles) != 2 {
		t.Fatalf("len(vehicles) = %d, want 2", len(vehicles))
	}
	first := vehicles[0]
	if first.VehicleID != 11 || first.RegistrationNumber != "KA-05-2001" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.BlockName == nil || *first.BlockName != "North Block" {
		t.Errorf("BlockName = %v", first.BlockName)
	}
	second := vehicles[1]
	if second.BlockID != nil || second.LastMaintenanceDate != nil || second.AssignedCollector != nil {
		t.Errorf("NULL columns must map to nil pointers: %+v", second)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDistrictVehicleListEmptyIsNotNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`CALL sp_get_district_vehicles_list(`)).
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_id"}))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT @total, @error, @msg`)).
		WillReturnRows(sqlmock.NewRows([]string{"@total", "@error", "@msg"}).AddRow(0, 0, "Success"))

	svc := NewDistrictVehicleService(db)
	res, err := svc.List(context.Background(), 3, DistrictVehicleFilter{}, 1, 15)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	vehicles := res.Data.(map[string]any)["vehicles"].([]DistrictVehicle)
	if vehicles == nil {
		t.Error("empty list must serialize as [] not null")
	}
}
