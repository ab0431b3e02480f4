package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestVehicleStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`CALL sp_get_vehicle_stats(?, @total, @on_route, @workshop, @standby, @error, @msg)`)).
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT @total, @on_route, @workshop, @standby, @error, @msg`)).
		WillReturnRows(sqlmock.NewRows([]string{"@total", "@on_route", "@workshop", "@standby", "@error", "@msg"}).
			AddRow(12, 5, 2, 5, 0, "Success"))

	svc := NewVehicleService(db)
	res, err := svc.Stats(context.Background(), 7)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if res.ErrorCode != 0 {
		t.Fatalf("ErrorCode = %d, want 0", res.ErrorCode)
	}
	stats, ok := res.Data.(VehicleStats)
	if !ok {
		t.Fatalf("Data is %T, want VehicleStats", res.Data)
	}
	if stats.TotalVehicles != 12 || stats.OnRoute != 5 || stats.InWorkshop != 2 || stats.Standby != 5 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestVehicleStatsProcedureFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`CALL sp_get_vehicle_stats(`)).
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT @total`)).
		WillReturnRows(sqlmock.NewRows([]string{"@total", "@on_route", "@workshop", "@standby", "@error", "@msg"}).
			AddRow(nil, nil, nil, nil, 2, "User does not belong to a block"))

	svc := NewVehicleService(db)
	res, err := svc.Stats(context.Background(), 7)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if res.ErrorCode != 2 {
		t.Errorf("ErrorCode = %d, want 2", res.ErrorCode)
	}
	if res.Message != "User does not belong to a block" {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestVehicleListPagination(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`CALL sp_get_vehicles_list(?, ?, ?, ?, @total, @error, @msg)`)).
		WithArgs(uint64(7), "gp", 2, 5).
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_id", "registration_number"}).
			AddRow(6, "KA-01-0006").
			AddRow(7, "KA-01-0007").
			AddRow(8, "KA-01-0008").
			AddRow(9, "KA-01-0009").
			AddRow(10, "KA-01-0010"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT @total, @error, @msg`)).
		WillReturnRows(sqlmock.NewRows([]string{"@total", "@error", "@msg"}).
			AddRow(12, 0, "Success"))

	svc := NewVehicleService(db)
	res, err := svc.List(context.Background(), 7, "gp", 2, 5)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.ErrorCode != 0 {
		t.Fatalf("ErrorCode = %d, want 0", res.ErrorCode)
	}
	data := res.Data.(map[string]any)
	vehicles := data["vehicles"].([]map[string]any)
	if len(vehicles) != 5 {
		t.Errorf("len(vehicles) = %d, want 5", len(vehicles))
	}
	p := data["pagination"].(Pagination)
	if p.CurrentPage != 2 || p.PageSize != 5 || p.TotalRecords != 12 || p.TotalPages != 3 {
		t.Errorf("unexpected pagination: %+v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
