package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
	"github.com/sswm/waste-admin-api/internal/utils"
)

// LocalBodyService covers the block-tier gram panchayat / municipality
// procedures, including onboarding new local bodies with their admin users.
type LocalBodyService struct {
	db         *sql.DB
	bcryptCost int
}

func NewLocalBodyService(db *sql.DB, bcryptCost int) *LocalBodyService {
	return &LocalBodyService{db: db, bcryptCost: bcryptCost}
}

// LocalBodyStats is the block "GPs & Municipalities" overview card set.
type LocalBodyStats struct {
	TotalGPs            int64   `json:"totalGPs"`
	TotalMunicipalities int64   `json:"totalMunicipalities"`
	TotalCollectors     int64   `json:"totalCollectors"`
	AvgEfficiency       float64 `json:"avgEfficiency"`
	TotalHouseholds     int64   `json:"totalHouseholds"`
	TotalAlerts         int64   `json:"totalAlerts"`
}

func (s *LocalBodyService) Stats(ctx context.Context, userID uint64) (Result, error) {
	var (
		gps, muns, collectors, houses, alerts sql.NullInt64
		avgEff                                sql.NullFloat64
		meta                                  procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_gp_mun_stats(?, @total_gps, @total_mun, @total_collectors, @avg_eff, @total_houses, @total_alerts, @error, @msg)`,
		[]any{userID},
		`SELECT @total_gps, @total_mun, @total_collectors, @avg_eff, @total_houses, @total_alerts, @error, @msg`,
		&gps, &muns, &collectors, &avgEff, &houses, &alerts, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve statistics")), nil
	}
	return OK("Statistics retrieved successfully", LocalBodyStats{
		TotalGPs:            gps.Int64,
		TotalMunicipalities: muns.Int64,
		TotalCollectors:     collectors.Int64,
		AvgEfficiency:       avgEff.Float64,
		TotalHouseholds:     houses.Int64,
		TotalAlerts:         alerts.Int64,
	}), nil
}

// AddLocalBodyInput is shared between gram panchayat and municipality
// onboarding. WardsCount is only consulted for municipalities.
type AddLocalBodyInput struct {
	Name          string
	Population    int64
	AreaSqKm      float64
	WardsCount    int64
	AdminUsername string
	AdminEmail    string
	AdminFullName string
	AdminPhone    string
	AdminPassword string
}

// AddGramPanchayat creates a GP plus its admin account in one procedure call.
// The password is hashed here so the database never sees the plaintext.
func (s *LocalBodyService) AddGramPanchayat(ctx context.Context, userID uint64, in AddLocalBodyInput) (Result, error) {
	hash, err := utils.HashPassword(in.AdminPassword, s.bcryptCost)
	if err != nil {
		return Result{}, err
	}
	var (
		gpID, adminID sql.NullInt64
		gpCode        sql.NullString
		meta          procedure.Meta
	)
	err = procedure.Exec(ctx, s.db,
		`CALL sp_add_gram_panchayat(?, ?, ?, ?, ?, ?, ?, ?, ?, @gp_id, @gp_code, @admin_id, @error, @msg)`,
		[]any{userID, in.Name, in.Population, in.AreaSqKm, in.AdminUsername, in.AdminEmail, in.AdminFullName, in.AdminPhone, hash},
		`SELECT @gp_id, @gp_code, @admin_id, @error, @msg`,
		&gpID, &gpCode, &adminID, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to add gram panchayat")), nil
	}
	return OK("Gram Panchayat added successfully", map[string]any{
		"gpId":    gpID.Int64,
		"gpCode":  gpCode.String,
		"adminId": adminID.Int64,
	}), nil
}

// AddMunicipality mirrors AddGramPanchayat with the extra wards count.
func (s *LocalBodyService) AddMunicipality(ctx context.Context, userID uint64, in AddLocalBodyInput) (Result, error) {
	hash, err := utils.HashPassword(in.AdminPassword, s.bcryptCost)
	if err != nil {
		return Result{}, err
	}
	var (
		munID, adminID sql.NullInt64
		munCode        sql.NullString
		meta           procedure.Meta
	)
	err = procedure.Exec(ctx, s.db,
		`CALL sp_add_municipality(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, @mun_id, @mun_code, @admin_id, @error, @msg)`,
		[]any{userID, in.Name, in.Population, in.AreaSqKm, in.WardsCount, in.AdminUsername, in.AdminEmail, in.AdminFullName, in.AdminPhone, hash},
		`SELECT @mun_id, @mun_code, @admin_id, @error, @msg`,
		&munID, &munCode, &adminID, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to add municipality")), nil
	}
	return OK("Municipality added successfully", map[string]any{
		"municipalityId":   munID.Int64,
		"municipalityCode": munCode.String,
		"adminId":          adminID.Int64,
	}), nil
}

// List pages through the block's local bodies. typ filters to "gp" or
// "municipality"; empty means both.
func (s *LocalBodyService) List(ctx context.Context, userID uint64, typ string, page, pageSize int) (Result, error) {
	var (
		items []map[string]any
		total sql.NullInt64
		meta  procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_gp_mun_list(?, ?, ?, ?, @total, @error, @msg)`,
		[]any{userID, typ, page, pageSize},
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
