package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// HouseholdService manages household registration and the QR linkage state
// under one GP or municipality.
type HouseholdService struct{ db *sql.DB }

func NewHouseholdService(db *sql.DB) *HouseholdService { return &HouseholdService{db: db} }

type HouseholdStats struct {
	TotalHouseholds int64 `json:"totalHouseholds"`
	QRLinked        int64 `json:"qrLinked"`
	PendingQR       int64 `json:"pendingQR"`
	ActiveHouses    int64 `json:"activeHouses"`
}

func (s *HouseholdService) Stats(ctx context.Context, userID uint64) (Result, error) {
	var (
		total, linked, pending, active sql.NullInt64
		meta                           procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_household_stats(?, @total, @qr_linked, @pending, @active, @error, @msg)`,
		[]any{userID},
		`SELECT @total, @qr_linked, @pending, @active, @error, @msg`,
		&total, &linked, &pending, &active, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve household statistics")), nil
	}
	return OK("Household statistics retrieved successfully", HouseholdStats{
		TotalHouseholds: total.Int64,
		QRLinked:        linked.Int64,
		PendingQR:       pending.Int64,
		ActiveHouses:    active.Int64,
	}), nil
}

// RegisterHouseInput is the household registration form.
type RegisterHouseInput struct {
	WardNumber      int64
	Zone            string
	Address         string
	HeadOfHousehold string
	FamilyMembers   int64
	Phone           string
}

// Register creates the household and returns its generated code and QR
// payload.
func (s *HouseholdService) Register(ctx context.Context, userID uint64, in RegisterHouseInput) (Result, error) {
	var (
		houseID           sql.NullInt64
		houseCode, qrCode sql.NullString
		meta              procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_register_house(?, ?, ?, ?, ?, ?, ?, @house_id, @house_code, @qr_code, @error, @msg)`,
		[]any{userID, in.WardNumber, in.Zone, in.Address, in.HeadOfHousehold, in.FamilyMembers, in.Phone},
		`SELECT @house_id, @house_code, @qr_code, @error, @msg`,
		&houseID, &houseCode, &qrCode, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to register household")), nil
	}
	return OK("Household registered successfully", map[string]any{
		"houseId":   houseID.Int64,
		"houseCode": houseCode.String,
		"qrCode":    qrCode.String,
	}), nil
}

// HouseholdFilter narrows the list; empty strings and nil ward mean no
// filter.
type HouseholdFilter struct {
	Ward     *int64
	Zone     string
	QRStatus string
	Search   string
}

func (s *HouseholdService) List(ctx context.Context, userID uint64, f HouseholdFilter, page, pageSize int) (Result, error) {
	var (
		households []map[string]any
		total      sql.NullInt64
		meta       procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_households_list(?, ?, ?, ?, ?, ?, ?, @total, @error, @msg)`,
		[]any{userID, page, pageSize, f.Ward, f.Zone, f.QRStatus, f.Search},
		func(rows *sql.Rows) error {
			var err error
			households, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @total, @error, @msg`,
		&total, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve households")), nil
	}
	return OK("Households retrieved successfully", map[string]any{
		"households": households,
		"pagination": NewPagination(page, pageSize, total.Int64),
	}), nil
}

// ByID fetches one household. A nonzero procedure code here means the house
// does not exist or the caller cannot see it; the handler maps that to 404.
func (s *HouseholdService) ByID(ctx context.Context, userID uint64, houseID int64) (Result, error) {
	var (
		houses []map[string]any
		meta   procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_household_by_id(?, ?, @error, @msg)`,
		[]any{houseID, userID},
		func(rows *sql.Rows) error {
			var err error
			houses, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @error, @msg`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() || len(houses) == 0 {
		return Fail(meta.Code(), meta.Text("Household not found")), nil
	}
	return OK("Household retrieved successfully", map[string]any{"household": houses[0]}), nil
}
