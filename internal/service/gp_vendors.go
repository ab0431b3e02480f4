package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
)

// GPVendorService serves the vendor coordination screen.
type GPVendorService struct{ db *sql.DB }

func NewGPVendorService(db *sql.DB) *GPVendorService { return &GPVendorService{db: db} }

type VendorStats struct {
	TotalVendors    int64 `json:"totalVendors"`
	ActiveVendors   int64 `json:"activeVendors"`
	Onboarding      int64 `json:"onboarding"`
	InactiveVendors int64 `json:"inactiveVendors"`
}

func (s *GPVendorService) Stats(ctx context.Context, userID uint64) (Result, error) {
	var (
		total, active, onboarding, inactive sql.NullInt64
		meta                                procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_vendor_stats(?, @total, @active, @onboarding, @inactive, @error, @msg)`,
		[]any{userID},
		`SELECT @total, @active, @onboarding, @inactive, @error, @msg`,
		&total, &active, &onboarding, &inactive, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve vendor statistics")), nil
	}
	return OK("Vendor statistics retrieved successfully", VendorStats{
		TotalVendors:    total.Int64,
		ActiveVendors:   active.Int64,
		Onboarding:      onboarding.Int64,
		InactiveVendors: inactive.Int64,
	}), nil
}

func (s *GPVendorService) List(ctx context.Context, userID uint64, search string) (Result, error) {
	var (
		vendors []map[string]any
		meta    procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_vendors_list(?, ?, @error, @msg)`,
		[]any{userID, search},
		func(rows *sql.Rows) error {
			var err error
			vendors, err = procedure.CollectRows(rows)
			return err
		},
		`SELECT @error, @msg`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve vendors")), nil
	}
	return OK("Vendors retrieved successfully", map[string]any{"vendors": vendors}), nil
}
