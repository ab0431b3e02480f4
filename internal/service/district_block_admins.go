package service

import (
	"context"
	"database/sql"

	"github.com/sswm/waste-admin-api/internal/procedure"
	"github.com/sswm/waste-admin-api/internal/utils"
)

// DistrictBlockAdminService manages blocks and their admin accounts from the
// district tier.
type DistrictBlockAdminService struct {
	db         *sql.DB
	bcryptCost int
}

func NewDistrictBlockAdminService(db *sql.DB, bcryptCost int) *DistrictBlockAdminService {
	return &DistrictBlockAdminService{db: db, bcryptCost: bcryptCost}
}

type BlockAdminStats struct {
	TotalBlocks  int64 `json:"totalBlocks"`
	ActiveBlocks int64 `json:"activeBlocks"`
	TotalAdmins  int64 `json:"totalAdmins"`
	ActiveAdmins int64 `json:"activeAdmins"`
}

func (s *DistrictBlockAdminService) Stats(ctx context.Context, userID uint64) (Result, error) {
	var (
		blocks, active, admins, activeAdmins sql.NullInt64
		meta                                 procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_get_district_block_admins_stats(?, @total, @active, @total_admins, @active_admins, @error, @msg)`,
		[]any{userID},
		`SELECT @total, @active, @total_admins, @active_admins, @error, @msg`,
		&blocks, &active, &admins, &activeAdmins, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to retrieve block admin statistics")), nil
	}
	return OK("Block admin statistics retrieved successfully", BlockAdminStats{
		TotalBlocks:  blocks.Int64,
		ActiveBlocks: active.Int64,
		TotalAdmins:  admins.Int64,
		ActiveAdmins: activeAdmins.Int64,
	}), nil
}

func (s *DistrictBlockAdminService) List(ctx context.Context, userID uint64, search string, page, pageSize int) (Result, error) {
	var (
		items []map[string]any
		total sql.NullInt64
		meta  procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_district_block_admins_list(?, ?, ?, ?, @total, @error, @msg)`,
		[]any{userID, search, page, pageSize},
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
		return Fail(meta.Code(), meta.Text("Failed to retrieve block admins")), nil
	}
	return OK("Block admins retrieved successfully", map[string]any{
		"blockAdmins": items,
		"pagination":  NewPagination(page, pageSize, total.Int64),
	}), nil
}

// AddBlockInput carries the create-block form. The admin account is created
// inside the same procedure call as the block itself.
type AddBlockInput struct {
	BlockName     string
	AdminFullName string
	AdminUsername string
	AdminEmail    string
	AdminPhone    string
	AdminPassword string
}

func (s *DistrictBlockAdminService) AddBlock(ctx context.Context, userID uint64, in AddBlockInput) (Result, error) {
	hash, err := utils.HashPassword(in.AdminPassword, s.bcryptCost)
	if err != nil {
		return Result{}, err
	}
	var (
		blockID, adminID sql.NullInt64
		blockCode        sql.NullString
		meta             procedure.Meta
	)
	err = procedure.Exec(ctx, s.db,
		`CALL sp_add_block_with_admin(?, ?, ?, ?, ?, ?, ?, @block_id, @block_code, @admin_id, @error, @msg)`,
		[]any{userID, in.BlockName, in.AdminFullName, in.AdminUsername, in.AdminEmail, in.AdminPhone, hash},
		`SELECT @block_id, @block_code, @admin_id, @error, @msg`,
		&blockID, &blockCode, &adminID, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to add block")), nil
	}
	return OK("Block added successfully", map[string]any{
		"blockId":   blockID.Int64,
		"blockCode": blockCode.String,
		"adminId":   adminID.Int64,
	}), nil
}

// UpdateBlockInput is a partial update; nil fields are passed as NULL and the
// procedure keeps the current values.
type UpdateBlockInput struct {
	BlockName     *string
	AdminFullName *string
	AdminEmail    *string
	AdminPhone    *string
}

func (s *DistrictBlockAdminService) UpdateBlock(ctx context.Context, userID uint64, blockID int64, in UpdateBlockInput) (Result, error) {
	var meta procedure.Meta
	err := procedure.Exec(ctx, s.db,
		`CALL sp_update_block(?, ?, ?, ?, ?, ?, @error, @msg)`,
		[]any{userID, blockID, in.BlockName, in.AdminFullName, in.AdminEmail, in.AdminPhone},
		`SELECT @error, @msg`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Failed to update block")), nil
	}
	return OK("Block updated successfully", nil), nil
}
