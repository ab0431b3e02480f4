package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/sswm/waste-admin-api/internal/procedure"
	"github.com/sswm/waste-admin-api/internal/utils"
)

// AuthService orchestrates the session lifecycle: credential check, token
// issuance, refresh redemption, revocation and profile assembly.  The only
// persisted session state is the refresh-token row owned by the credential
// procedures.
type AuthService struct {
	db         *sql.DB
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(db *sql.DB, secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{db: db, secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Jurisdiction is the administrative chain an identity is bound to.  Only
// the prefix consistent with the role is populated; GP and municipality are
// mutually exclusive.
type Jurisdiction struct {
	StateID        *int64 `json:"stateId"`
	DistrictID     *int64 `json:"districtId"`
	BlockID        *int64 `json:"blockId"`
	GPID           *int64 `json:"gpId"`
	MunicipalityID *int64 `json:"municipalityId"`
}

// LoginData is returned on successful login: identity summary, jurisdiction
// for frontend routing, and both tokens.
type LoginData struct {
	UserID       uint64       `json:"userId"`
	Username     string       `json:"username"`
	FullName     string       `json:"fullName"`
	Email        string       `json:"email"`
	Role         string       `json:"role"`
	Jurisdiction Jurisdiction `json:"jurisdiction"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// Login validates credentials against sp_login_user and issues the token
// pair.  An unknown username and a wrong password produce the identical
// failure so callers cannot enumerate accounts.  The refresh-token row must
// persist for the login to succeed; the last-login touch is best-effort.
func (s *AuthService) Login(ctx context.Context, username, password string) (Result, error) {
	var (
		userID     sql.NullInt64
		hash       sql.NullString
		role       sql.NullString
		fullName   sql.NullString
		email      sql.NullString
		stateID    sql.NullInt64
		districtID sql.NullInt64
		blockID    sql.NullInt64
		gpID       sql.NullInt64
		munID      sql.NullInt64
		isActive   sql.NullBool
		meta       procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_login_user(?, @user_id, @password_hash, @role_name, @full_name, @email, @state_id, @district_id, @block_id, @gp_id, @municipality_id, @is_active, @error, @msg)`,
		[]any{username},
		`SELECT @user_id, @password_hash, @role_name, @full_name, @email, @state_id, @district_id, @block_id, @gp_id, @municipality_id, @is_active, @error, @msg`,
		&userID, &hash, &role, &fullName, &email,
		&stateID, &districtID, &blockID, &gpID, &munID,
		&isActive, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Invalid username or password")), nil
	}
	// Same failure as "not found" above: no username enumeration.
	if !utils.VerifyPassword(hash.String, password) {
		return Fail(1, "Invalid username or password"), nil
	}

	uid := uint64(userID.Int64)
	access, err := utils.NewAccessToken(s.secret, uid, role.String, email.String, s.accessTTL)
	if err != nil {
		return Result{}, err
	}
	refresh, err := utils.NewRefreshToken(s.secret, uid, s.refreshTTL)
	if err != nil {
		return Result{}, err
	}

	var saveMeta procedure.Meta
	if err := procedure.Exec(ctx, s.db,
		`CALL sp_save_refresh_token(?, ?, ?, @error, @msg)`,
		[]any{uid, refresh.Token, refresh.Exp},
		`SELECT @error, @msg`,
		&saveMeta.ErrorCode, &saveMeta.Message); err != nil {
		return Result{}, err
	}

	// Best-effort: a failed last-login touch never fails the login.
	var touchMeta procedure.Meta
	_ = procedure.Exec(ctx, s.db,
		`CALL sp_update_last_login(?, @error, @msg)`,
		[]any{uid},
		`SELECT @error, @msg`,
		&touchMeta.ErrorCode, &touchMeta.Message)

	return OK("Login successful", LoginData{
		UserID:   uid,
		Username: username,
		FullName: fullName.String,
		Email:    email.String,
		Role:     role.String,
		Jurisdiction: Jurisdiction{
			StateID:        nullableID(stateID),
			DistrictID:     nullableID(districtID),
			BlockID:        nullableID(blockID),
			GPID:           nullableID(gpID),
			MunicipalityID: nullableID(munID),
		},
		AccessToken:  access.Token,
		RefreshToken: refresh.Token,
	}), nil
}

// RefreshData carries the newly minted access token.  The refresh token is
// not rotated and its lifetime is never extended.
type RefreshData struct {
	AccessToken string `json:"accessToken"`
}

// Refresh redeems a refresh token for a new access token.  Both the stored
// record (sp_verify_refresh_token) and the token's own signature must agree
// before anything is issued.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (Result, error) {
	var (
		userID   sql.NullInt64
		role     sql.NullString
		fullName sql.NullString
		isValid  sql.NullBool
		meta     procedure.Meta
	)
	err := procedure.Exec(ctx, s.db,
		`CALL sp_verify_refresh_token(?, @user_id, @role_name, @full_name, @is_valid, @error, @msg)`,
		[]any{refreshToken},
		`SELECT @user_id, @role_name, @full_name, @is_valid, @error, @msg`,
		&userID, &role, &fullName, &isValid, &meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() || !isValid.Valid || !isValid.Bool {
		return Fail(1, meta.Text("Invalid or expired refresh token")), nil
	}
	if _, err := utils.VerifyRefresh(s.secret, refreshToken); err != nil {
		return Fail(1, "Invalid refresh token signature"), nil
	}

	access, err := utils.NewAccessToken(s.secret, uint64(userID.Int64), role.String, "", s.accessTTL)
	if err != nil {
		return Result{}, err
	}
	return OK("Token refreshed successfully", RefreshData{AccessToken: access.Token}), nil
}

// Logout revokes the stored refresh token(s) for the identity.  Revoking an
// already-revoked session is not an error; the procedure is idempotent.
func (s *AuthService) Logout(ctx context.Context, userID uint64) (Result, error) {
	var meta procedure.Meta
	err := procedure.Exec(ctx, s.db,
		`CALL sp_logout_user(?, @error, @msg)`,
		[]any{userID},
		`SELECT @error, @msg`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() {
		return Fail(meta.Code(), meta.Text("Logout failed")), nil
	}
	return OK(meta.Text("Logged out successfully"), nil), nil
}

// ProfileRole names the identity's role for display.
type ProfileRole struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// JurisdictionNames is the resolved (human readable) jurisdiction chain.
type JurisdictionNames struct {
	StateName     string `json:"stateName,omitempty"`
	DistrictName  string `json:"districtName,omitempty"`
	BlockName     string `json:"blockName,omitempty"`
	LocalBodyName string `json:"localBodyName,omitempty"`
	LocalBodyType string `json:"localBodyType,omitempty"`
}

// CollectorDetails is the collector-only attachment of a profile.
type CollectorDetails struct {
	ID            uint64  `json:"id"`
	Code          string  `json:"code"`
	Status        string  `json:"status"`
	Type          string  `json:"type"`
	Rating        float64 `json:"rating"`
	VehicleNumber string  `json:"vehicleNumber,omitempty"`
	RouteName     string  `json:"routeName,omitempty"`
}

// Profile is the detailed identity view.  CollectorDetails is nil for every
// role except collector; the variant is discriminated by role, not schema.
type Profile struct {
	ID               uint64            `json:"id"`
	Username         string            `json:"username"`
	FullName         string            `json:"fullName"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone,omitempty"`
	EmployeeID       string            `json:"employeeId,omitempty"`
	Role             ProfileRole       `json:"role"`
	Status           string            `json:"status"`
	Jurisdiction     JurisdictionNames `json:"jurisdiction"`
	CollectorDetails *CollectorDetails `json:"collectorDetails,omitempty"`
}

// GetProfile assembles the detailed profile from sp_get_user_profile.
func (s *AuthService) GetProfile(ctx context.Context, userID uint64) (Result, error) {
	var (
		profile *Profile
		meta    procedure.Meta
	)
	err := procedure.Query(ctx, s.db,
		`CALL sp_get_user_profile(?, @error, @msg)`,
		[]any{userID},
		func(rows *sql.Rows) error {
			if !rows.Next() {
				return nil
			}
			var (
				id                                       uint64
				username, fullName                       string
				email, phone, employeeID                 sql.NullString
				roleName, roleDisplay                    sql.NullString
				isActive                                 bool
				stateName, districtName, blockName       sql.NullString
				localBodyName, localBodyType             sql.NullString
				collectorID                              sql.NullInt64
				collectorCode, collectorStatus, empType  sql.NullString
				rating                                   sql.NullFloat64
				vehicleNumber, routeName                 sql.NullString
			)
			if err := rows.Scan(&id, &username, &fullName, &email, &phone, &employeeID,
				&roleName, &roleDisplay, &isActive,
				&stateName, &districtName, &blockName, &localBodyName, &localBodyType,
				&collectorID, &collectorCode, &collectorStatus, &empType,
				&rating, &vehicleNumber, &routeName); err != nil {
				return err
			}
			status := "inactive"
			if isActive {
				status = "active"
			}
			p := &Profile{
				ID:         id,
				Username:   username,
				FullName:   fullName,
				Email:      email.String,
				Phone:      phone.String,
				EmployeeID: employeeID.String,
				Role:       ProfileRole{Name: roleName.String, DisplayName: roleDisplay.String},
				Status:     status,
				Jurisdiction: JurisdictionNames{
					StateName:     stateName.String,
					DistrictName:  districtName.String,
					BlockName:     blockName.String,
					LocalBodyName: localBodyName.String,
					LocalBodyType: localBodyType.String,
				},
			}
			if collectorID.Valid {
				p.CollectorDetails = &CollectorDetails{
					ID:            uint64(collectorID.Int64),
					Code:          collectorCode.String,
					Status:        collectorStatus.String,
					Type:          empType.String,
					Rating:        rating.Float64,
					VehicleNumber: vehicleNumber.String,
					RouteName:     routeName.String,
				}
			}
			profile = p
			return nil
		},
		`SELECT @error, @msg`,
		&meta.ErrorCode, &meta.Message)
	if err != nil {
		return Result{}, err
	}
	if !meta.OK() || profile == nil {
		return Fail(meta.Code(), meta.Text("Failed to retrieve profile")), nil
	}
	return OK("Profile retrieved successfully", profile), nil
}

func nullableID(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}
