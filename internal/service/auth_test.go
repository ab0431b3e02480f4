package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/sswm/waste-admin-api/internal/utils"
)

func newAuthMock(t *testing.T) (*AuthService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	svc := NewAuthService(db, "test-secret", time.Hour, 2*time.Hour)
	return svc, mock, func() { db.Close() }
}

func expectLoginLookup(mock sqlmock.Sqlmock, username string, row []driverValue) {
	mock.ExpectExec(regexp.QuoteMeta(`CALL sp_login_user(`)).
		WithArgs(username).
		WillReturnResult(sqlmock.NewResult(0, 0))
	rows := sqlmock.NewRows([]string{
		"@user_id", "@password_hash", "@role_name", "@full_name", "@email",
		"@state_id", "@district_id", "@block_id", "@gp_id", "@municipality_id",
		"@is_active", "@error", "@msg",
	}).AddRow(row[0], row[1], row[2], row[3], row[4], row[5], row[6], row[7], row[8], row[9], row[10], row[11], row[12])
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT @user_id, @password_hash`)).WillReturnRows(rows)
}

type driverValue = any

func TestLoginSuccess(t *testing.T) {
	svc, mock, done := newAuthMock(t)
	defer done()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	expectLoginLookup(mock, "badmin", []driverValue{
		42, string(hash), "block_admin", "Block Admin", "admin@example.com",
		1, 2, 3, nil, nil, true, 0, "Success",
	})
	mock.ExpectExec(regexp.QuoteMeta(`CALL sp_save_refresh_token(`)).
		WithArgs(uint64(42), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT @error, @msg`)).
		WillReturnRows(sqlmock.NewRows([]string{"@error", "@msg"}).AddRow(0, "Saved"))
	mock.ExpectExec(regexp.QuoteMeta(`CALL sp_update_last_login(`)).
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT @error, @msg`)).
		WillReturnRows(sqlmock.NewRows([]string{"@error", "@msg"}).AddRow(0, "Updated"))

	res, err := svc.Login(context.Background(), "badmin", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.ErrorCode != 0 {
		t.Fatalf("ErrorCode = %d, message %q", res.ErrorCode, res.Message)
	}
	data := res.Data.(LoginData)
	if data.UserID != 42 || data.Role != "block_admin" {
		t.Errorf("unexpected identity: %+v", data)
	}
	if data.AccessToken == "" || data.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
	if data.Jurisdiction.BlockID == nil || *data.Jurisdiction.BlockID != 3 {
		t.Errorf("BlockID = %v, want 3", data.Jurisdiction.BlockID)
	}
	if data.Jurisdiction.GPID != nil {
		t.Errorf("GPID = %v, want nil", data.Jurisdiction.GPID)
	}
	claims, err := utils.VerifyAccess("test-secret", data.AccessToken)
	if err != nil {
		t.Fatalf("issued access token does not verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("claims.UserID = %d", claims.UserID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock, done := newAuthMock(t)
	defer done()

	hash, _ := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.MinCost)
	expectLoginLookup(mock, "badmin", []driverValue{
		42, string(hash), "block_admin", "Block Admin", "admin@example.com",
		1, 2, 3, nil, nil, true, 0, "Success",
	})

	res, err := svc.Login(context.Background(), "badmin", "wrong-pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.ErrorCode == 0 {
		t.Fatal("expected failure for wrong password")
	}
	if res.Message != "Invalid username or password" {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, mock, done := newAuthMock(t)
	defer done()

	expectLoginLookup(mock, "ghost", []driverValue{
		nil, nil, nil, nil, nil,
		nil, nil, nil, nil, nil,
		nil, 1, "Invalid username or password",
	})

	res, err := svc.Login(context.Background(), "ghost", "whatever")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.ErrorCode == 0 {
		t.Fatal("expected failure for unknown user")
	}
	// identical message to the wrong-password path
	if res.Message != "Invalid username or password" {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	svc, mock, done := newAuthMock(t)
	defer done()

	refresh, err := utils.NewRefreshToken("test-secret", 42, time.Hour)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta(`CALL sp_verify_refresh_token(`)).
		WithArgs(refresh.Token).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT @user_id, @role_name, @full_name, @is_valid, @error, @msg`)).
		WillReturnRows(sqlmock.NewRows([]string{"@user_id", "@role_name", "@full_name", "@is_valid", "@error", "@msg"}).
			AddRow(42, "block_admin", "Block Admin", true, 0, "Valid"))

	res, err := svc.Refresh(context.Background(), refresh.Token)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if res.ErrorCode != 0 {
		t.Fatalf("ErrorCode = %d, message %q", res.ErrorCode, res.Message)
	}
	data := res.Data.(RefreshData)
	claims, err := utils.VerifyAccess("test-secret", data.AccessToken)
	if err != nil {
		t.Fatalf("minted token does not verify: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "block_admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestRefreshAfterLogoutFails(t *testing.T) {
	svc, mock, done := newAuthMock(t)
	defer done()

	refresh, err := utils.NewRefreshToken("test-secret", 42, time.Hour)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta(`CALL sp_logout_user(`)).
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT @error, @msg`)).
		WillReturnRows(sqlmock.NewRows([]string{"@error", "@msg"}).AddRow(0, "Logged out successfully"))

	// The revoked row makes the store report the token as no longer valid.
	mock.ExpectExec(regexp.QuoteMeta(`CALL sp_verify_refresh_token(`)).
		WithArgs(refresh.Token).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT @user_id, @role_name, @full_name, @is_valid, @error, @msg`)).
		WillReturnRows(sqlmock.NewRows([]string{"@user_id", "@role_name", "@full_name", "@is_valid", "@error", "@msg"}).
			AddRow(nil, nil, nil, false, 1, "Invalid or expired refresh token"))

	out, err := svc.Logout(context.Background(), 42)
	if err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if out.ErrorCode != 0 {
		t.Fatalf("Logout ErrorCode = %d, message %q", out.ErrorCode, out.Message)
	}

	res, err := svc.Refresh(context.Background(), refresh.Token)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if res.ErrorCode == 0 {
		t.Fatal("expected refresh with a revoked token to fail")
	}
	if res.Message != "Invalid or expired refresh token" {
		t.Errorf("Message = %q", res.Message)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRefreshRejectsForgedToken(t *testing.T) {
	svc, mock, done := newAuthMock(t)
	defer done()

	// Signed with a different secret; the store may still have a row for it,
	// but signature verification must reject it.
	forged, err := utils.NewRefreshToken("other-secret", 42, time.Hour)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	mock.ExpectExec(regexp.QuoteMeta(`CALL sp_verify_refresh_token(`)).
		WithArgs(forged.Token).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT @user_id, @role_name, @full_name, @is_valid, @error, @msg`)).
		WillReturnRows(sqlmock.NewRows([]string{"@user_id", "@role_name", "@full_name", "@is_valid", "@error", "@msg"}).
			AddRow(42, "block_admin", "Block Admin", true, 0, "Valid"))

	res, err := svc.Refresh(context.Background(), forged.Token)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if res.ErrorCode == 0 {
		t.Fatal("expected forged refresh token to be rejected")
	}
}
