package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/utils"
)

const testSecret = "middleware-test-secret"

func newAuthEcho() *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"userId": c.Get("user_id"),
			"role":   c.Get("role"),
		})
	}, Auth(testSecret))
	return e
}

func TestAuthAcceptsBearerToken(t *testing.T) {
	e := newAuthEcho()
	tok, err := utils.NewAccessToken(testSecret, 9, "district_admin", "", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestAuthAcceptsCookieToken(t *testing.T) {
	e := newAuthEcho()
	tok, err := utils.NewAccessToken(testSecret, 9, "gp_admin", "", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: tok.Token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestAuthRejectsMissingToken(t *testing.T) {
	e := newAuthEcho()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthRejectsRefreshToken(t *testing.T) {
	e := newAuthEcho()
	tok, err := utils.NewRefreshToken(testSecret, 9, time.Hour)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401: refresh tokens must not grant access", rec.Code)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	e := newAuthEcho()
	tok, err := utils.NewAccessToken(testSecret, 9, "block_admin", "", -time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
