package utils

import (
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken(testSecret, 42, "block_admin", "admin@example.com", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	claims, err := VerifyAccess(testSecret, tok.Token)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != "block_admin" {
		t.Errorf("Role = %q, want block_admin", claims.Role)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.ID == "" {
		t.Error("expected a jti")
	}
}

func TestVerifyAccessRejectsRefreshToken(t *testing.T) {
	tok, err := NewRefreshToken(testSecret, 42, time.Hour)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if _, err := VerifyAccess(testSecret, tok.Token); err == nil {
		t.Fatal("expected refresh token to be rejected as access token")
	}
}

func TestVerifyRefreshRejectsAccessToken(t *testing.T) {
	tok, err := NewAccessToken(testSecret, 42, "collector", "", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, err := VerifyRefresh(testSecret, tok.Token); err == nil {
		t.Fatal("expected access token to be rejected as refresh token")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tok, err := NewAccessToken(testSecret, 1, "gp_admin", "", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, err := VerifyAccess("other-secret", tok.Token); err == nil {
		t.Fatal("expected signature mismatch to be rejected")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tok, err := NewAccessToken(testSecret, 1, "gp_admin", "", -time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, err := VerifyAccess(testSecret, tok.Token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
