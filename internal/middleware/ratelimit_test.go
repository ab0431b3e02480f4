package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/config"
)

func rateKeyForRequest(t *testing.T, cfg config.RateLimitConfig, setup func(*http.Request)) string {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/list", nil)
	setup(req)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/vehicles/list")
	return buildRateKey(cfg, c)
}

// The limiter runs ahead of token verification, so buckets are separated by
// the raw credential rather than the decoded user id.
func TestRateKeySeparatesCallersByCredential(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user_route"}

	alice := rateKeyForRequest(t, cfg, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer token-alice")
	})
	bob := rateKeyForRequest(t, cfg, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer token-bob")
	})
	if alice == bob {
		t.Errorf("distinct credentials share bucket key %q", alice)
	}

	again := rateKeyForRequest(t, cfg, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer token-alice")
	})
	if alice != again {
		t.Errorf("same credential produced different keys: %q vs %q", alice, again)
	}
}

func TestRateKeyUsesLoginCookie(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user"}

	cookie := rateKeyForRequest(t, cfg, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
	})
	if strings.Contains(cookie, "anon") {
		t.Errorf("cookie credential fell back to anon: %q", cookie)
	}

	anon := rateKeyForRequest(t, cfg, func(*http.Request) {})
	if !strings.Contains(anon, "anon") {
		t.Errorf("credential-less request should be anon, got %q", anon)
	}
	if cookie == anon {
		t.Error("cookie-bearing and anonymous requests share a bucket")
	}
}
