package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

// Me reads the identity straight from the verified token; no store round
// trip and a flat role string, unlike the resolved /profile view.
func TestMeReturnsClaimsOnly(t *testing.T) {
	h := NewAuthHandler(nil, time.Hour, 2*time.Hour, false)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(42))
	c.Set("role", "gp_admin")
	c.Set("email", "gp@example.com")

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var env struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !env.Success {
		t.Error("success = false")
	}
	if env.Data["userId"] != float64(42) {
		t.Errorf("userId = %v", env.Data["userId"])
	}
	if env.Data["role"] != "gp_admin" {
		t.Errorf("role = %v, want flat string", env.Data["role"])
	}
	if env.Data["email"] != "gp@example.com" {
		t.Errorf("email = %v", env.Data["email"])
	}
	if len(env.Data) != 3 {
		t.Errorf("data has %d keys, want exactly userId, role, email", len(env.Data))
	}
}
