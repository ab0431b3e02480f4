package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func roleEcho(setRole string) *echo.Echo {
	e := echo.New()
	seed := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if setRole != "" {
				c.Set("role", setRole)
			}
			return next(c)
		}
	}
	e.GET("/district", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, seed, RequireRole("district_admin"))
	e.GET("/gp", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, seed, RequireRole("gp_admin", "municipality_admin"))
	return e
}

func get(e *echo.Echo, path string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	if code := get(roleEcho("district_admin"), "/district"); code != http.StatusOK {
		t.Errorf("district_admin on /district = %d, want 200", code)
	}
	if code := get(roleEcho("municipality_admin"), "/gp"); code != http.StatusOK {
		t.Errorf("municipality_admin on /gp = %d, want 200", code)
	}
}

func TestRequireRoleForbidsOtherRole(t *testing.T) {
	if code := get(roleEcho("block_admin"), "/district"); code != http.StatusForbidden {
		t.Errorf("block_admin on /district = %d, want 403", code)
	}
	if code := get(roleEcho("collector"), "/gp"); code != http.StatusForbidden {
		t.Errorf("collector on /gp = %d, want 403", code)
	}
}

func TestRequireRoleUnauthenticatedIs401(t *testing.T) {
	// No role in context means the request never went through Auth.
	if code := get(roleEcho(""), "/district"); code != http.StatusUnauthorized {
		t.Errorf("no role on /district = %d, want 401", code)
	}
}
