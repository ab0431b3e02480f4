package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/service"
)

func runRespond(t *testing.T, fn func(echo.Context) error) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := fn(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	return rec, env
}

func TestRespondSuccess(t *testing.T) {
	rec, env := runRespond(t, func(c echo.Context) error {
		return respond(c, service.OK("done", map[string]any{"x": 1}), nil)
	})
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if !env.Success || env.Message != "done" || env.StatusCode != http.StatusOK {
		t.Errorf("envelope = %+v", env)
	}
	if env.Data == nil {
		t.Error("expected data")
	}
}

func TestRespondBusinessFailureIs400(t *testing.T) {
	rec, env := runRespond(t, func(c echo.Context) error {
		return respond(c, service.Fail(3, "No block assigned"), nil)
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if env.Success || env.Message != "No block assigned" || env.StatusCode != http.StatusBadRequest {
		t.Errorf("envelope = %+v", env)
	}
	if env.Data != nil {
		t.Error("failure envelope must not carry data")
	}
}

func TestRespondFaultIsGeneric500(t *testing.T) {
	rec, env := runRespond(t, func(c echo.Context) error {
		return respond(c, service.Result{}, errors.New("dial tcp: connection refused"))
	})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if env.Message != "Internal server error" {
		t.Errorf("fault detail leaked to client: %q", env.Message)
	}
}

func TestRespondAuthFailureIs401(t *testing.T) {
	rec, _ := runRespond(t, func(c echo.Context) error {
		return respondAuth(c, service.Fail(1, "Invalid username or password"), nil)
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRespondCreated(t *testing.T) {
	rec, _ := runRespond(t, func(c echo.Context) error {
		return respondCreated(c, service.OK("Vehicle added successfully", map[string]any{"vehicleId": int64(5)}), nil)
	})
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}

func TestRespondLookupFailureIs404(t *testing.T) {
	rec, _ := runRespond(t, func(c echo.Context) error {
		return respondLookup(c, service.Fail(1, "Household not found"), nil)
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
