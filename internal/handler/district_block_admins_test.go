package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

// putUpdateBlock exercises only the validation layer; requests that fail it
// never reach the service.
func putUpdateBlock(t *testing.T, id, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	h := NewDistrictBlockAdminHandler(nil)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/district/block-admins/update/"+id, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	if err := h.UpdateBlock(c); err != nil {
		t.Fatalf("UpdateBlock returned error: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return rec, env
}

func TestUpdateBlockRejectsEmptyBody(t *testing.T) {
	rec, env := putUpdateBlock(t, "3", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Message != "Missing required fields" {
		t.Errorf("message = %q, want %q", env.Message, "Missing required fields")
	}
}

func TestUpdateBlockRejectsPartialIdentity(t *testing.T) {
	rec, env := putUpdateBlock(t, "3", `{"blockName": "North Block"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Message != "Missing required fields" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestUpdateBlockRejectsBadID(t *testing.T) {
	rec, _ := putUpdateBlock(t, "abc", `{"blockName": "North Block", "adminFullName": "A", "adminEmail": "a@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
