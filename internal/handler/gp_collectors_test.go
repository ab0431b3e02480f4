package handler

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/sswm/waste-admin-api/internal/service"
)

// Passwords are checked for presence only; length policy belongs to the
// frontend.
func TestAddCollectorAcceptsShortPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`CALL sp_add_gp_collector(`)).
		WithArgs(uint64(7), "Ravi K", "ravik", "", "", sqlmock.AnyArg(), nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT @collector_id, @error, @msg`)).
		WillReturnRows(sqlmock.NewRows([]string{"@collector_id", "@error", "@msg"}).
			AddRow(11, 0, "Collector added successfully"))

	h := NewGPCollectorHandler(service.NewGPCollectorService(db, bcrypt.MinCost))
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/gp/collectors/add",
		strings.NewReader(`{"fullName": "Ravi K", "username": "ravik", "password": "pin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(7))

	if err := h.Add(c); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestAddCollectorRequiresPassword(t *testing.T) {
	h := NewGPCollectorHandler(nil)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/gp/collectors/add",
		strings.NewReader(`{"fullName": "Ravi K", "username": "ravik"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Add(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
