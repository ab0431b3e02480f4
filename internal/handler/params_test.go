package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func ctxWithQuery(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestPageParamsDefaults(t *testing.T) {
	page, size, err := pageParams(ctxWithQuery(""), 15)
	if err != nil {
		t.Fatalf("pageParams: %v", err)
	}
	if page != 1 || size != 15 {
		t.Errorf("got page=%d size=%d, want 1/15", page, size)
	}
}

func TestPageParamsExplicit(t *testing.T) {
	page, size, err := pageParams(ctxWithQuery("page=3&pageSize=25"), 15)
	if err != nil {
		t.Fatalf("pageParams: %v", err)
	}
	if page != 3 || size != 25 {
		t.Errorf("got page=%d size=%d, want 3/25", page, size)
	}
}

func TestPageParamsRejectsGarbage(t *testing.T) {
	for _, q := range []string{"page=abc", "pageSize=xyz", "page=0", "pageSize=-5"} {
		if _, _, err := pageParams(ctxWithQuery(q), 10); err == nil {
			t.Errorf("query %q: expected error", q)
		}
	}
}

func TestOptionalID(t *testing.T) {
	id, err := optionalID(ctxWithQuery("blockId=12"), "blockId")
	if err != nil || id == nil || *id != 12 {
		t.Errorf("got id=%v err=%v, want 12", id, err)
	}
	id, err = optionalID(ctxWithQuery(""), "blockId")
	if err != nil || id != nil {
		t.Errorf("absent param: got id=%v err=%v, want nil/nil", id, err)
	}
	if _, err := optionalID(ctxWithQuery("blockId=foo"), "blockId"); err == nil {
		t.Error("expected error for non-numeric id")
	}
}

func TestOptionalString(t *testing.T) {
	if s := optionalString(ctxWithQuery("date=2026-08-01"), "date"); s == nil || *s != "2026-08-01" {
		t.Errorf("got %v", s)
	}
	if s := optionalString(ctxWithQuery(""), "date"); s != nil {
		t.Errorf("absent param: got %v, want nil", s)
	}
}
