package obs

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func runThroughMetrics(t *testing.T, path string, h echo.HandlerFunc) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(path)
	_ = Metrics()(h)(c)
}

// Handler errors are written by the framework after the middleware unwinds,
// so the status must come from the error itself, not the response.
func TestMetricsCountsHandlerErrorStatus(t *testing.T) {
	runThroughMetrics(t, "/errs/missing", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "no such row")
	})
	if got := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/errs/missing", "404")); got != 1 {
		t.Errorf("404 count = %v, want 1", got)
	}

	runThroughMetrics(t, "/errs/fault", func(echo.Context) error {
		return errors.New("backend unavailable")
	})
	if got := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/errs/fault", "500")); got != 1 {
		t.Errorf("500 count = %v, want 1", got)
	}
}

func TestMetricsCountsWrittenStatus(t *testing.T) {
	runThroughMetrics(t, "/errs/ok", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	if got := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/errs/ok", "204")); got != 1 {
		t.Errorf("204 count = %v, want 1", got)
	}
}
