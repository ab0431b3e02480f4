package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and a database round trip.
type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler { return &HealthHandler{db: db} }

func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	overall, dbStatus := "ok", "up"
	status := http.StatusOK
	if err := h.db.PingContext(ctx); err != nil {
		overall, dbStatus = "degraded", "down"
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":   overall,
		"database": dbStatus,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
