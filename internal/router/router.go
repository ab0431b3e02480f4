package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/handler"
	"github.com/sswm/waste-admin-api/internal/obs"
)

// Deps collects everything the router mounts.
type Deps struct {
	JWTSecret string
	Auth      *handler.AuthHandler
	Health    *handler.HealthHandler
	Block     BlockHandlers
	District  DistrictHandlers
	GP        GPHandlers
}

// Register mounts the full API surface: the ops endpoints, the auth
// lifecycle and the three role-scoped tiers.
func Register(e *echo.Echo, d Deps) {
	e.GET("/health", d.Health.Health)
	e.GET("/metrics", obs.Handler())

	RegisterAuth(e, d.Auth, d.JWTSecret)
	RegisterBlock(e, d.Block, d.JWTSecret)
	RegisterDistrict(e, d.District, d.JWTSecret)
	RegisterGP(e, d.GP, d.JWTSecret)
}
