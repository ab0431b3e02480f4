package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/handler"
	"github.com/sswm/waste-admin-api/internal/middleware"
)

// RegisterAuth registers the /api/auth surface. Login and refresh are
// public; logout and the profile endpoints require a valid access token.
func RegisterAuth(e *echo.Echo, h *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/login", h.Login)
	g.POST("/refresh", h.Refresh)

	authed := g.Group("", middleware.Auth(jwtSecret))
	authed.POST("/logout", h.Logout)
	authed.GET("/me", h.Me)
	authed.GET("/profile", h.Profile)
}
