package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sswm/waste-admin-api/internal/utils"
)

// Auth returns an Echo middleware that validates the access token and
// injects the caller's identity into the request context. The token comes
// from the Authorization header ("Bearer <token>") or, for browser clients,
// from the httpOnly "token" cookie set at login. Verification is stateless;
// no store lookup happens per request. Handlers read the identity via
// c.Get("user_id"), c.Get("role") and c.Get("email").
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := ""
			if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				raw = strings.TrimPrefix(auth, "Bearer ")
			} else if ck, err := c.Cookie("token"); err == nil {
				raw = ck.Value
			}
			if raw == "" {
				return unauthorized(c, "Authentication required")
			}
			claims, err := utils.VerifyAccess(secret, raw)
			if err != nil {
				return unauthorized(c, "Invalid or expired token")
			}
			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
			c.Set("email", claims.Email)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, map[string]any{
		"success":    false,
		"message":    msg,
		"statusCode": http.StatusUnauthorized,
	})
}
