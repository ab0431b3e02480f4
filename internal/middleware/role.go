package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole restricts a route group to the given roles. A request with no
// role in context never passed Auth, so it gets 401; an authenticated caller
// with a role outside the allowed set gets 403.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || role == "" {
				return unauthorized(c, "Authentication required")
			}
			if !allowed[role] {
				return c.JSON(http.StatusForbidden, map[string]any{
					"success":    false,
					"message":    "Access denied",
					"statusCode": http.StatusForbidden,
				})
			}
			return next(c)
		}
	}
}
