package handler

import "github.com/labstack/echo/v4"

// userID reads the authenticated user set by the auth middleware. Routes
// using it are always behind that middleware, so a missing value cannot
// happen in practice.
func userID(c echo.Context) uint64 {
	id, _ := c.Get("user_id").(uint64)
	return id
}
