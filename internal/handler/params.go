package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

var errBadNumber = errors.New("handler: query parameter is not a number")

// pageParams reads page and pageSize with per-screen defaults. Values below
// 1 and non-numeric input are rejected so procedures never see a bad OFFSET.
func pageParams(c echo.Context, defaultSize int) (page, pageSize int, err error) {
	page, err = intQuery(c, "page", 1)
	if err != nil || page < 1 {
		return 0, 0, errBadNumber
	}
	pageSize, err = intQuery(c, "pageSize", defaultSize)
	if err != nil || pageSize < 1 {
		return 0, 0, errBadNumber
	}
	return page, pageSize, nil
}

func intQuery(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errBadNumber
	}
	return n, nil
}

// queryOr reads a string query parameter with a fallback for list filters
// whose procedures expect a sentinel such as "all" rather than an empty string.
func queryOr(c echo.Context, name, def string) string {
	if raw := c.QueryParam(name); raw != "" {
		return raw
	}
	return def
}

// optionalID reads an int64 query parameter, nil when absent.
func optionalID(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errBadNumber
	}
	return &n, nil
}

// optionalString returns nil for an absent parameter so procedures receive
// NULL rather than an empty string.
func optionalString(c echo.Context, name string) *string {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// pathID parses a numeric path segment.
func pathID(c echo.Context, name string) (int64, error) {
	n, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, errBadNumber
	}
	return n, nil
}
