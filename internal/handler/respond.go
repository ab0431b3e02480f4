package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/sswm/waste-admin-api/internal/service"
)

// envelope is the uniform response body. statusCode mirrors the HTTP status
// so clients reading only the body see the same outcome.
type envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data,omitempty"`
}

// respond maps a service outcome to the wire: unexpected faults become a
// generic 500, business failures a 400 and success a 200.
func respond(c echo.Context, res service.Result, err error) error {
	return respondWith(c, res, err, http.StatusOK, http.StatusBadRequest)
}

// respondCreated is respond with 201 on success, for the add endpoints.
func respondCreated(c echo.Context, res service.Result, err error) error {
	return respondWith(c, res, err, http.StatusCreated, http.StatusBadRequest)
}

// respondAuth reports credential failures as 401 instead of 400. Used by
// login and refresh only.
func respondAuth(c echo.Context, res service.Result, err error) error {
	return respondWith(c, res, err, http.StatusOK, http.StatusUnauthorized)
}

// respondLookup reports a business failure as 404, for by-id fetches.
func respondLookup(c echo.Context, res service.Result, err error) error {
	return respondWith(c, res, err, http.StatusOK, http.StatusNotFound)
}

func respondWith(c echo.Context, res service.Result, err error, okStatus, failStatus int) error {
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request().Method,
			"path":   c.Path(),
		}).Error("request failed")
		return c.JSON(http.StatusInternalServerError, envelope{
			Success:    false,
			Message:    "Internal server error",
			StatusCode: http.StatusInternalServerError,
		})
	}
	if res.ErrorCode != 0 {
		return c.JSON(failStatus, envelope{
			Success:    false,
			Message:    res.Message,
			StatusCode: failStatus,
		})
	}
	return c.JSON(okStatus, envelope{
		Success:    true,
		Message:    res.Message,
		StatusCode: okStatus,
		Data:       res.Data,
	})
}

// badRequest short-circuits validation failures before the service runs.
func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, envelope{
		Success:    false,
		Message:    msg,
		StatusCode: http.StatusBadRequest,
	})
}
