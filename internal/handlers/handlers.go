package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	errs "github.com/nukleohub/commercial/internal/errors"
)

// ErrorResponse is the error body shape shared by all endpoints
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeleteResponse acknowledges a successful delete
type DeleteResponse struct {
	Success bool `json:"success"`
}

// httpError maps service errors to the wire taxonomy: validation failures
// become 400, missing records 404, anything else is logged and hidden
// behind the generic fallback message with 500.
func httpError(err error, fallback string) error {
	var notFoundErr *errs.NotFoundErr
	if errors.As(err, &notFoundErr) {
		return echo.NewHTTPError(http.StatusNotFound, notFoundErr.Error())
	}

	var validationErr *errs.ValidationErr
	if errors.As(err, &validationErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Error())
	}

	logrus.WithError(err).Error(fallback)
	return echo.NewHTTPError(http.StatusInternalServerError, fallback)
}
