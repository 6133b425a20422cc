package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/blogify-app/backend/pkg/apperrors"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler translates application errors into structured JSON
// bodies. Store failures are logged with their cause but surface only a
// generic message.
func NewHTTPErrorHandler(logg zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := errorBody{Code: "INTERNAL_ERROR", Message: "an internal error occurred"}
		status := http.StatusInternalServerError

		var appErr *apperrors.Error
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.Status
			body.Code = appErr.Code
			body.Message = appErr.Message
			if errors.Is(appErr, apperrors.ErrStore) {
				logg.Error().Err(appErr.Err).Str("path", c.Path()).Msg("store failure")
				// Never leak store detail to the caller.
				body.Message = "an internal error occurred"
			}
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				body.Message = msg
			}
			body.Code = http.StatusText(status)
		default:
			logg.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logg.Error().Err(writeErr).Msg("failed to write error response")
		}
	}
}
