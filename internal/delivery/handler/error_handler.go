package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"social-service/internal/domain/apperrors"
	"social-service/internal/infrastructure/logger"
)

type errorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Message   string    `json:"message"`
}

const genericErrorMessage = "server error, please retry later"

// NewHTTPErrorHandler translates domain error kinds into HTTP statuses:
// not-found 404, conflict 409, forbidden 403. Anything untyped is a 500 with
// a generic body; the original error is only logged.
func NewHTTPErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := classify(err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
		} else {
			log.Warn("request rejected", "method", c.Request().Method, "path", c.Path(), "status", status, "error", err)
		}

		response := errorResponse{
			Timestamp: time.Now(),
			Path:      c.Request().URL.Path,
			Message:   message,
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, response)
	}
}

func classify(err error) (int, string) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperrors.KindNotFound:
			return http.StatusNotFound, appErr.Message
		case apperrors.KindConflict:
			return http.StatusConflict, appErr.Message
		case apperrors.KindForbidden:
			return http.StatusForbidden, appErr.Message
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	return http.StatusInternalServerError, genericErrorMessage
}
