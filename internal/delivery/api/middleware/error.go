package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"contactdesk/config"
	"contactdesk/internal/delivery/api/response"
	deliverycontext "contactdesk/internal/delivery/context"
	domainerrors "contactdesk/internal/domain/errors"
	"contactdesk/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders every error escaping a handler in the failure envelope.
type ErrorMiddleware struct {
	logger     *slog.Logger
	production bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		production: cfg.IsProduction(),
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		details := appErr.Details()
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)
			details = m.internalDetails(err)
		}
		_ = response.AppError(c, appErr, details)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		switch msg := httpErr.Message.(type) {
		case string:
			message = msg
		case nil:
		default:
			message = fmt.Sprint(msg)
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "", response.SchemaFlags{})

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c,
		http.StatusInternalServerError,
		domainerrors.ErrInternalError.ErrorCode(),
		domainerrors.ErrInternalError.Message(),
		m.internalDetails(err),
		response.SchemaFlags{},
	)
}

// internalDetails exposes the raw error text outside production only.
func (m *ErrorMiddleware) internalDetails(err error) string {
	if m.production {
		return ""
	}

	return err.Error()
}
