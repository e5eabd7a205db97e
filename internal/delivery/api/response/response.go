// Package response writes the JSON bodies of the admin and public APIs.
package response

import (
	"net/http"

	domainerrors "contactdesk/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SchemaFlags marks which migration step a failed request calls for.
type SchemaFlags struct {
	NeedsTableCreation bool
	NeedsSchemaUpdate  bool
}

// Success writes data as the response body. Admin responses are not wrapped.
func Success(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Error writes the failure envelope.
func Error(c echo.Context, statusCode int, errorCode, message, details string, flags SchemaFlags) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(statusCode)
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		NeedsTableCreation: flags.NeedsTableCreation,
		NeedsSchemaUpdate:  flags.NeedsSchemaUpdate,
	})
}

// AppError writes the envelope for a domain error.
func AppError(c echo.Context, appErr domainerrors.AppError, details string) error {
	var flags SchemaFlags
	if schemaErr, ok := appErr.(*domainerrors.SchemaMismatchError); ok {
		flags.NeedsTableCreation = schemaErr.NeedsTableCreation()
		flags.NeedsSchemaUpdate = schemaErr.NeedsSchemaUpdate()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details, flags)
}
