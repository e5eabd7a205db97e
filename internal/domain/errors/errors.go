package errors

import (
	"net/http"
	"strings"

	"contactdesk/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Permission denied",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrMissingID = NewBaseError(
		http.StatusBadRequest,
		"MISSING_ID",
		"Query parameter id is required",
		"",
	)

	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"Query parameter id is not a valid identifier",
		"",
	)

	ErrInvalidLocale = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LOCALE",
		"Locale is not a valid language tag",
		"",
	)

	ErrContactAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTACT_ADDRESS_NOT_FOUND",
		"Contact address not found",
		"",
	)

	ErrContactAddressConflict = NewBaseError(
		http.StatusConflict,
		"CONTACT_ADDRESS_CONFLICT",
		"A contact address already exists for this country and locale",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NewMissingFieldsError returns a validation error naming every missing field.
func NewMissingFieldsError(fields []string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		ErrValidationFailed.ErrorCode(),
		"Missing required fields: "+strings.Join(fields, ", "),
		"",
	)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// SchemaMismatchKind tells which part of the persisted structure is missing.
type SchemaMismatchKind string

const (
	SchemaTableMissing  SchemaMismatchKind = "table_missing"
	SchemaColumnMissing SchemaMismatchKind = "column_missing"
)

// SchemaMismatchError is returned when the store reports a missing table or
// column, meaning a migration step has not been applied.
type SchemaMismatchError struct {
	err  error
	kind SchemaMismatchKind
}

// NewSchemaMismatchError creates a schema mismatch error of the given kind.
func NewSchemaMismatchError(err error, kind SchemaMismatchKind) *SchemaMismatchError {
	return &SchemaMismatchError{err: err, kind: kind}
}

// Error implements the error interface
func (e *SchemaMismatchError) Error() string {
	return errors.Wrap(e.err, "database schema mismatch").Error()
}

// Unwrap exposes the driver error.
func (e *SchemaMismatchError) Unwrap() error {
	return e.err
}

// Kind returns which part of the schema is missing.
func (e *SchemaMismatchError) Kind() SchemaMismatchKind {
	return e.kind
}

// NeedsTableCreation reports a missing table.
func (e *SchemaMismatchError) NeedsTableCreation() bool {
	return e.kind == SchemaTableMissing
}

// NeedsSchemaUpdate reports a missing column.
func (e *SchemaMismatchError) NeedsSchemaUpdate() bool {
	return e.kind == SchemaColumnMissing
}

// HTTPCode returns the HTTP status code
func (e *SchemaMismatchError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *SchemaMismatchError) ErrorCode() string {
	if e.kind == SchemaTableMissing {
		return "SCHEMA_TABLE_MISSING"
	}

	return "SCHEMA_COLUMN_MISSING"
}

// Message returns the user-friendly error message
func (e *SchemaMismatchError) Message() string {
	if e.kind == SchemaTableMissing {
		return "Contact address table is missing, run the database migration"
	}

	return "Contact address table is outdated, run the database migration"
}

// Details returns the driver message.
func (e *SchemaMismatchError) Details() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}
