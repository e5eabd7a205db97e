package database

import (
	"testing"

	domainerrors "contactdesk/internal/domain/errors"
	"contactdesk/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSchemaMismatchKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind domainerrors.SchemaMismatchKind
		wantOK   bool
	}{
		{name: "postgres undefined table", err: &pgconn.PgError{Code: "42P01"}, wantKind: domainerrors.SchemaTableMissing, wantOK: true},
		{name: "postgres undefined column", err: errors.Wrap(&pgconn.PgError{Code: "42703"}, "select"), wantKind: domainerrors.SchemaColumnMissing, wantOK: true},
		{name: "postgres other", err: &pgconn.PgError{Code: "23505"}, wantOK: false},
		{name: "sqlite table", err: errors.New("no such table: contact_addresses"), wantKind: domainerrors.SchemaTableMissing, wantOK: true},
		{name: "sqlite column", err: errors.New("no such column: whatsapp"), wantKind: domainerrors.SchemaColumnMissing, wantOK: true},
		{name: "sqlite insert column", err: errors.New("table contact_addresses has no column named whatsapp"), wantKind: domainerrors.SchemaColumnMissing, wantOK: true},
		{name: "other", err: errors.New("connection refused"), wantOK: false},
		{name: "nil", err: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := schemaMismatchKind(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, isUniqueConstraintViolation(errors.New("boom")))
}

func TestTranslateError(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: "42P01", Message: "relation does not exist"}, "find")
	_, ok := errors.AsType[*domainerrors.SchemaMismatchError](err)
	assert.True(t, ok)

	err = translateError(errors.New("timeout"), "find")
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	assert.True(t, ok)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "find", appErr.Details())
}
