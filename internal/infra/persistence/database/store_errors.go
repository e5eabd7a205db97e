package database

import (
	"strings"

	domainerrors "contactdesk/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation = "23505"
	pgUndefinedTable  = "42P01"
	pgUndefinedColumn = "42703"
)

// translateError maps a store error to a domain error. Missing tables and
// columns become schema mismatches; everything else is a generic execution error.
func translateError(err error, details string) error {
	if kind, ok := schemaMismatchKind(err); ok {
		return domainerrors.NewSchemaMismatchError(err, kind)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}

func schemaMismatchKind(err error) (domainerrors.SchemaMismatchKind, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUndefinedTable:
			return domainerrors.SchemaTableMissing, true
		case pgUndefinedColumn:
			return domainerrors.SchemaColumnMissing, true
		default:
			return "", false
		}
	}

	// SQLite reports both cases as a generic error; only the message differs.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "no such table"):
		return domainerrors.SchemaTableMissing, true
	case strings.Contains(msg, "no such column"), strings.Contains(msg, "has no column named"):
		return domainerrors.SchemaColumnMissing, true
	default:
		return "", false
	}
}
