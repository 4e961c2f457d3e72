package persistence

import (
	"errors"
	"strings"

	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the translator cares about
const (
	pgUniqueViolation           = "23505"
	pgInvalidTextRepresentation = "22P02"
	pgIntegrityClass            = "23"
	pgDataExceptionClass        = "22"
)

// ErrorKind is the storage-independent classification of a persistence failure
type ErrorKind int

const (
	// KindUnknown is anything that is not a constraint or data error
	// (connection loss, timeouts, syntax errors in generated SQL)
	KindUnknown ErrorKind = iota
	// KindUniqueViolation is a duplicate value in a unique column
	KindUniqueViolation
	// KindInvalidRepresentation is malformed input reaching a typed column
	KindInvalidRepresentation
	// KindConstraintViolation is any other integrity constraint failure
	KindConstraintViolation
)

// Classify maps a driver error to an ErrorKind and the driver's own message.
func Classify(err error) (ErrorKind, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code), postgresMessage(pgErr.Message, pgErr.Detail)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifySQLState(string(pqErr.Code)), postgresMessage(pqErr.Message, pqErr.Detail)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code != sqlite3.ErrConstraint {
			return KindUnknown, sqliteErr.Error()
		}
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return KindUniqueViolation, sqliteErr.Error()
		default:
			return KindConstraintViolation, sqliteErr.Error()
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return KindUniqueViolation, err.Error()
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return KindConstraintViolation, err.Error()
	case errors.Is(err, gorm.ErrInvalidData), errors.Is(err, gorm.ErrInvalidValue):
		return KindInvalidRepresentation, err.Error()
	}

	return KindUnknown, err.Error()
}

func classifySQLState(code string) ErrorKind {
	switch {
	case code == pgUniqueViolation:
		return KindUniqueViolation
	case code == pgInvalidTextRepresentation, strings.HasPrefix(code, pgDataExceptionClass):
		return KindInvalidRepresentation
	case strings.HasPrefix(code, pgIntegrityClass):
		return KindConstraintViolation
	}
	return KindUnknown
}

func postgresMessage(message, detail string) string {
	if detail == "" {
		return message
	}
	return message + "\nDETAIL:  " + detail
}

// TranslateError converts a persistence failure into a DomainError.
// Domain errors pass through untouched. Failures that are not constraint or
// data errors become a generic internal error; their text is never returned.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}

	kind, message := Classify(err)
	switch kind {
	case KindUniqueViolation, KindConstraintViolation:
		return shared.NewDomainError(shared.CodeConflict, message)
	case KindInvalidRepresentation:
		return shared.NewDomainError(shared.CodeBadRequest, message)
	default:
		return shared.ErrInternal
	}
}
