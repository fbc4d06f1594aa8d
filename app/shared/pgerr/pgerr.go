// Package pgerr inspects Postgres errors independently of the driver in use.
// The service runs on pgdriver while the integration tests run on the pgx
// stdlib driver, so both error shapes are understood.
package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// UniqueViolation is the SQLSTATE for unique_violation.
const UniqueViolation = "23505"

// ForeignKeyViolation is the SQLSTATE for foreign_key_violation.
const ForeignKeyViolation = "23503"

// Code returns the SQLSTATE carried by err, or "" when err is not a Postgres error.
func Code(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var drvErr pgdriver.Error
	if errors.As(err, &drvErr) {
		return drvErr.Field('C')
	}
	return ""
}

// Constraint returns the constraint name carried by err, if any.
func Constraint(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.ConstraintName
	}
	var drvErr pgdriver.Error
	if errors.As(err, &drvErr) {
		return drvErr.Field('n')
	}
	return ""
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return Code(err) == UniqueViolation
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return Code(err) == ForeignKeyViolation
}
