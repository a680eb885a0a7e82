package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes for integrity violations
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique violation on any constraint
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation && pgErr.ConstraintName == constraintName
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign key violation on the named constraint
func IsForeignKeyViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == ForeignKeyViolation && pgErr.ConstraintName == constraintName
}
