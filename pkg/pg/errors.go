package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToOpenConnection  = errors.New("pg.failed_to_open_connection")
	ErrEmptyConnectionString   = errors.New("pg.empty_connection_string")
	ErrHealthcheckFailed       = errors.New("pg.healthcheck_failed")
	ErrFailedToParseConfig     = errors.New("pg.failed_to_parse_config")
	ErrFailedToApplyMigrations = errors.New("pg.failed_to_apply_migrations")
	ErrMigrationsDirNotFound   = errors.New("pg.migrations_dir_not_found")
)

// IsNotFoundError detects pgx.ErrNoRows for consistent "not found" handling.
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError detects unique constraint violations (SQLSTATE 23505),
// e.g. a second sign-up with an already registered email.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsForeignKeyViolationError detects referential integrity violations (SQLSTATE 23503).
func IsForeignKeyViolationError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
