package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Dialect names a SQL backend. The values double as database/sql driver
// names and goose dialects.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

// DialectFromDSN picks the backend for dsn.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

func (d Dialect) placeholderFormat() sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// DB is an open connection pool together with the backend it talks to.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// builder returns a squirrel statement builder for the backend.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholderFormat())
}

// isUniqueViolation reports whether err is a primary key or unique
// constraint violation on either backend.
func (db *DB) isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}

// logError records a failed statement together with its retry
// classification. Nothing is retried automatically.
func (db *DB) logError(ctx context.Context, fn string, err error) {
	event := logger.FromContextOr(ctx, db.logger).Err(err).Str("func", fn)
	if db.errorClassificator != nil {
		event = event.Bool("retryable", db.errorClassificator.Classify(err) == Retryable)
	}
	event.Msg("database error")
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
