package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation could succeed
// on a later attempt. The repository only logs it.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as a lost connection or a
	// deadlock rollback.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// based on the SQLSTATE code reported by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not
// *pgconn.PgError are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err != nil && errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification].
// Class 08 (connection exception), class 40 (transaction rollback) and
// 57P03 (cannot connect now) are retryable, everything else is not.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}
