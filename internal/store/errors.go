package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrClientNotFound is returned when no record matches the requested ID.
	ErrClientNotFound = errors.New("client was not found")

	// ErrClientAlreadyExists is returned when an insert hits the primary key
	// of an existing record.
	ErrClientAlreadyExists = errors.New("client already exists")
)

// Low-level database operation errors, wrapped by repository methods when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when reading result rows fails.
	ErrScanningRows = errors.New("failed to scan client rows")

	// ErrUnsupportedDSN is returned when no backend can be chosen for a DSN.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)
