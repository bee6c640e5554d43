package store

import (
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "not a pg error", err: assert.AnError, want: NonRetryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "wrapped deadlock", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: NonRetryable},
		{name: "undefined table", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, want: NonRetryable},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
