package testdb

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

// WithTx runs fn inside a transaction that is always rolled back, even if fn
// panics.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	defer func() {
		// sql.ErrTxDone means fn already finished the transaction.
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
