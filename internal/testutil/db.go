// Package testutil provides shared test helpers.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/gopherburrow/burrow/internal/domain"
	"github.com/gopherburrow/burrow/internal/history"
	"github.com/gopherburrow/burrow/internal/history/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// SeedVisits inserts a slice of visits into the test database.
func SeedVisits(t *testing.T, db *sql.DB, visits []domain.Visit) {
	t.Helper()

	store := history.NewWithDB(db)
	for _, v := range visits {
		err := store.Record(v)
		require.NoError(t, err, "failed to seed visit: %+v", v)
	}
}
