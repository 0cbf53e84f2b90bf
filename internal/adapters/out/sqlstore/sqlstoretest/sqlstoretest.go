// Package sqlstoretest opens throwaway SQLite stores for tests.
package sqlstoretest

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"cafe/internal/adapters/out/sqlstore"
	"cafe/internal/core/domain/model/menu"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Open creates a migrated SQLite store in a temporary directory, seeded with
// the default menu, and closes it when the test ends.
func Open(t *testing.T) (*gorm.DB, *sqlstore.Broker) {
	t.Helper()
	return OpenAt(t, filepath.Join(t.TempDir(), "cafe.db"))
}

// OpenAt is Open for a caller-chosen path, used to reopen a store.
func OpenAt(t *testing.T, path string) (*gorm.DB, *sqlstore.Broker) {
	t.Helper()

	db, err := sqlstore.Open(sqlstore.DriverSQLite, path)
	require.NoError(t, err)
	require.NoError(t, sqlstore.Migrate(db))
	_, err = sqlstore.Seed(context.Background(), db, menu.DefaultItems())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})

	return db, sqlstore.NewBroker(db, DiscardLogger())
}
