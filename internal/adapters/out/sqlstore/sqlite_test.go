package sqlstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cafe/internal/adapters/out/sqlstore"
	"cafe/internal/adapters/out/sqlstore/sqlstoretest"
	"cafe/internal/core/domain/model/menu"
	"cafe/internal/core/ports"
	"cafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SQLiteStoreTestSuite runs the store behaviour against a fresh SQLite file per test.
type SQLiteStoreTestSuite struct {
	storeSuite
}

func (s *SQLiteStoreTestSuite) SetupTest() {
	s.db, s.broker = sqlstoretest.Open(s.T())
}

func TestSQLiteStoreTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteStoreTestSuite))
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cafe.db")
	ctx := context.Background()

	_, broker := sqlstoretest.OpenAt(t, path)
	uow := broker.Create()
	require.NoError(t, uow.Begin(ctx))
	item, err := menu.NewItem(14, "Iced Matcha")
	require.NoError(t, err)
	require.NoError(t, uow.MenuRepository().Add(ctx, item))
	require.NoError(t, uow.Commit(ctx))

	_, reopened := sqlstoretest.OpenAt(t, path)
	var items []menu.Item
	require.NoError(t, reopened.View(ctx, func(view ports.ReadView) error {
		items, err = view.MenuRepository().List(ctx)
		return err
	}))

	require.Len(t, items, 14, "seed must not run again on a non-empty menu")
	assert.Equal(t, "Iced Matcha", items[13].Name())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := sqlstore.Open("oracle", "x")
	require.ErrorIs(t, err, sqlstore.ErrUnknownDriver)
}

func TestLoadMenuSeed(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "menu.yaml")
		require.NoError(t, os.WriteFile(path, []byte("items:\n  - id: 1\n    name: Espresso\n  - id: 2\n    name: \"Flat White\"\n"), 0o600))

		items, err := sqlstore.LoadMenuSeed(path)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(2), items[1].ID())
		assert.Equal(t, "Flat White", items[1].Name())
	})

	t.Run("invalid entries are all reported", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("items:\n  - id: 0\n    name: Espresso\n  - id: 3\n    name: \"\"\n"), 0o600))

		_, err := sqlstore.LoadMenuSeed(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := sqlstore.LoadMenuSeed(filepath.Join(dir, "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("items: [\n"), 0o600))

		_, err := sqlstore.LoadMenuSeed(path)
		require.Error(t, err)
	})
}
