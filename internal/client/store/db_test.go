package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_CreatesSettingsTable(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO settings(key, value) VALUES ('base_url', 'http://host')`)
	require.NoError(t, err)

	var value string
	require.NoError(t, db.QueryRow(`SELECT value FROM settings WHERE key = 'base_url'`).Scan(&value))
	require.Equal(t, "http://host", value)
}

func TestInitDatabase_IsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
