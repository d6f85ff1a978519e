package settings

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:settings?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE settings (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSetGet(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyBaseURL, []byte("http://host")))

	got, err := repo.Get(ctx, KeyBaseURL)
	require.NoError(t, err)
	require.Equal(t, []byte("http://host"), got)
}

func TestSet_Overwrites(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("old")))
	require.NoError(t, repo.Set(ctx, KeyToken, []byte("new")))

	got, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("new"), got)
}

func TestGet_MissingKeyReturnsNil(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("tok")))
	require.NoError(t, repo.Delete(ctx, KeyToken))

	got, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestClear(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyBaseURL, []byte("http://host")))
	require.NoError(t, repo.Set(ctx, KeyToken, []byte("tok")))
	require.NoError(t, repo.Clear(ctx))

	for _, k := range []string{KeyBaseURL, KeyToken} {
		got, err := repo.Get(ctx, k)
		require.NoError(t, err)
		require.Nil(t, got)
	}
}
