package storage

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations(t *testing.T) {
	storage := newTestStorage(t)

	version, err := storage.GetDatabaseVersion()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, version, int64(2))

	db, err := storage.GetDB()
	require.NoError(t, err)

	for _, table := range []string{"movies", "reports"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "%s table was not created", table)
		assert.Equal(t, table, name)
	}

	// Running again is a no-op.
	require.NoError(t, storage.RunMigrations())

	newVersion, err := storage.GetDatabaseVersion()
	require.NoError(t, err)
	assert.Equal(t, version, newVersion)
}

func TestMigrationManager(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	// Every pooled connection would get its own in-memory database.
	db.SetMaxOpenConns(1)

	migrationManager := NewMigrationManager(db, nil)
	require.NoError(t, migrationManager.Initialize())

	version, err := migrationManager.Version()
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	require.NoError(t, migrationManager.Up())

	version, err = migrationManager.Version()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, version, int64(2))

	require.NoError(t, migrationManager.Down())

	newVersion, err := migrationManager.Version()
	require.NoError(t, err)
	assert.Less(t, newVersion, version)

	require.NoError(t, migrationManager.Reset())

	version, err = migrationManager.Version()
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
}
