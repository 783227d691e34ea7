package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase_AppliesMigrationsOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	require.NoError(t, InitializeDatabase(dbPath))
	t.Cleanup(func() { CloseDB() })

	var applied int
	require.NoError(t, GetDB().QueryRow("SELECT COUNT(*) FROM migrations").Scan(&applied))
	assert.Equal(t, 3, applied)

	var users int
	require.NoError(t, GetDB().QueryRow("SELECT COUNT(*) FROM users").Scan(&users))
	assert.Equal(t, 11, users)

	// Running again must not re-apply the seed
	require.NoError(t, RunMigrations(GetDB()))
	require.NoError(t, GetDB().QueryRow("SELECT COUNT(*) FROM users").Scan(&users))
	assert.Equal(t, 11, users)
}

func TestOpenDB_EnforcesForeignKeys(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fk.db")

	require.NoError(t, InitializeDatabase(dbPath))
	t.Cleanup(func() { CloseDB() })

	_, err := GetDB().Exec(
		"INSERT INTO logs (user_id, log_type, log_message, date_and_time) VALUES (?, ?, ?, CURRENT_TIMESTAMP)",
		9999, "User Viewed", "orphan",
	)
	assert.Error(t, err, "expected foreign key violation for unknown user")
	assert.NotNil(t, GetBunDB())
}

func TestLoadMigrations_SortedByVersion(t *testing.T) {
	migrations, err := loadMigrations(migrationFiles)
	require.NoError(t, err)
	require.Len(t, migrations, 3)

	assert.Equal(t, "001_create_users", migrations[0].Version)
	assert.Equal(t, "002_create_logs", migrations[1].Version)
	assert.Equal(t, "003_seed_users", migrations[2].Version)
	assert.Contains(t, migrations[2].SQL, "ploew@example.com")
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "app.db?_foreign_keys=on", withForeignKeys("app.db"))
	assert.Equal(t, "app.db?cache=shared&_foreign_keys=on", withForeignKeys("app.db?cache=shared"))
	assert.Equal(t, "app.db?_fk=1", withForeignKeys("app.db?_fk=1"))
}
