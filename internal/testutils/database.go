package testutils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"userbase/db"
	"userbase/internal/config"
)

// SetupTestDatabase opens a fresh SQLite file under t.TempDir and syncs the schema.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := GetTestConfig(t)
	gdb, err := db.Connect(cfg)
	require.NoError(t, err)

	require.NoError(t, db.SyncSchema(gdb, true))

	t.Cleanup(func() {
		db.Close(gdb)
	})
	return gdb
}

func SetupTestRepositoryFactory(t *testing.T) *db.RepositoryFactory {
	t.Helper()
	return db.NewRepositoryFactory(SetupTestDatabase(t))
}

// GetTestConfig returns a production-mode config backed by a temp SQLite file.
func GetTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		AppName:      "userbase_test",
		Env:          config.EnvProduction,
		Port:         "0",
		DatabaseType: config.SQLite,
		SQLitePath:   filepath.Join(t.TempDir(), "test.db"),
		ForceSync:    true,
		BodyLimit:    1024,
	}
}
