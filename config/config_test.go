package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestInitConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := InitConfig()
	require.NoError(t, err)

	assert.Equal(t, 8288, cfg.ServerPort)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "data/club.db", cfg.DatabaseDbPath)
	assert.Equal(t, 60, cfg.CacheTTLMinutes)
	assert.Empty(t, cfg.CacheAddress())
}

func TestInitConfig_EnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "club")
	t.Setenv("DB_CACHE_ADDRESS", "cache.internal")

	cfg, err := InitConfig()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.ServerPort)
	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	assert.Equal(t, "cache.internal:6379", cfg.CacheAddress())
	assert.Contains(t, cfg.PostgresDSN(), "host=db.internal")
	assert.Contains(t, cfg.PostgresDSN(), "dbname=club")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "valid sqlite",
			config: Config{ServerPort: 1, DatabaseDriver: DriverSQLite, DatabaseDbPath: "x.db"},
		},
		{
			name:    "empty sqlite path",
			config:  Config{ServerPort: 1, DatabaseDriver: DriverSQLite},
			wantErr: "database path is empty",
		},
		{
			name:    "postgres without host",
			config:  Config{ServerPort: 1, DatabaseDriver: DriverPostgres, DatabaseName: "club"},
			wantErr: "postgres host and database name are required",
		},
		{
			name:    "unknown driver",
			config:  Config{ServerPort: 1, DatabaseDriver: "mysql"},
			wantErr: "unsupported database driver",
		},
		{
			name:    "bad port",
			config:  Config{DatabaseDriver: DriverSQLite, DatabaseDbPath: "x.db"},
			wantErr: "invalid server port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
