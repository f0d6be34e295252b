package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, uint64(42), cfg.ClusterSeed)
	assert.Equal(t, 300, cfg.MaxIterations)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.PoolSize)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("with storage", func(t *testing.T) {
		cfg := NewConfig(
			WithBackend(BackendSQLite),
			WithStoragePath("/tmp/catalog.db"),
		)
		assert.Equal(t, BackendSQLite, cfg.Backend)
		assert.Equal(t, "/tmp/catalog.db", cfg.StoragePath)
	})

	t.Run("with engine tuning", func(t *testing.T) {
		cfg := NewConfig(
			WithPoolSize(4),
			WithClusterSeed(7),
			WithMaxIterations(50),
			WithLogLevel("debug"),
			WithCatalogFile("custom.csv"),
		)
		assert.Equal(t, 4, cfg.PoolSize)
		assert.Equal(t, uint64(7), cfg.ClusterSeed)
		assert.Equal(t, 50, cfg.MaxIterations)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "custom.csv", cfg.CatalogFile)
	})
}

func TestNormalize(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := &Config{
		Backend:     " Badger ",
		StoragePath: "~/phonemes",
		LogLevel:    "WARN",
	}
	cfg.Normalize()

	assert.Equal(t, BackendBadger, cfg.Backend)
	assert.Equal(t, filepath.Join(home, "phonemes"), cfg.StoragePath)
	assert.Equal(t, "warn", cfg.LogLevel)

	empty := &Config{}
	empty.Normalize()
	assert.Equal(t, BackendMemory, empty.Backend)
	assert.Equal(t, "info", empty.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    []ConfigOption
		wantErr string
	}{
		{"memory needs no path", nil, ""},
		{"badger with path", []ConfigOption{WithBackend("badger"), WithStoragePath("/tmp/db")}, ""},
		{"badger without path", []ConfigOption{WithBackend("badger")}, "StoragePath"},
		{"sqlite without path", []ConfigOption{WithBackend("sqlite")}, "StoragePath"},
		{"unknown backend", []ConfigOption{WithBackend("postgres")}, "unknown backend"},
		{"negative pool", []ConfigOption{WithPoolSize(-1)}, "PoolSize"},
		{"zero iterations", []ConfigOption{WithMaxIterations(0)}, "MaxIterations"},
		{"bad log level", []ConfigOption{WithLogLevel("trace")}, "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfig(tt.opts...).Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phonemescape.yaml")
	content := `
backend: sqlite
storage_path: /var/lib/phonemescape/catalog.db
max_iterations: 100
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFile(path, WithLogLevel("debug"))
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "/var/lib/phonemescape/catalog.db", cfg.StoragePath)
	assert.Equal(t, 100, cfg.MaxIterations)
	// Defaults survive for keys not in the file.
	assert.Equal(t, uint64(42), cfg.ClusterSeed)
	// Options override the file.
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: [unclosed"), 0644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
