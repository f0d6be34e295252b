// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Backend names a catalog storage backend.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// Config holds configuration for a phonemescape library instance.
type Config struct {
	// Backend selects catalog storage: "memory", "badger" or "sqlite".
	// Default: "memory"
	Backend string `yaml:"backend"`

	// StoragePath is the badger directory or the sqlite database file.
	// Required by the badger and sqlite backends. A leading "~/" expands to
	// the user's home directory.
	StoragePath string `yaml:"storage_path"`

	// CatalogFile optionally replaces the builtin catalog with a JSON, CSV or
	// YAML file, chosen by extension.
	CatalogFile string `yaml:"catalog_file"`

	// PoolSize is the number of workers used to build similarity matrices.
	// Zero picks runtime.NumCPU() / 2.
	PoolSize int `yaml:"pool_size"`

	// ClusterSeed seeds k-means initialization.
	// Default: 42
	ClusterSeed uint64 `yaml:"cluster_seed"`

	// MaxIterations bounds k-means iterations.
	// Default: 300
	MaxIterations int `yaml:"max_iterations"`

	// LogLevel is one of debug, info, warn, error.
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithBackend sets the storage backend.
func WithBackend(backend string) ConfigOption {
	return func(c *Config) {
		c.Backend = backend
	}
}

// WithStoragePath sets the badger directory or sqlite file.
func WithStoragePath(path string) ConfigOption {
	return func(c *Config) {
		c.StoragePath = path
	}
}

// WithCatalogFile loads the catalog from a file instead of the builtin table.
func WithCatalogFile(path string) ConfigOption {
	return func(c *Config) {
		c.CatalogFile = path
	}
}

// WithPoolSize sets the matrix worker pool size.
func WithPoolSize(size int) ConfigOption {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// WithClusterSeed sets the k-means seed.
func WithClusterSeed(seed uint64) ConfigOption {
	return func(c *Config) {
		c.ClusterSeed = seed
	}
}

// WithMaxIterations sets the k-means iteration bound.
func WithMaxIterations(n int) ConfigOption {
	return func(c *Config) {
		c.MaxIterations = n
	}
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// DefaultConfig returns a Config backed by memory with the builtin catalog.
func DefaultConfig() *Config {
	return &Config{
		Backend:       BackendMemory,
		ClusterSeed:   42,
		MaxIterations: 300,
		LogLevel:      "info",
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithBackend(BackendBadger),
//	    WithStoragePath("~/.phonemescape/db"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// LoadFile reads a YAML config file over the defaults, then applies opts.
// Keys missing from the file keep their default values.
func LoadFile(path string, opts ...ConfigOption) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg, nil
}

// Normalize puts the configuration in canonical form: names are lower-cased
// and home-relative paths are expanded.
func (c *Config) Normalize() {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = BackendMemory
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.StoragePath = expandHome(strings.TrimSpace(c.StoragePath))
	c.CatalogFile = expandHome(strings.TrimSpace(c.CatalogFile))
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	switch c.Backend {
	case BackendMemory:
	case BackendBadger, BackendSQLite:
		if c.StoragePath == "" {
			return fmt.Errorf("config: StoragePath is required for the %s backend", c.Backend)
		}
	default:
		return fmt.Errorf("config: unknown backend %q: must be one of memory, badger, sqlite", c.Backend)
	}
	if c.PoolSize < 0 {
		return errors.New("config: PoolSize must not be negative")
	}
	if c.MaxIterations < 1 {
		return errors.New("config: MaxIterations must be at least 1")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}
