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

package phonemescape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/config"
	"github.com/poiesic/phonemescape/core"
	"github.com/poiesic/phonemescape/export"
	"github.com/poiesic/phonemescape/similarity"
	"github.com/poiesic/phonemescape/storage"
	"github.com/poiesic/phonemescape/storage/badger"
	"github.com/poiesic/phonemescape/storage/sqlite"
)

// Library answers phoneme queries over a catalog, optionally backed by a
// repository that persists it.
type Library struct {
	engine *similarity.Engine
	repo   storage.CatalogRepository
	logger *slog.Logger
}

// Option configures a Library.
type Option func(*libraryOptions)

type libraryOptions struct {
	catalog    *catalog.Catalog
	repo       storage.CatalogRepository
	engineOpts []similarity.Option
	logger     *slog.Logger
}

// WithCatalog serves c instead of the builtin catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(o *libraryOptions) {
		o.catalog = c
	}
}

// WithRepository attaches a repository used by Persist and Reload. The
// library closes it on Close.
func WithRepository(repo storage.CatalogRepository) Option {
	return func(o *libraryOptions) {
		o.repo = repo
	}
}

// WithEngineOptions passes options through to the similarity engine.
func WithEngineOptions(opts ...similarity.Option) Option {
	return func(o *libraryOptions) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// WithLogger sets a custom logger for the library and its engine.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *libraryOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewLibrary creates a library over the builtin catalog unless WithCatalog
// says otherwise. No repository is attached unless WithRepository is given.
func NewLibrary(opts ...Option) (*Library, error) {
	options := &libraryOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}
	if options.catalog == nil {
		options.catalog = catalog.Default()
	}

	engineOpts := append([]similarity.Option{similarity.WithLogger(options.logger)}, options.engineOpts...)
	engine, err := similarity.NewEngine(options.catalog, engineOpts...)
	if err != nil {
		return nil, err
	}

	return &Library{
		engine: engine,
		repo:   options.repo,
		logger: options.logger,
	}, nil
}

// Open builds a library from cfg. It opens the configured repository, seeds
// it with the source catalog when it is empty, and serves the stored
// catalog. The source catalog is cfg.CatalogFile when set, otherwise the
// builtin table; a catalog file that differs from the stored one replaces it.
//
// The catalog and repository come from cfg, so WithCatalog and
// WithRepository are rejected. Engine options given by the caller apply
// after those derived from cfg.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*Library, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", core.ErrInvalidArgument)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidArgument, err)
	}
	options := &libraryOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}
	if options.catalog != nil || options.repo != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidArgument, ErrSourceFromConfig)
	}
	logger := options.logger

	source := catalog.Default()
	if cfg.CatalogFile != "" {
		var err error
		source, err = LoadCatalogFile(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
	}

	repo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Backend, err)
	}

	active, err := syncCatalog(ctx, repo, source, cfg.CatalogFile != "", logger)
	if err != nil {
		repo.Close()
		return nil, err
	}

	engineOpts := []similarity.Option{
		similarity.WithSeed(cfg.ClusterSeed),
		similarity.WithMaxIterations(cfg.MaxIterations),
	}
	if cfg.PoolSize > 0 {
		engineOpts = append(engineOpts, similarity.WithPoolSize(cfg.PoolSize))
	}

	lib, err := NewLibrary(
		WithLogger(logger),
		WithCatalog(active),
		WithRepository(repo),
		WithEngineOptions(append(engineOpts, options.engineOpts...)...),
	)
	if err != nil {
		repo.Close()
		return nil, err
	}
	return lib, nil
}

func openRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.CatalogRepository, error) {
	switch cfg.Backend {
	case config.BackendBadger:
		return badger.NewRepository(cfg.StoragePath, badger.WithLogger(logger))
	case config.BackendSQLite:
		return sqlite.Open(ctx, cfg.StoragePath, sqlite.WithLogger(logger))
	default:
		return badger.NewMemoryRepository(badger.WithLogger(logger))
	}
}

func syncCatalog(ctx context.Context, repo storage.CatalogRepository, source *catalog.Catalog, preferSource bool, logger *slog.Logger) (*catalog.Catalog, error) {
	stored, err := repo.LoadCatalog(ctx)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		if _, err := saveCatalog(ctx, repo, source); err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
		logger.Info("seeded catalog", "phonemes", source.Len())
		return source, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	case preferSource && stored.Fingerprint() != source.Fingerprint():
		if _, err := saveCatalog(ctx, repo, source); err != nil {
			return nil, fmt.Errorf("failed to replace catalog: %w", err)
		}
		logger.Info("replaced stored catalog from file", "phonemes", source.Len())
		return source, nil
	default:
		return stored, nil
	}
}

// LoadCatalogFile reads a JSON, CSV or YAML catalog, choosing the format by
// extension.
func LoadCatalogFile(path string) (*catalog.Catalog, error) {
	format, err := export.FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return export.Read(f, format)
}

// Close releases the engine and closes the repository, if any.
func (l *Library) Close() error {
	l.engine.Release()
	if l.repo == nil {
		return nil
	}
	if err := l.repo.Close(); err != nil {
		l.logger.Error("error closing catalog repository", "err", err)
		return err
	}
	return nil
}

// Catalog returns the catalog currently served.
func (l *Library) Catalog() *catalog.Catalog {
	return l.engine.Catalog()
}

// Engine exposes the similarity engine.
func (l *Library) Engine() *similarity.Engine {
	return l.engine
}

// Repository returns the attached repository, or nil.
func (l *Library) Repository() storage.CatalogRepository {
	return l.repo
}

// Persist saves the served catalog to the repository.
func (l *Library) Persist(ctx context.Context) (*storage.Manifest, error) {
	if l.repo == nil {
		return nil, ErrNoRepository
	}
	return saveCatalog(ctx, l.repo, l.Catalog())
}

// saveCatalog writes c, retrying transaction conflicts.
func saveCatalog(ctx context.Context, repo storage.CatalogRepository, c *catalog.Catalog) (*storage.Manifest, error) {
	var manifest *storage.Manifest
	err := storage.RetryConflicts(ctx, func() error {
		var err error
		manifest, err = repo.SaveCatalog(ctx, c)
		return err
	}, storage.DefaultWriteAttempts, storage.DefaultWriteDelay)
	return manifest, err
}

// Reload replaces the served catalog with the one stored in the repository.
func (l *Library) Reload(ctx context.Context) error {
	if l.repo == nil {
		return ErrNoRepository
	}
	c, err := l.repo.LoadCatalog(ctx)
	if err != nil {
		return err
	}
	return l.engine.Reload(c)
}

// ReplaceCatalog serves c from now on. With a repository attached, c is
// saved first and nothing changes if saving fails.
func (l *Library) ReplaceCatalog(ctx context.Context, c *catalog.Catalog) error {
	if c == nil {
		return fmt.Errorf("%w: nil catalog", core.ErrInvalidArgument)
	}
	if l.repo != nil {
		if _, err := saveCatalog(ctx, l.repo, c); err != nil {
			return err
		}
	}
	return l.engine.Reload(c)
}
