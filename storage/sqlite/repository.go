package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/core"
	"github.com/poiesic/phonemescape/storage"
	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Repository implements storage.CatalogRepository for SQLite.
type Repository struct {
	db     *sql.DB
	logger *slog.Logger
	closed atomic.Bool
}

var _ storage.CatalogRepository = (*Repository)(nil)

// Open opens the SQLite database at dsn and ensures the schema exists.
func Open(ctx context.Context, dsn string, opts ...Option) (storage.CatalogRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A second connection to ":memory:" would see an empty database.
	db.SetMaxOpenConns(1)

	r, err := NewRepository(ctx, db, opts...)
	if err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// NewRepository wraps an open database. The repository takes ownership of db
// and closes it on Close.
func NewRepository(ctx context.Context, db *sql.DB, opts ...Option) (*Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("%w: db is nil", core.ErrInvalidArgument)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	r := &Repository{db: db, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Close closes the database.
func (r *Repository) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	return r.db.Close()
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// withTx runs fn on the transaction carried by ctx, or on a new one that is
// committed when fn succeeds.
func (r *Repository) withTx(ctx context.Context, fn func(q querier) error) error {
	if r.closed.Load() {
		return storage.ErrStorageClosed
	}
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(tx)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}
	return nil
}

// WithTransaction runs fn in one transaction shared by every repository call
// made with the context passed to fn.
func (r *Repository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}
	return r.withTx(ctx, func(q querier) error {
		return fn(context.WithValue(ctx, txKey{}, q))
	})
}

// SaveCatalog replaces every stored row with the phonemes of c.
func (r *Repository) SaveCatalog(ctx context.Context, c *catalog.Catalog) (*storage.Manifest, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil catalog", core.ErrInvalidArgument)
	}
	manifest := storage.NewManifest(c.Fingerprint(), c.Len())

	err := r.withTx(ctx, func(q querier) error {
		if _, err := q.ExecContext(ctx, `DELETE FROM phonemes`); err != nil {
			return err
		}
		for i, p := range c.All() {
			f := p.FeatureValues()
			_, err := q.ExecContext(ctx,
				`INSERT INTO phonemes(position, type, symbol, x, y, feature1, feature2, feature3, description)
				 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				i, p.Category.String(), p.Symbol, p.Coordinate.X, p.Coordinate.Y, f[0], f[1], f[2], p.Description)
			if err != nil {
				return err
			}
		}
		_, err := q.ExecContext(ctx,
			`INSERT OR REPLACE INTO catalog_manifest(id, fingerprint, phonemes, saved_at) VALUES(1, ?, ?, ?)`,
			storage.MarshalID(manifest.Fingerprint), manifest.Phonemes, manifest.SavedAt.UnixMicro())
		return err
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("saved catalog", "phonemes", manifest.Phonemes, "fingerprint", uint64(manifest.Fingerprint))
	return manifest, nil
}

// LoadCatalog reads every row in position order and rebuilds the catalog.
func (r *Repository) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var (
		manifest *storage.Manifest
		phonemes []core.Phoneme
	)
	err := r.withTx(ctx, func(q querier) error {
		var err error
		manifest, err = readManifest(ctx, q)
		if err != nil {
			return err
		}

		rows, err := q.QueryContext(ctx,
			`SELECT type, symbol, x, y, feature1, feature2, feature3, description FROM phonemes ORDER BY position`)
		if err != nil {
			return err
		}
		defer rows.Close()

		phonemes = make([]core.Phoneme, 0, manifest.Phonemes)
		for rows.Next() {
			p, err := scanPhoneme(rows)
			if err != nil {
				return err
			}
			phonemes = append(phonemes, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return storage.RebuildCatalog(manifest, phonemes)
}

// GetPhoneme looks up a single row by symbol.
func (r *Repository) GetPhoneme(ctx context.Context, symbol string) (*core.Phoneme, error) {
	var p core.Phoneme
	err := r.withTx(ctx, func(q querier) error {
		row := q.QueryRowContext(ctx,
			`SELECT type, symbol, x, y, feature1, feature2, feature3, description FROM phonemes WHERE symbol = ?`, symbol)
		var err error
		p, err = scanPhoneme(row)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %q", storage.ErrNotFound, symbol)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Manifest returns the stored manifest.
func (r *Repository) Manifest(ctx context.Context) (*storage.Manifest, error) {
	var manifest *storage.Manifest
	err := r.withTx(ctx, func(q querier) error {
		var err error
		manifest, err = readManifest(ctx, q)
		return err
	})
	return manifest, err
}

func readManifest(ctx context.Context, q querier) (*storage.Manifest, error) {
	var (
		fingerprint []byte
		count       int
		savedAt     int64
	)
	err := q.QueryRowContext(ctx,
		`SELECT fingerprint, phonemes, saved_at FROM catalog_manifest WHERE id = 1`).
		Scan(&fingerprint, &count, &savedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no catalog saved", storage.ErrNotFound)
		}
		return nil, err
	}

	id, err := storage.UnmarshalID(fingerprint)
	if err != nil {
		return nil, err
	}
	return &storage.Manifest{
		Fingerprint: id,
		Phonemes:    count,
		SavedAt:     time.UnixMicro(savedAt).UTC(),
	}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPhoneme(s scanner) (core.Phoneme, error) {
	var (
		kind, symbol, description string
		x, y                      float64
		f                         [3]string
	)
	if err := s.Scan(&kind, &symbol, &x, &y, &f[0], &f[1], &f[2], &description); err != nil {
		return core.Phoneme{}, err
	}
	category, err := core.ParseCategory(kind)
	if err != nil {
		return core.Phoneme{}, fmt.Errorf("%w: row %q: %w", storage.ErrSerializationFailed, symbol, err)
	}
	return core.PhonemeFromFields(category, symbol, core.Coordinate{X: x, Y: y}, f, description), nil
}
