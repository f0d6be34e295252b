package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/core"
	"github.com/poiesic/phonemescape/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRepository(t *testing.T) storage.CatalogRepository {
	t.Helper()
	repo, err := Open(context.Background(), MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func vowelsOnly(t *testing.T) *catalog.Catalog {
	t.Helper()
	var phonemes []core.Phoneme
	for _, s := range catalog.Default().Vowels() {
		p, err := catalog.Default().Lookup(s)
		require.NoError(t, err)
		phonemes = append(phonemes, p)
	}
	c, err := catalog.New(phonemes...)
	require.NoError(t, err)
	return c
}

func TestRepository_Empty(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()

	_, err := repo.LoadCatalog(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.Manifest(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.GetPhoneme(ctx, "a")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRepository_SaveLoad(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()
	source := catalog.Default()

	manifest, err := repo.SaveCatalog(ctx, source)
	require.NoError(t, err)
	assert.Equal(t, source.Fingerprint(), manifest.Fingerprint)

	loaded, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, source.All(), loaded.All())
	assert.Equal(t, source.Fingerprint(), loaded.Fingerprint())

	stored, err := repo.Manifest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 87, stored.Phonemes)
	assert.True(t, manifest.SavedAt.Equal(stored.SavedAt))
}

func TestRepository_GetPhoneme(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()
	_, err := repo.SaveCatalog(ctx, catalog.Default())
	require.NoError(t, err)

	p, err := repo.GetPhoneme(ctx, "ø")
	require.NoError(t, err)
	assert.Equal(t, core.CategoryVowel, p.Category)
	assert.Equal(t, core.Rounded, p.Roundedness)
	assert.Equal(t, core.Coordinate{X: 0.3, Y: 1.0}, p.Coordinate)

	_, err = repo.GetPhoneme(ctx, "Q")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRepository_SaveReplaces(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()

	_, err := repo.SaveCatalog(ctx, catalog.Default())
	require.NoError(t, err)
	_, err = repo.SaveCatalog(ctx, vowelsOnly(t))
	require.NoError(t, err)

	loaded, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 28, loaded.Len())
	assert.Empty(t, loaded.Consonants())
}

func TestRepository_TransactionRollback(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()
	_, err := repo.SaveCatalog(ctx, catalog.Default())
	require.NoError(t, err)

	boom := errors.New("boom")
	err = repo.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := repo.SaveCatalog(ctx, vowelsOnly(t)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	loaded, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 87, loaded.Len())
}

func TestRepository_TamperedRowsFailLoad(t *testing.T) {
	db, err := sql.Open("sqlite", MemoryDSN)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	ctx := context.Background()

	repo, err := NewRepository(ctx, db)
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.SaveCatalog(ctx, catalog.Default())
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `UPDATE phonemes SET description = 'edited' WHERE symbol = 'a'`)
	require.NoError(t, err)

	_, err = repo.LoadCatalog(ctx)
	assert.ErrorIs(t, err, storage.ErrFingerprintMismatch)
}

func TestRepository_FileReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	ctx := context.Background()

	repo, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = repo.SaveCatalog(ctx, vowelsOnly(t))
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	repo, err = Open(ctx, path)
	require.NoError(t, err)
	defer repo.Close()
	loaded, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 28, loaded.Len())
}

func TestRepository_Closed(t *testing.T) {
	repo, err := Open(context.Background(), MemoryDSN)
	require.NoError(t, err)
	require.NoError(t, repo.Close())
	require.NoError(t, repo.Close())

	_, err = repo.LoadCatalog(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestNewRepository_NilDB(t *testing.T) {
	_, err := NewRepository(context.Background(), nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}
