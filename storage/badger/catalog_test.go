package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/core"
	"github.com/poiesic/phonemescape/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) storage.CatalogRepository {
	t.Helper()
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func smallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	var phonemes []core.Phoneme
	for _, s := range []string{"a", "i", "u", "p", "t", "k"} {
		p, err := catalog.Default().Lookup(s)
		require.NoError(t, err)
		phonemes = append(phonemes, p)
	}
	c, err := catalog.New(phonemes...)
	require.NoError(t, err)
	return c
}

func TestCatalogRepository_Empty(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.LoadCatalog(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = repo.Manifest(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = repo.GetPhoneme(ctx, "a")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCatalogRepository_SaveLoad(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	source := catalog.Default()

	manifest, err := repo.SaveCatalog(ctx, source)
	require.NoError(t, err)
	assert.Equal(t, source.Fingerprint(), manifest.Fingerprint)
	assert.Equal(t, 87, manifest.Phonemes)

	loaded, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, source.Symbols(), loaded.Symbols())
	assert.Equal(t, source.All(), loaded.All())
	assert.Equal(t, source.Fingerprint(), loaded.Fingerprint())

	stored, err := repo.Manifest(ctx)
	require.NoError(t, err)
	assert.Equal(t, manifest.Fingerprint, stored.Fingerprint)
	assert.True(t, manifest.SavedAt.Equal(stored.SavedAt))
}

func TestCatalogRepository_SaveReplaces(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.SaveCatalog(ctx, catalog.Default())
	require.NoError(t, err)

	small := smallCatalog(t)
	_, err = repo.SaveCatalog(ctx, small)
	require.NoError(t, err)

	loaded, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "i", "u", "p", "t", "k"}, loaded.Symbols())

	_, err = repo.GetPhoneme(ctx, "ʃ")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCatalogRepository_GetPhoneme(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.SaveCatalog(ctx, catalog.Default())
	require.NoError(t, err)

	p, err := repo.GetPhoneme(ctx, "ʃ")
	require.NoError(t, err)
	want, err := catalog.Default().Lookup("ʃ")
	require.NoError(t, err)
	assert.Equal(t, want, *p)

	_, err = repo.GetPhoneme(ctx, "Q")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCatalogRepository_NilCatalog(t *testing.T) {
	repo := newTestRepository(t)
	_, err := repo.SaveCatalog(context.Background(), nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestCatalogRepository_TransactionRollback(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.SaveCatalog(ctx, catalog.Default())
	require.NoError(t, err)

	boom := errors.New("boom")
	err = repo.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := repo.SaveCatalog(ctx, smallCatalog(t)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	loaded, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 87, loaded.Len())
}

func TestCatalogRepository_FileSystemReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewRepository(dir)
	require.NoError(t, err)
	_, err = repo.SaveCatalog(ctx, smallCatalog(t))
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	repo, err = NewRepository(dir)
	require.NoError(t, err)
	defer repo.Close()

	loaded, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, loaded.Len())
}

func TestCatalogRepository_SharedBackend(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	repo, err := NewCatalogRepository(backend)
	require.NoError(t, err)
	require.NoError(t, repo.Close())
	assert.False(t, backend.IsClosed())

	_, err = NewCatalogRepository(nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestCatalogRepository_Closed(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	_, err = repo.LoadCatalog(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
