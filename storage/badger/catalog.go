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

package badger

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/core"
	"github.com/poiesic/phonemescape/storage"
)

// CatalogRepository implements storage.CatalogRepository for BadgerDB.
type CatalogRepository struct {
	backend *Backend
	// owned is set when the repository opened the backend itself and must
	// close it.
	owned bool
}

var _ storage.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a repository over a shared backend. Closing
// the repository leaves the backend open.
func NewCatalogRepository(backend *Backend) (*CatalogRepository, error) {
	if backend == nil {
		return nil, fmt.Errorf("%w: nil backend", core.ErrInvalidArgument)
	}
	return &CatalogRepository{
		backend: backend,
	}, nil
}

// NewRepository opens a badger database at path and returns a repository
// that owns it.
func NewRepository(path string, opts ...BackendOption) (storage.CatalogRepository, error) {
	backend, err := OpenBackend(path, false, opts...)
	if err != nil {
		return nil, err
	}
	return &CatalogRepository{backend: backend, owned: true}, nil
}

// Close releases resources. The backend is closed only when the repository
// opened it.
func (r *CatalogRepository) Close() error {
	if r.owned && !r.backend.IsClosed() {
		return r.backend.Close()
	}
	return nil
}

// WithTransaction delegates to the backend.
func (r *CatalogRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveCatalog replaces every stored record with the phonemes of c.
func (r *CatalogRepository) SaveCatalog(ctx context.Context, c *catalog.Catalog) (*storage.Manifest, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil catalog", core.ErrInvalidArgument)
	}
	manifest := storage.NewManifest(c.Fingerprint(), c.Len())

	err := r.backend.WithTx(ctx, func(tx *badger.Txn) error {
		if err := deletePrefix(tx, makePhonemePrefix()); err != nil {
			return err
		}
		if err := deletePrefix(tx, makeSymbolPrefix()); err != nil {
			return err
		}

		for i, p := range c.All() {
			if err := tx.Set(makePhonemeKey(i), storage.MarshalPhoneme(&p)); err != nil {
				return err
			}
			if err := tx.Set(makeSymbolKey(p.Symbol), encodePosition(i)); err != nil {
				return err
			}
		}
		return tx.Set(makeManifestKey(), storage.MarshalManifest(manifest))
	}, true)
	if err != nil {
		return nil, err
	}

	r.backend.logger.Debug("saved catalog", "phonemes", manifest.Phonemes, "fingerprint", uint64(manifest.Fingerprint))
	return manifest, nil
}

// LoadCatalog reads every record in position order and rebuilds the catalog.
func (r *CatalogRepository) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var (
		manifest *storage.Manifest
		phonemes []core.Phoneme
	)
	err := r.backend.WithTx(ctx, func(tx *badger.Txn) error {
		var err error
		manifest, err = readManifest(tx)
		if err != nil {
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePhonemePrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		phonemes = make([]core.Phoneme, 0, manifest.Phonemes)
		for iter.Rewind(); iter.Valid(); iter.Next() {
			var p *core.Phoneme
			err := iter.Item().Value(func(val []byte) error {
				var err error
				p, err = storage.UnmarshalPhoneme(val)
				return err
			})
			if err != nil {
				return err
			}
			phonemes = append(phonemes, *p)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return storage.RebuildCatalog(manifest, phonemes)
}

// GetPhoneme resolves symbol through the symbol index.
func (r *CatalogRepository) GetPhoneme(ctx context.Context, symbol string) (*core.Phoneme, error) {
	var p *core.Phoneme
	err := r.backend.WithTx(ctx, func(tx *badger.Txn) error {
		item, err := tx.Get(makeSymbolKey(symbol))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return fmt.Errorf("%w: %q", storage.ErrNotFound, symbol)
			}
			return err
		}

		var position int
		err = item.Value(func(val []byte) error {
			var ok bool
			position, ok = decodePosition(val)
			if !ok {
				return fmt.Errorf("%w: symbol index for %q", storage.ErrSerializationFailed, symbol)
			}
			return nil
		})
		if err != nil {
			return err
		}

		p, err = readPhoneme(tx, makePhonemeKey(position))
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: %q", storage.ErrNotFound, symbol)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Manifest returns the stored manifest.
func (r *CatalogRepository) Manifest(ctx context.Context) (*storage.Manifest, error) {
	var manifest *storage.Manifest
	err := r.backend.WithTx(ctx, func(tx *badger.Txn) error {
		var err error
		manifest, err = readManifest(tx)
		return err
	}, false)
	return manifest, err
}

func readManifest(tx *badger.Txn) (*storage.Manifest, error) {
	item, err := tx.Get(makeManifestKey())
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, fmt.Errorf("%w: no catalog saved", storage.ErrNotFound)
		}
		return nil, err
	}

	var manifest *storage.Manifest
	err = item.Value(func(val []byte) error {
		var err error
		manifest, err = storage.UnmarshalManifest(val)
		return err
	})
	return manifest, err
}

func readPhoneme(tx *badger.Txn, key []byte) (*core.Phoneme, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var p *core.Phoneme
	err = item.Value(func(val []byte) error {
		var err error
		p, err = storage.UnmarshalPhoneme(val)
		return err
	})
	return p, err
}

func deletePrefix(tx *badger.Txn, prefix []byte) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)

	var keys [][]byte
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, iter.Item().KeyCopy(nil))
	}
	iter.Close()

	for _, key := range keys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
