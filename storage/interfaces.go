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

package storage

import (
	"context"
	"time"

	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// Repository calls made with the context passed to fn join the transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// Manifest describes the catalog held by a repository.
type Manifest struct {
	Fingerprint core.ID
	Phonemes    int
	SavedAt     time.Time
}

// CatalogRepository persists a single phoneme catalog.
type CatalogRepository interface {
	Repository

	// SaveCatalog replaces the stored catalog with c, preserving symbol order.
	// Returns the manifest written alongside it.
	SaveCatalog(ctx context.Context, c *catalog.Catalog) (*Manifest, error)

	// LoadCatalog rebuilds the stored catalog. Every record is validated again.
	// Returns ErrNotFound if no catalog has been saved and
	// ErrFingerprintMismatch if the records do not match the manifest.
	LoadCatalog(ctx context.Context) (*catalog.Catalog, error)

	// GetPhoneme retrieves a single stored phoneme by symbol.
	// Returns ErrNotFound if the symbol is not stored.
	GetPhoneme(ctx context.Context, symbol string) (*core.Phoneme, error)

	// Manifest returns the manifest of the stored catalog.
	// Returns ErrNotFound if no catalog has been saved.
	Manifest(ctx context.Context) (*Manifest, error)
}
