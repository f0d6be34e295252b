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

// Package storage provides the storage abstraction layer for phonemescape.
//
// This package defines the repository interface that decouples persistence of
// a phoneme catalog from the lookup and similarity code. Different storage
// backends (BadgerDB, SQLite, in-memory) can be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return the storage interface:
//
//	repo, err := badger.NewRepository(path)  // returns storage.CatalogRepository
//
// Internal constructors may return concrete types since they are only used
// within the implementation package.
//
// # Architecture
//
//   - Repository: operations shared by every backend (transactions, Close)
//   - CatalogRepository: save, load and point lookups of a whole catalog
//   - Manifest: fingerprint, size and save time of the stored catalog
//
// # Usage
//
//	repo, err := badger.NewRepository("/path/to/db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
//	if _, err := repo.SaveCatalog(ctx, catalog.Default()); err != nil {
//	    log.Fatal(err)
//	}
//
// Use in tests with in-memory storage:
//
//	repo, err := badger.NewMemoryRepository()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation.
// Pass context.Background() for operations without specific timeout
// requirements.
package storage
