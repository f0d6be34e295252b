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
	"fmt"

	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/core"
)

// RebuildCatalog validates loaded records against their manifest and builds
// a catalog from them.
func RebuildCatalog(manifest *Manifest, phonemes []core.Phoneme) (*catalog.Catalog, error) {
	if len(phonemes) != manifest.Phonemes {
		return nil, fmt.Errorf("%w: manifest lists %d phonemes, found %d",
			ErrFingerprintMismatch, manifest.Phonemes, len(phonemes))
	}
	c, err := catalog.New(phonemes...)
	if err != nil {
		return nil, err
	}
	if c.Fingerprint() != manifest.Fingerprint {
		return nil, fmt.Errorf("%w: manifest %d, records %d",
			ErrFingerprintMismatch, uint64(manifest.Fingerprint), uint64(c.Fingerprint()))
	}
	return c, nil
}
