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
	"time"

	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/phonemescape/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: id: %w", ErrSerializationFailed, err)
	}
	return id, nil
}

// MarshalPhoneme serializes a Phoneme to bytes.
func MarshalPhoneme(p *core.Phoneme) []byte {
	buf := make([]byte, core.PhonemeMUS.Size(*p))
	core.PhonemeMUS.Marshal(*p, buf)
	return buf
}

// UnmarshalPhoneme deserializes a Phoneme from bytes.
func UnmarshalPhoneme(data []byte) (*core.Phoneme, error) {
	p, n, err := core.PhonemeMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: phoneme: %w", ErrSerializationFailed, err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: phoneme: %d trailing bytes", ErrSerializationFailed, len(data)-n)
	}
	return &p, nil
}

// MarshalManifest serializes a Manifest to bytes. SavedAt keeps microsecond
// precision.
func MarshalManifest(m *Manifest) []byte {
	micros := m.SavedAt.UnixMicro()
	size := core.IDMUS.Size(m.Fingerprint) + varint.Int.Size(m.Phonemes) + varint.Int64.Size(micros)
	buf := make([]byte, size)
	n := core.IDMUS.Marshal(m.Fingerprint, buf)
	n += varint.Int.Marshal(m.Phonemes, buf[n:])
	varint.Int64.Marshal(micros, buf[n:])
	return buf
}

// UnmarshalManifest deserializes a Manifest from bytes.
func UnmarshalManifest(data []byte) (*Manifest, error) {
	var m Manifest
	fingerprint, n, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: manifest: %w", ErrSerializationFailed, err)
	}
	m.Fingerprint = fingerprint

	count, n1, err := varint.Int.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: manifest: %w", ErrSerializationFailed, err)
	}
	n += n1
	m.Phonemes = count

	micros, _, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: manifest: %w", ErrSerializationFailed, err)
	}
	m.SavedAt = time.UnixMicro(micros).UTC()
	return &m, nil
}

// NewManifest builds a manifest stamped with the current time.
func NewManifest(fingerprint core.ID, phonemes int) *Manifest {
	return &Manifest{
		Fingerprint: fingerprint,
		Phonemes:    phonemes,
		SavedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}
