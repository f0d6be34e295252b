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
	"encoding/binary"
)

const (
	phonemePrefix     = "phonrec"
	phonemeSymbolIdx  = "phonsym"
	catalogManifestID = "catman"
)

// makePhonemeKey orders records by catalog position.
func makePhonemeKey(position int) []byte {
	prefix := phonemePrefix + ":"
	buf := make([]byte, len(prefix)+4)
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint32(buf[offset:], uint32(position))
	return buf
}

func makePhonemePrefix() []byte {
	return []byte(phonemePrefix + ":")
}

func makeSymbolKey(symbol string) []byte {
	return []byte(phonemeSymbolIdx + ":" + symbol)
}

func makeSymbolPrefix() []byte {
	return []byte(phonemeSymbolIdx + ":")
}

func makeManifestKey() []byte {
	return []byte(catalogManifestID)
}

func encodePosition(position int) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(position))
	return buf
}

func decodePosition(data []byte) (int, bool) {
	if len(data) != 4 {
		return 0, false
	}
	return int(binary.BigEndian.Uint32(data)), true
}
