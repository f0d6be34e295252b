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

//go:generate go run ../cmd/musgen

package core

import (
	"encoding/binary"
	"fmt"

	"github.com/go-crypt/x/blake2b"
)

// ID is a content-derived identifier.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Category identifies which chart plane a phoneme lives on.
type Category int

const (
	// CategoryVowel places a phoneme on the vowel trapezoid.
	CategoryVowel Category = iota + 1
	// CategoryConsonant places a phoneme on the consonant grid.
	CategoryConsonant
)

func (c Category) String() string {
	switch c {
	case CategoryVowel:
		return "vowel"
	case CategoryConsonant:
		return "consonant"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// ParseCategory converts "vowel" or "consonant" to a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "vowel":
		return CategoryVowel, nil
	case "consonant":
		return CategoryConsonant, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
}

// Coordinate is a point on a category's chart plane.
type Coordinate struct {
	X float64
	Y float64
}

// Phoneme is a single catalog record. Vowels carry Height, Backness and
// Roundedness; consonants carry Manner, Place and Voicing. The fields of the
// other category are left empty.
type Phoneme struct {
	Symbol      string
	Category    Category
	Coordinate  Coordinate
	Height      Height
	Backness    Backness
	Roundedness Roundedness
	Manner      Manner
	Place       Place
	Voicing     Voicing
	Description string
}

// IsVowel reports whether the phoneme sits on the vowel plane.
func (p *Phoneme) IsVowel() bool { return p.Category == CategoryVowel }

// IsConsonant reports whether the phoneme sits on the consonant grid.
func (p *Phoneme) IsConsonant() bool { return p.Category == CategoryConsonant }

// FeatureValues returns the three categorical features in export order:
// height, backness, roundedness for vowels and manner, place, voicing for
// consonants.
func (p *Phoneme) FeatureValues() [3]string {
	if p.Category == CategoryVowel {
		return [3]string{string(p.Height), string(p.Backness), string(p.Roundedness)}
	}
	return [3]string{string(p.Manner), string(p.Place), string(p.Voicing)}
}

// Features returns the categorical features keyed by feature name.
func (p *Phoneme) Features() map[string]string {
	if p.Category == CategoryVowel {
		return map[string]string{
			FeatureHeight:      string(p.Height),
			FeatureBackness:    string(p.Backness),
			FeatureRoundedness: string(p.Roundedness),
		}
	}
	return map[string]string{
		FeatureManner:  string(p.Manner),
		FeaturePlace:   string(p.Place),
		FeatureVoicing: string(p.Voicing),
	}
}

// BinaryFeature returns the feature orthogonal to chart position: 1 for
// rounded vowels or voiced consonants, 0 otherwise.
func (p *Phoneme) BinaryFeature() float64 {
	if p.Category == CategoryVowel {
		return p.Roundedness.Bit()
	}
	return p.Voicing.Bit()
}

// PhonemeFromFields is the inverse of FeatureValues: it assigns features in
// export order to the fields of category. The result is not validated.
func PhonemeFromFields(category Category, symbol string, coord Coordinate, features [3]string, description string) Phoneme {
	p := Phoneme{
		Symbol:      symbol,
		Category:    category,
		Coordinate:  coord,
		Description: description,
	}
	switch category {
	case CategoryVowel:
		p.Height = Height(features[0])
		p.Backness = Backness(features[1])
		p.Roundedness = Roundedness(features[2])
	case CategoryConsonant:
		p.Manner = Manner(features[0])
		p.Place = Place(features[1])
		p.Voicing = Voicing(features[2])
	}
	return p
}
