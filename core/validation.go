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

package core

import (
	"fmt"
	"math"
)

const (
	// rowTolerance bounds the offset of a coordinate from its feature row or column.
	rowTolerance = 0.25
	// backnessTolerance is wider because the trapezoid shifts front vowels
	// right as height decreases.
	backnessTolerance = 0.75
)

// ValidatePhoneme validates a Phoneme according to domain rules.
//
// Validation rules:
//   - Symbol must not be empty
//   - Category must be Vowel or Consonant
//   - The category's three features must be known values
//   - Coordinate must lie on the category's plane
//   - Coordinate must encode the height/backness or manner/place features
//
// NOT validated:
//   - Description (display only, may be empty)
//   - Features of the other category (ignored)
func ValidatePhoneme(p *Phoneme) error {
	if p == nil {
		return fmt.Errorf("%w: phoneme is nil", ErrInvalidPhoneme)
	}

	if p.Symbol == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPhoneme, ErrEmptySymbol)
	}

	plane, ok := PlaneFor(p.Category)
	if !ok {
		return fmt.Errorf("%w: %q: %w", ErrInvalidPhoneme, p.Symbol, ErrInvalidCategory)
	}

	if !plane.Contains(p.Coordinate) {
		return fmt.Errorf("%w: %q at (%g, %g): %w", ErrInvalidPhoneme, p.Symbol,
			p.Coordinate.X, p.Coordinate.Y, ErrCoordinateOutOfRange)
	}

	var err error
	if p.Category == CategoryVowel {
		err = validateVowel(p)
	} else {
		err = validateConsonant(p)
	}
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidPhoneme, p.Symbol, err)
	}
	return nil
}

func validateVowel(p *Phoneme) error {
	y, ok := p.Height.Ordinal()
	if !ok {
		return fmt.Errorf("%w: height %q", ErrInvalidFeature, p.Height)
	}
	x, ok := p.Backness.Ordinal()
	if !ok {
		return fmt.Errorf("%w: backness %q", ErrInvalidFeature, p.Backness)
	}
	if !p.Roundedness.Valid() {
		return fmt.Errorf("%w: roundedness %q", ErrInvalidFeature, p.Roundedness)
	}
	if math.Abs(p.Coordinate.Y-y) > rowTolerance || math.Abs(p.Coordinate.X-x) > backnessTolerance {
		return ErrInconsistentCoordinate
	}
	return nil
}

func validateConsonant(p *Phoneme) error {
	y, ok := p.Manner.Ordinal()
	if !ok {
		return fmt.Errorf("%w: manner %q", ErrInvalidFeature, p.Manner)
	}
	x, ok := p.Place.Ordinal()
	if !ok {
		return fmt.Errorf("%w: place %q", ErrInvalidFeature, p.Place)
	}
	if !p.Voicing.Valid() {
		return fmt.Errorf("%w: voicing %q", ErrInvalidFeature, p.Voicing)
	}
	if math.Abs(p.Coordinate.Y-y) > rowTolerance || math.Abs(p.Coordinate.X-x) > rowTolerance {
		return ErrInconsistentCoordinate
	}
	return nil
}
