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

import "errors"

// Lookup and argument errors shared by every package.
var (
	// ErrNotFound indicates a symbol is absent from the catalog.
	ErrNotFound = errors.New("phoneme not found")

	// ErrInvalidArgument indicates malformed request parameters.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Domain validation errors
var (
	// ErrInvalidPhoneme indicates a Phoneme failed validation.
	ErrInvalidPhoneme = errors.New("invalid phoneme")

	// ErrEmptySymbol indicates the Symbol field is empty.
	ErrEmptySymbol = errors.New("symbol cannot be empty")

	// ErrInvalidCategory indicates an invalid Category value.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidFeature indicates a categorical feature outside its enumeration.
	ErrInvalidFeature = errors.New("invalid feature value")

	// ErrCoordinateOutOfRange indicates a coordinate outside its chart plane.
	ErrCoordinateOutOfRange = errors.New("coordinate outside chart plane")

	// ErrInconsistentCoordinate indicates a coordinate that does not encode the phoneme's features.
	ErrInconsistentCoordinate = errors.New("coordinate inconsistent with features")

	// ErrDuplicateSymbol indicates the same symbol appears twice in a catalog.
	ErrDuplicateSymbol = errors.New("duplicate symbol")
)
