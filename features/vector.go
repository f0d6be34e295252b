// Package features derives the numeric comparison space from a catalog.
//
// Each phoneme maps to a three-component vector: its chart position followed
// by the one binary feature that position does not already encode
// (roundedness for vowels, voicing for consonants). Vectors of different
// categories live in unrelated spaces and are never differenced.
package features

import (
	"math"

	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/core"
)

// Dimensions is the length of every feature vector.
const Dimensions = 3

// Vector is [x, y, binaryFeature].
type Vector [Dimensions]float64

// FromPhoneme encodes a phoneme.
func FromPhoneme(p *core.Phoneme) Vector {
	return Vector{p.Coordinate.X, p.Coordinate.Y, p.BinaryFeature()}
}

// Position returns the chart coordinate part of the vector.
func (v Vector) Position() core.Coordinate { return core.Coordinate{X: v[0], Y: v[1]} }

// Binary returns the roundedness or voicing bit.
func (v Vector) Binary() float64 { return v[2] }

// Slice returns the vector as a float64 slice.
func (v Vector) Slice() []float64 { return []float64{v[0], v[1], v[2]} }

// PositionDistance is the Euclidean distance between the chart positions.
func PositionDistance(a, b Vector) float64 {
	return math.Hypot(a[0]-b[0], a[1]-b[1])
}

// FullDistance is the Euclidean distance over all components.
func FullDistance(a, b Vector) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Entry is a cached vector with the category it belongs to.
type Entry struct {
	Vector   Vector
	Category core.Category
}

// Set caches the vectors of one catalog. It is read-only once built.
type Set struct {
	entries map[string]Entry
}

// Build computes the vector of every phoneme in c.
func Build(c *catalog.Catalog) *Set {
	all := c.All()
	s := &Set{entries: make(map[string]Entry, len(all))}
	for i := range all {
		s.entries[all[i].Symbol] = Entry{
			Vector:   FromPhoneme(&all[i]),
			Category: all[i].Category,
		}
	}
	return s
}

// Get returns the cached entry for symbol.
func (s *Set) Get(symbol string) (Entry, bool) {
	e, ok := s.entries[symbol]
	return e, ok
}

// Len returns the number of cached vectors.
func (s *Set) Len() int { return len(s.entries) }
