package catalog

import (
	"fmt"
	"sort"

	"github.com/poiesic/phonemescape/core"
)

// Constraints selects phonemes by categorical feature. Zero-valued fields are
// unconstrained. Vowel features are ignored for consonants and consonant
// features are ignored for vowels, so {Height: close, Place: bilabial}
// selects close vowels and bilabial consonants.
type Constraints struct {
	Category    core.Category
	Height      core.Height
	Backness    core.Backness
	Roundedness core.Roundedness
	Manner      core.Manner
	Place       core.Place
	Voicing     core.Voicing
}

// IsZero reports whether no constraint is set.
func (c Constraints) IsZero() bool { return c == Constraints{} }

// Matches reports whether p satisfies every constraint relevant to its category.
func (c Constraints) Matches(p *core.Phoneme) bool {
	if c.Category != 0 && c.Category != p.Category {
		return false
	}
	switch p.Category {
	case core.CategoryVowel:
		return (c.Height == "" || c.Height == p.Height) &&
			(c.Backness == "" || c.Backness == p.Backness) &&
			(c.Roundedness == "" || c.Roundedness == p.Roundedness)
	case core.CategoryConsonant:
		return (c.Manner == "" || c.Manner == p.Manner) &&
			(c.Place == "" || c.Place == p.Place) &&
			(c.Voicing == "" || c.Voicing == p.Voicing)
	default:
		return false
	}
}

// ParseConstraints builds Constraints from a feature-name → value map such as
// {"height": "close", "place": "bilabial"}. Unknown names or values fail with
// core.ErrInvalidArgument.
func ParseConstraints(m map[string]string) (Constraints, error) {
	var c Constraints

	// Sorted so the first reported error is stable.
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, name := range keys {
		value := m[name]
		ok := true
		switch name {
		case core.FeatureCategory:
			cat, err := core.ParseCategory(value)
			if err != nil {
				return Constraints{}, fmt.Errorf("%w: %w", core.ErrInvalidArgument, err)
			}
			c.Category = cat
		case core.FeatureHeight:
			c.Height = core.Height(value)
			_, ok = c.Height.Ordinal()
		case core.FeatureBackness:
			c.Backness = core.Backness(value)
			_, ok = c.Backness.Ordinal()
		case core.FeatureRoundedness:
			c.Roundedness = core.Roundedness(value)
			ok = c.Roundedness.Valid()
		case core.FeatureManner:
			c.Manner = core.Manner(value)
			_, ok = c.Manner.Ordinal()
		case core.FeaturePlace:
			c.Place = core.Place(value)
			_, ok = c.Place.Ordinal()
		case core.FeatureVoicing:
			c.Voicing = core.Voicing(value)
			ok = c.Voicing.Valid()
		default:
			return Constraints{}, fmt.Errorf("%w: %w: %q", core.ErrInvalidArgument, ErrUnknownFeature, name)
		}
		if !ok {
			return Constraints{}, fmt.Errorf("%w: %w: %s=%q", core.ErrInvalidArgument, core.ErrInvalidFeature, name, value)
		}
	}
	return c, nil
}
