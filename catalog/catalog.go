package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/poiesic/phonemescape/core"
)

// Catalog is an immutable, ordered set of phonemes keyed by symbol.
type Catalog struct {
	phonemes    []core.Phoneme
	index       map[string]int
	vowels      []string
	consonants  []string
	fingerprint core.ID
}

// New builds a catalog from phonemes in the given order. Every phoneme is
// validated and symbols must be unique across both categories.
func New(phonemes ...core.Phoneme) (*Catalog, error) {
	if len(phonemes) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		phonemes: make([]core.Phoneme, 0, len(phonemes)),
		index:    make(map[string]int, len(phonemes)),
	}
	for i := range phonemes {
		p := phonemes[i]
		if err := core.ValidatePhoneme(&p); err != nil {
			return nil, err
		}
		if _, exists := c.index[p.Symbol]; exists {
			return nil, fmt.Errorf("%w: %q", core.ErrDuplicateSymbol, p.Symbol)
		}
		c.index[p.Symbol] = len(c.phonemes)
		c.phonemes = append(c.phonemes, p)
		if p.IsVowel() {
			c.vowels = append(c.vowels, p.Symbol)
		} else {
			c.consonants = append(c.consonants, p.Symbol)
		}
	}
	c.fingerprint = core.IDFromContent(c.canonical())
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the builtin IPA catalog: vowels first, then consonants.
func Default() *Catalog {
	defaultOnce.Do(func() {
		all := make([]core.Phoneme, 0, len(builtinVowels)+len(builtinConsonants))
		all = append(all, builtinVowels...)
		all = append(all, builtinConsonants...)
		c, err := New(all...)
		if err != nil {
			panic(fmt.Sprintf("catalog: builtin table is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Lookup returns the phoneme for symbol or core.ErrNotFound.
func (c *Catalog) Lookup(symbol string) (core.Phoneme, error) {
	i, ok := c.index[symbol]
	if !ok {
		return core.Phoneme{}, fmt.Errorf("%w: %q", core.ErrNotFound, symbol)
	}
	return c.phonemes[i], nil
}

// Category returns the category of symbol or core.ErrNotFound.
func (c *Catalog) Category(symbol string) (core.Category, error) {
	i, ok := c.index[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", core.ErrNotFound, symbol)
	}
	return c.phonemes[i].Category, nil
}

// Contains reports whether symbol is in the catalog.
func (c *Catalog) Contains(symbol string) bool {
	_, ok := c.index[symbol]
	return ok
}

// IsVowel reports whether symbol is a cataloged vowel.
func (c *Catalog) IsVowel(symbol string) bool {
	i, ok := c.index[symbol]
	return ok && c.phonemes[i].IsVowel()
}

// IsConsonant reports whether symbol is a cataloged consonant.
func (c *Catalog) IsConsonant(symbol string) bool {
	i, ok := c.index[symbol]
	return ok && c.phonemes[i].IsConsonant()
}

// Len returns the number of phonemes.
func (c *Catalog) Len() int { return len(c.phonemes) }

// Symbols returns every symbol in insertion order.
func (c *Catalog) Symbols() []string {
	out := make([]string, len(c.phonemes))
	for i := range c.phonemes {
		out[i] = c.phonemes[i].Symbol
	}
	return out
}

// Vowels returns the vowel symbols in insertion order.
func (c *Catalog) Vowels() []string { return append([]string(nil), c.vowels...) }

// Consonants returns the consonant symbols in insertion order.
func (c *Catalog) Consonants() []string { return append([]string(nil), c.consonants...) }

// SymbolsIn returns the symbols of one category, in insertion order.
func (c *Catalog) SymbolsIn(category core.Category) []string {
	switch category {
	case core.CategoryVowel:
		return c.Vowels()
	case core.CategoryConsonant:
		return c.Consonants()
	default:
		return nil
	}
}

// All returns a copy of every phoneme in insertion order.
func (c *Catalog) All() []core.Phoneme {
	return append([]core.Phoneme(nil), c.phonemes...)
}

// Filter returns the symbols of every phoneme matching all constraints, in
// insertion order.
func (c *Catalog) Filter(constraints Constraints) []string {
	var out []string
	for i := range c.phonemes {
		if constraints.Matches(&c.phonemes[i]) {
			out = append(out, c.phonemes[i].Symbol)
		}
	}
	return out
}

// Fingerprint identifies the catalog's content. Two catalogs with the same
// phonemes in the same order share a fingerprint.
func (c *Catalog) Fingerprint() core.ID { return c.fingerprint }

func (c *Catalog) canonical() string {
	var sb strings.Builder
	for i := range c.phonemes {
		p := &c.phonemes[i]
		f := p.FeatureValues()
		sb.WriteString(p.Category.String())
		for _, field := range []string{
			p.Symbol,
			strconv.FormatFloat(p.Coordinate.X, 'g', -1, 64),
			strconv.FormatFloat(p.Coordinate.Y, 'g', -1, 64),
			f[0], f[1], f[2],
			p.Description,
		} {
			sb.WriteByte('|')
			sb.WriteString(field)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
