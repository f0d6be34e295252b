package catalog

import (
	"testing"

	"github.com/poiesic/phonemescape/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NotNil(t, c)

	assert.Equal(t, 87, c.Len())
	assert.Len(t, c.Vowels(), 28)
	assert.Len(t, c.Consonants(), 59)
	assert.Same(t, c, Default())

	symbols := c.Symbols()
	assert.Equal(t, "i", symbols[0])
	assert.Equal(t, "p", symbols[len(c.Vowels())])
	assert.Equal(t, "ʟ", symbols[len(symbols)-1])
}

func TestDefault_CategoriesAreDisjoint(t *testing.T) {
	c := Default()
	for _, s := range c.Symbols() {
		assert.NotEqual(t, c.IsVowel(s), c.IsConsonant(s), "symbol %q", s)
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	t.Run("vowel", func(t *testing.T) {
		p, err := c.Lookup("i")
		require.NoError(t, err)
		assert.Equal(t, core.CategoryVowel, p.Category)
		assert.Equal(t, core.Coordinate{X: 0, Y: 0}, p.Coordinate)
		assert.Equal(t, core.HeightClose, p.Height)
		assert.Equal(t, "Close front unrounded vowel", p.Description)
	})

	t.Run("consonant", func(t *testing.T) {
		p, err := c.Lookup("ʃ")
		require.NoError(t, err)
		assert.Equal(t, core.CategoryConsonant, p.Category)
		assert.Equal(t, core.PlacePostalveolar, p.Place)
		assert.Equal(t, core.Voiceless, p.Voicing)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := c.Lookup("Q")
		assert.ErrorIs(t, err, core.ErrNotFound)

		_, err = c.Category("Q")
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("returned record is a copy", func(t *testing.T) {
		p, err := c.Lookup("a")
		require.NoError(t, err)
		p.Description = "changed"

		again, err := c.Lookup("a")
		require.NoError(t, err)
		assert.Equal(t, "Open front unrounded vowel", again.Description)
	})
}

func TestNew(t *testing.T) {
	i := builtinVowels[0]
	p := builtinConsonants[0]

	t.Run("keeps insertion order", func(t *testing.T) {
		c, err := New(p, i)
		require.NoError(t, err)
		assert.Equal(t, []string{"p", "i"}, c.Symbols())
		assert.Equal(t, []string{"i"}, c.Vowels())
		assert.Equal(t, []string{"p"}, c.Consonants())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := New()
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})

	t.Run("rejects duplicates across categories", func(t *testing.T) {
		dup := p
		dup.Symbol = "i"
		_, err := New(i, dup)
		assert.ErrorIs(t, err, core.ErrDuplicateSymbol)
	})

	t.Run("rejects invalid phonemes", func(t *testing.T) {
		bad := i
		bad.Coordinate = core.Coordinate{X: 0, Y: 3}
		_, err := New(bad)
		assert.ErrorIs(t, err, core.ErrInconsistentCoordinate)
	})
}

func TestFingerprint(t *testing.T) {
	a, err := New(builtinVowels[:3]...)
	require.NoError(t, err)
	b, err := New(builtinVowels[:3]...)
	require.NoError(t, err)
	c, err := New(builtinVowels[1:4]...)
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestSymbolsIn(t *testing.T) {
	c := Default()
	assert.Equal(t, c.Vowels(), c.SymbolsIn(core.CategoryVowel))
	assert.Equal(t, c.Consonants(), c.SymbolsIn(core.CategoryConsonant))
	assert.Nil(t, c.SymbolsIn(core.Category(0)))
}
