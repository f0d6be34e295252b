package similarity

import (
	"testing"

	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	e := newTestEngine(t)
	symbols := []string{"p", "b", "t", "a", "i"}

	m, err := e.Matrix(symbols)
	require.NoError(t, err)
	require.Equal(t, len(symbols), m.Len())
	assert.Equal(t, symbols, m.Symbols)

	for i := range symbols {
		assert.Equal(t, 1.0, m.At(i, i))
		for j := range symbols {
			assert.Equal(t, m.At(i, j), m.At(j, i))
			want, err := e.Similarity(symbols[i], symbols[j])
			require.NoError(t, err)
			assert.Equal(t, want, m.At(i, j), "%q/%q", symbols[i], symbols[j])
		}
	}
	assert.Equal(t, 0.0, m.At(0, 3))
}

func TestMatrix_WholeCategory(t *testing.T) {
	e := newTestEngine(t)
	vowels := catalog.Default().Vowels()

	m, err := e.Matrix(vowels)
	require.NoError(t, err)
	assert.Equal(t, len(vowels), m.Len())

	mean, ok := m.MeanOffDiagonal()
	require.True(t, ok)
	assert.Greater(t, mean, 0.0)
	assert.Less(t, mean, 1.0)
}

func TestMatrix_Edges(t *testing.T) {
	e := newTestEngine(t)

	m, err := e.Matrix(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	_, ok := m.MeanOffDiagonal()
	assert.False(t, ok)

	m, err = e.Matrix([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.At(0, 0))

	_, err = e.Matrix([]string{"a", "Q"})
	assert.ErrorIs(t, err, core.ErrNotFound)
}
