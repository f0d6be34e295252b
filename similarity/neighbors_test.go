package similarity

import (
	"testing"

	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestNeighbors_Vowels(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.NearestNeighbors("i", catalog.Default().Vowels(), 5)
	require.NoError(t, err)
	require.Len(t, got, 5)

	symbols := make([]string, len(got))
	for i, n := range got {
		symbols[i] = n.Symbol
		assert.NotEqual(t, "i", n.Symbol)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].Score, n.Score)
		}
	}
	assert.Equal(t, []string{"ɪ", "y", "ɨ", "e", "ʏ"}, symbols)
}

func TestNearestNeighbors_WholeCatalog(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.NearestNeighbors("p", nil, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].Symbol)
	for _, n := range got {
		assert.True(t, catalog.Default().IsConsonant(n.Symbol))
	}
}

func TestNearestNeighbors_Edges(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.NearestNeighbors("i", []string{"e", "a"}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = e.NearestNeighbors("i", []string{"e", "Q", "a"}, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e", got[0].Symbol)

	_, err = e.NearestNeighbors("i", nil, -1)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = e.NearestNeighbors("Q", nil, 3)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestNearestNeighbors_TiesKeepPoolOrder(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.NearestNeighbors("i", []string{"p", "t", "k"}, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "p", got[0].Symbol)
	assert.Equal(t, "t", got[1].Symbol)
	assert.Equal(t, "k", got[2].Symbol)
	for _, n := range got {
		assert.Equal(t, 0.0, n.Score)
	}
}
