package vmath

import (
	"testing"

	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine_SelfSimilarityIsOne(t *testing.T) {
	vectors := [][]float32{
		{1, 0, 0},
		{0.3, -0.7, 0.2, 0.9},
		{1e-3, 2e-3, 3e-3},
	}

	for _, v := range vectors {
		got, err := Cosine(v, v)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-6)
	}
}

func TestCosine_Symmetric(t *testing.T) {
	a := []float32{0.1, 0.5, -0.3, 0.8}
	b := []float32{-0.2, 0.4, 0.9, 0.1}

	ab, err := Cosine(a, b)
	require.NoError(t, err)
	ba, err := Cosine(b, a)
	require.NoError(t, err)

	assert.InDelta(t, ab, ba, 1e-12)
}

func TestCosine_OrthogonalAndOpposite(t *testing.T) {
	got, err := Cosine([]float32{1, 0}, []float32{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-9)

	got, err = Cosine([]float32{1, 2}, []float32{-1, -2})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, got, 1e-6)
}

func TestCosine_ZeroVectorIsZeroNotError(t *testing.T) {
	got, err := Cosine([]float32{0, 0, 0}, []float32{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = Cosine([]float32{0, 0}, []float32{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestCosine_DimensionMismatch(t *testing.T) {
	_, err := Cosine([]float32{1, 2, 3}, []float32{1, 2})
	require.ErrorIs(t, err, e.ErrDimensionMismatch)
}

func TestCosine_RangeBounds(t *testing.T) {
	vectors := [][]float32{
		{0.99, 0.01},
		{-0.5, 0.5},
		{3, 4},
		{-7, 0.001},
	}

	for _, a := range vectors {
		for _, b := range vectors {
			got, err := Cosine(a, b)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, -1.0-1e-9)
			assert.LessOrEqual(t, got, 1.0+1e-9)
		}
	}
}
