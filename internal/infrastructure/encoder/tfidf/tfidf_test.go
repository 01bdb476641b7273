package tfidf

import (
	"context"
	"testing"

	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var corpus = []string{
	"Head & Shoulders Shampoo anti dandruff formula",
	"Dove Hair Therapy Shampoo nourishes hair",
	"Tresemme Keratin Smooth Shampoo argan oil",
	"Whole wheat bread with seeds",
	"Gluten free rice crackers",
}

func TestEncoder_PrepareThenEncode(t *testing.T) {
	enc := NewEncoder()
	require.NoError(t, enc.Prepare(context.Background(), corpus))

	vec, err := enc.EncodeText(context.Background(), "dandruff shampoo")
	require.NoError(t, err)
	assert.Len(t, vec, enc.Dimension())

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, norm, 1e-5, "non-empty vector must be L2-normalized")
}

func TestEncoder_Deterministic(t *testing.T) {
	first := NewEncoder()
	require.NoError(t, first.Prepare(context.Background(), corpus))
	second := NewEncoder()
	require.NoError(t, second.Prepare(context.Background(), corpus))

	require.Equal(t, first.Dimension(), second.Dimension())

	a, err := first.EncodeText(context.Background(), "keratin shampoo")
	require.NoError(t, err)
	b, err := second.EncodeText(context.Background(), "keratin shampoo")
	require.NoError(t, err)

	for i := range a {
		assert.InDelta(t, a[i], b[i], 1e-6)
	}
}

func TestEncoder_UnknownTokensGiveZeroVector(t *testing.T) {
	enc := NewEncoder()
	require.NoError(t, enc.Prepare(context.Background(), corpus))

	vec, err := enc.EncodeText(context.Background(), "unobtainium polish")
	require.NoError(t, err)

	for _, v := range vec {
		assert.Zero(t, v)
	}
}

func TestEncoder_EncodeBeforePrepare(t *testing.T) {
	enc := NewEncoder()

	_, err := enc.EncodeText(context.Background(), "anything")
	require.ErrorIs(t, err, e.ErrIndexNotBuilt)
}

func TestEncoder_EmptyCorpus(t *testing.T) {
	enc := NewEncoder()

	err := enc.Prepare(context.Background(), nil)
	require.ErrorIs(t, err, e.ErrEmptyCorpus)

	err = enc.Prepare(context.Background(), []string{"", "   "})
	require.ErrorIs(t, err, e.ErrEmptyCorpus)
}
