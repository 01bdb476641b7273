package index

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/substitution-engine/internal/domain"
	"github.com/DRSN-tech/substitution-engine/internal/infrastructure/encoder"
	"github.com/DRSN-tech/substitution-engine/internal/infrastructure/encoder/tfidf"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/DRSN-tech/substitution-engine/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackendDown = errors.New("encoder backend down")

// failingEncoder эмулирует недоступный бэкенд векторизации.
type failingEncoder struct{}

func (failingEncoder) Name() string                                    { return "failing" }
func (failingEncoder) Prepare(context.Context, []string) error         { return nil }
func (failingEncoder) EncodeText(context.Context, string) ([]float32, error) {
	return nil, errBackendDown
}

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Head & Shoulders Shampoo", Description: "anti dandruff shampoo for daily care", StockLevel: 12},
		{ID: 2, Name: "Dove Hair Therapy Shampoo", Description: "nourishes hair and repairs damage", StockLevel: 20},
		{ID: 3, Name: "Whole Wheat Bread", Description: "baked with whole grains", StockLevel: 7},
		{ID: 4, Name: "", Description: "nameless product must be skipped", StockLevel: 3},
	}
}

func tfidfFactory() encoder.Factory {
	return func() encoder.Encoder { return tfidf.NewEncoder() }
}

func TestIndex_BuildIndexesNonEmptyNamesOnly(t *testing.T) {
	idx := NewIndex(tfidfFactory(), 4, logger.NewSlogLogger())

	require.NoError(t, idx.Build(context.Background(), testCatalog()))

	assert.True(t, idx.Ready())
	assert.Equal(t, 3, idx.Size())

	_, ok := idx.VectorFor(1)
	assert.True(t, ok)
	_, ok = idx.VectorFor(4)
	assert.False(t, ok, "product with empty name must not be indexed")
	_, ok = idx.VectorFor(999)
	assert.False(t, ok)
}

func TestIndex_EmbedQueryMatchesBuildEncoding(t *testing.T) {
	idx := NewIndex(tfidfFactory(), 4, logger.NewSlogLogger())
	catalog := testCatalog()
	require.NoError(t, idx.Build(context.Background(), catalog))

	queryVec, err := idx.EmbedQuery(context.Background(), catalog[0].EmbeddingText())
	require.NoError(t, err)

	stored, ok := idx.VectorFor(1)
	require.True(t, ok)
	require.Equal(t, len(stored), len(queryVec))
	for i := range stored {
		assert.InDelta(t, stored[i], queryVec[i], 1e-6)
	}
}

func TestIndex_RebuildIsDeterministic(t *testing.T) {
	idx := NewIndex(tfidfFactory(), 4, logger.NewSlogLogger())
	catalog := testCatalog()

	require.NoError(t, idx.Build(context.Background(), catalog))
	first, ok := idx.VectorFor(2)
	require.True(t, ok)

	require.NoError(t, idx.Build(context.Background(), catalog))
	second, ok := idx.VectorFor(2)
	require.True(t, ok)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.InDelta(t, first[i], second[i], 1e-6)
	}
	assert.Equal(t, int64(2), idx.Generation())
}

func TestIndex_FailedBuildKeepsPreviousSnapshot(t *testing.T) {
	calls := 0
	factory := func() encoder.Encoder {
		calls++
		if calls > 1 {
			return failingEncoder{}
		}
		return tfidf.NewEncoder()
	}

	idx := NewIndex(factory, 4, logger.NewSlogLogger())
	require.NoError(t, idx.Build(context.Background(), testCatalog()))
	sizeBefore := idx.Size()
	genBefore := idx.Generation()

	err := idx.Build(context.Background(), testCatalog())
	require.Error(t, err)
	assert.ErrorIs(t, err, errBackendDown,
		"build must surface the encoder error, not a companion cancellation")

	assert.True(t, idx.Ready(), "previous index must stay valid after a failed rebuild")
	assert.Equal(t, sizeBefore, idx.Size())
	assert.Equal(t, genBefore, idx.Generation())

	_, err = idx.EmbedQuery(context.Background(), "shampoo")
	assert.NoError(t, err, "queries still served by the old snapshot")
}

func TestIndex_EmbedQueryBeforeBuild(t *testing.T) {
	idx := NewIndex(tfidfFactory(), 4, logger.NewSlogLogger())

	_, err := idx.EmbedQuery(context.Background(), "anything")
	require.ErrorIs(t, err, e.ErrIndexNotBuilt)
	assert.False(t, idx.Ready())
	assert.Equal(t, int64(0), idx.Generation())
}

func TestIndex_BuildEmptyCatalog(t *testing.T) {
	idx := NewIndex(tfidfFactory(), 4, logger.NewSlogLogger())

	err := idx.Build(context.Background(), nil)
	require.ErrorIs(t, err, e.ErrEmptyCatalog)

	err = idx.Build(context.Background(), []domain.Product{{ID: 1, Name: "   "}})
	require.ErrorIs(t, err, e.ErrEmptyCatalog)
}

func TestIndex_UniformDimensionAcrossSnapshot(t *testing.T) {
	idx := NewIndex(tfidfFactory(), 4, logger.NewSlogLogger())
	require.NoError(t, idx.Build(context.Background(), testCatalog()))

	dim := -1
	for _, id := range []int64{1, 2, 3} {
		vec, ok := idx.VectorFor(id)
		require.True(t, ok)
		if dim == -1 {
			dim = len(vec)
			continue
		}
		assert.Equal(t, dim, len(vec), "all vectors of one build share the encoding dimension")
	}
}

func TestIndex_ExportSortedByProductID(t *testing.T) {
	idx := NewIndex(tfidfFactory(), 4, logger.NewSlogLogger())
	require.NoError(t, idx.Build(context.Background(), testCatalog()))

	embeddings := idx.Export()
	require.Len(t, embeddings, 3)

	var prev int64 = -1
	for _, emb := range embeddings {
		id, ok := emb.Payload["product_id"].(int64)
		require.True(t, ok)
		assert.Greater(t, id, prev)
		prev = id
		assert.NotEmpty(t, emb.Vector)
	}
}
