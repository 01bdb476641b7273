package usecase

import (
	"context"

	"github.com/DRSN-tech/substitution-engine/internal/domain"
)

// EmbeddingIndex — индекс векторных представлений каталога.
// Build подменяет индекс целиком, читающие методы работают со снимком.
type EmbeddingIndex interface {
	Build(ctx context.Context, products []domain.Product) error
	VectorFor(productID int64) ([]float32, bool)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	Ready() bool
	Size() int
	Generation() int64
	Export() []domain.Embedding
}

type Scorer interface {
	Score(a, b []float32) (float64, error)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// EventEncoderInfra кодирует доменные события в байты для outbox.
type EventEncoderInfra interface {
	EncodeRecommendationEvent(rec *domain.Recommendation) ([]byte, error)
}
