package usecase

import (
	"context"
	"io"

	"github.com/DRSN-tech/substitution-engine/internal/domain"
)

type ProductRepository interface {
	ListInStock(ctx context.Context, filter *CandidateFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	UpsertBatch(ctx context.Context, products []domain.Product) (int, error)
	ZeroStockMissing(ctx context.Context, presentNames []string) (int64, error)
}

type RecommendationRepository interface {
	Append(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetSubstitutes(ctx context.Context, key string) ([]RankedSubstituteInfo, bool, error)
	SetSubstitutes(ctx context.Context, key string, substitutes []RankedSubstituteInfo) error
}

// CatalogSourceRepository отдаёт снимок каталога из объектного хранилища.
type CatalogSourceRepository interface {
	Fetch(ctx context.Context, objectKey string) (io.ReadCloser, error)
}

// EmbeddingMirrorRepository хранит копию векторов индекса во внешней векторной БД.
type EmbeddingMirrorRepository interface {
	Replace(ctx context.Context, embeddings []domain.Embedding) error
}
