package pgdb

import (
	"context"

	"github.com/DRSN-tech/substitution-engine/internal/domain"
	"github.com/DRSN-tech/substitution-engine/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/DRSN-tech/substitution-engine/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// RecommendationRepo хранит append-only аудит выданных рекомендаций.
type RecommendationRepo struct {
	pool *pgxpool.Pool
	conv converter.RecommendationConverter
}

func NewRecommendationRepo(pool *pgxpool.Pool, conv converter.RecommendationConverter) *RecommendationRepo {
	return &RecommendationRepo{
		pool: pool,
		conv: conv,
	}
}

// Append добавляет одну запись аудита в рамках текущей транзакции.
func (r *RecommendationRepo) Append(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := r.conv.ToModel(rec)
	query := `
		INSERT INTO recommendations (user_id, input_product, recommended_product, similarity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.UserID,
		model.InputProduct,
		model.RecommendedProduct,
		model.Similarity,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(model), nil
}
