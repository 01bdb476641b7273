package domain

import "time"

// Recommendation — запись аудита об одной принятой рекомендации.
// Создаётся движком подбора как побочный эффект, только добавляется,
// никогда не изменяется и не удаляется.
type Recommendation struct {
	ID                 int64
	UserID             *int64 // nil — анонимный запрос
	InputProduct       string
	RecommendedProduct string
	Similarity         float64
	CreatedAt          time.Time
}

func NewRecommendation(userID *int64, inputProduct, recommendedProduct string, similarity float64) *Recommendation {
	return &Recommendation{
		UserID:             userID,
		InputProduct:       inputProduct,
		RecommendedProduct: recommendedProduct,
		Similarity:         similarity,
	}
}

// RankedSubstitute — товар-заменитель с оценкой схожести к запросу.
type RankedSubstitute struct {
	Product
	Similarity float64
}
