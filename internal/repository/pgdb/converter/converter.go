//go:generate goverter gen github.com/DRSN-tech/substitution-engine/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/DRSN-tech/substitution-engine/internal/domain"
	"github.com/DRSN-tech/substitution-engine/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []*ProductModel) []domain.Product
}

// RecommendationConverter преобразует записи аудита рекомендаций между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerInt64
type RecommendationConverter interface {
	ToModel(entity *domain.Recommendation) *RecommendationModel
	ToEntity(model *RecommendationModel) *domain.Recommendation
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertEventStatusToString
// goverter:extend ConvertStringToEventStatus
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerInt64(v *int64) *int64 {
	return v
}

func ConvertEventStatusToString(s usecase.EventStatus) string {
	return string(s)
}

func ConvertStringToEventStatus(s string) usecase.EventStatus {
	return usecase.EventStatus(s)
}
