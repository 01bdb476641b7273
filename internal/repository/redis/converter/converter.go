//go:generate goverter gen github.com/DRSN-tech/substitution-engine/internal/repository/redis/converter

package converter

import (
	"github.com/DRSN-tech/substitution-engine/internal/usecase"
)

// goverter:converter
type RankedSubstituteConverter interface {
	ToRedisModel(entity *usecase.RankedSubstituteInfo) *RankedSubstituteRedisModel
	ToUseCase(model *RankedSubstituteRedisModel) *usecase.RankedSubstituteInfo
	ToArrRedisModel(entities []usecase.RankedSubstituteInfo) []RankedSubstituteRedisModel
	ToArrUseCase(models []RankedSubstituteRedisModel) []usecase.RankedSubstituteInfo
}
