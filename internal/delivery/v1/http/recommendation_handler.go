package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/substitution-engine/internal/usecase"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/DRSN-tech/substitution-engine/pkg/logger"
)

type RecommendationHandler struct {
	recommendUsecase usecase.RecommendUC
	logger           logger.Logger
}

func NewRecommendationHandler(recommendUsecase usecase.RecommendUC, logger logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{recommendUsecase: recommendUsecase, logger: logger}
}

// recommend
//
//	@Summary		Подбор заменителей товара
//	@Description	Возвращает упорядоченный список товаров-заменителей по имени товара
//	@Tags			recommendations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RecommendRequest	true	"Параметры подбора"
//	@Success		200		{object}	RecommendResponse	"Список заменителей (может быть пустым)"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации"
//	@Failure		503		{object}	ErrorResponse		"Индекс не построен"
//	@Router			/recommendations [post]
func (h *RecommendationHandler) recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := h.recommendUsecase.Recommend(r.Context(), usecase.NewRecommendReq(
		req.ProductName,
		req.DietaryFilter,
		req.MinRating,
		req.MaxResults,
		req.UserID,
	))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toRecommendResponse(res))
}
