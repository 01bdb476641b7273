package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/substitution-engine/internal/usecase"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/DRSN-tech/substitution-engine/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// reloadCatalog
//
//	@Summary		Загрузка снимка каталога
//	@Description	Загружает CSV-снимок каталога из объектного хранилища и перестраивает индекс
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ReloadCatalogRequest	true	"Ключ объекта снимка"
//	@Success		200		{object}	ReloadCatalogResponse	"Результат загрузки"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Failure		422		{object}	ErrorResponse			"Непригодный снимок"
//	@Router			/catalog/reload [post]
func (h *CatalogHandler) reloadCatalog(w http.ResponseWriter, r *http.Request) {
	var req ReloadCatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := h.catalogUsecase.ReloadCatalog(r.Context(), usecase.NewReloadCatalogReq(req.ObjectKey))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, ReloadCatalogResponse{
		Loaded:     res.Loaded,
		Retired:    res.Retired,
		Indexed:    res.Indexed,
		Generation: res.Generation,
	})
}

// rebuildIndex
//
//	@Summary		Перестроение индекса
//	@Description	Перестраивает векторный индекс по текущему состоянию каталога
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	RebuildIndexResponse	"Результат перестроения"
//	@Failure		422	{object}	ErrorResponse			"Каталог пуст"
//	@Router			/index/rebuild [post]
func (h *CatalogHandler) rebuildIndex(w http.ResponseWriter, r *http.Request) {
	res, err := h.catalogUsecase.RebuildIndex(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, RebuildIndexResponse{
		Indexed:    res.Indexed,
		Generation: res.Generation,
	})
}

// getProduct
//
//	@Summary		Карточка товара
//	@Description	Возвращает товар каталога по идентификатору
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		int				true	"Идентификатор товара"
//	@Success		200	{object}	ProductResponse	"Товар"
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id} [get]
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	info, err := h.catalogUsecase.GetProductInfo(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(info))
}
