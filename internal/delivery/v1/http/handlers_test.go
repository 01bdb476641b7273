package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	v1Http "github.com/DRSN-tech/substitution-engine/internal/delivery/v1/http"
	"github.com/DRSN-tech/substitution-engine/internal/usecase"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/DRSN-tech/substitution-engine/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecommendUC struct {
	res *usecase.RecommendRes
	err error

	gotReq *usecase.RecommendReq
}

func (s *stubRecommendUC) Recommend(_ context.Context, req *usecase.RecommendReq) (*usecase.RecommendRes, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.res, nil
}

type stubCatalogUC struct {
	reloadRes  *usecase.ReloadCatalogRes
	rebuildRes *usecase.RebuildIndexRes
	product    *usecase.ProductInfo
	err        error
}

func (s *stubCatalogUC) ReloadCatalog(context.Context, *usecase.ReloadCatalogReq) (*usecase.ReloadCatalogRes, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.reloadRes, nil
}

func (s *stubCatalogUC) RebuildIndex(context.Context) (*usecase.RebuildIndexRes, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rebuildRes, nil
}

func (s *stubCatalogUC) GetProductInfo(context.Context, int64) (*usecase.ProductInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

func newTestRouter(recUC usecase.RecommendUC, catUC usecase.CatalogUC) *chi.Mux {
	mux := chi.NewRouter()
	router := v1Http.NewRouter(mux, logger.NewSlogLogger())
	router.Init(recUC, catUC)
	return mux
}

func TestRecommendHandler_Success(t *testing.T) {
	recUC := &stubRecommendUC{res: &usecase.RecommendRes{
		Substitutes: []usecase.RankedSubstituteInfo{
			{ID: 3, Name: "Dove Intense Repair Shampoo", Category: "Hair Care", Price: 579, Rating: 4.7, Similarity: 0.91},
		},
	}}
	mux := newTestRouter(recUC, &stubCatalogUC{})

	body := `{"product_name":"Pantene Pro-V Shampoo","dietary_filter":"none","max_results":5,"user_id":42}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var res v1Http.RecommendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Substitutes, 1)
	assert.Equal(t, "Dove Intense Repair Shampoo", res.Substitutes[0].Name)
	assert.Equal(t, "5.79", res.Substitutes[0].Price)

	require.NotNil(t, recUC.gotReq)
	assert.Equal(t, "Pantene Pro-V Shampoo", recUC.gotReq.ProductName)
	assert.Equal(t, 5, recUC.gotReq.MaxResults)
	require.NotNil(t, recUC.gotReq.UserID)
	assert.Equal(t, int64(42), *recUC.gotReq.UserID)
}

func TestRecommendHandler_EmptyResultIsOK(t *testing.T) {
	mux := newTestRouter(&stubRecommendUC{res: &usecase.RecommendRes{}}, &stubCatalogUC{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(`{"product_name":"Unknown"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"substitutes":[]}`, rec.Body.String())
}

func TestRecommendHandler_MalformedBody(t *testing.T) {
	mux := newTestRouter(&stubRecommendUC{}, &stubCatalogUC{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{e.ErrProductNameRequired, http.StatusBadRequest},
		{e.ErrInvalidRating, http.StatusBadRequest},
		{e.ErrInvalidMaxResults, http.StatusBadRequest},
		{e.ErrIndexNotBuilt, http.StatusServiceUnavailable},
		{e.Wrap("RecommendUseCase.Recommend", e.ErrIndexNotBuilt), http.StatusServiceUnavailable},
		{e.Wrap("RecommendUseCase.Recommend", e.ErrEncoderFailure), http.StatusServiceUnavailable},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		mux := newTestRouter(&stubRecommendUC{err: tc.err}, &stubCatalogUC{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(`{"product_name":"Shampoo"}`)))

		assert.Equal(t, tc.code, rec.Code, "error %v", tc.err)
	}
}

func TestCatalogHandler_Reload(t *testing.T) {
	catUC := &stubCatalogUC{reloadRes: &usecase.ReloadCatalogRes{Loaded: 10, Retired: 2, Indexed: 10, Generation: 3}}
	mux := newTestRouter(&stubRecommendUC{}, catUC)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/catalog/reload", strings.NewReader(`{"object_key":"snapshots/latest.csv"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"loaded":10,"retired":2,"indexed":10,"generation":3}`, rec.Body.String())
}

func TestCatalogHandler_ReloadUnprocessableSnapshot(t *testing.T) {
	mux := newTestRouter(&stubRecommendUC{}, &stubCatalogUC{err: e.Wrap("op", e.ErrInvalidCatalogCSV)})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/catalog/reload", strings.NewReader(`{"object_key":"snapshots/bad.csv"}`)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCatalogHandler_RebuildIndex(t *testing.T) {
	catUC := &stubCatalogUC{rebuildRes: &usecase.RebuildIndexRes{Indexed: 6, Generation: 2}}
	mux := newTestRouter(&stubRecommendUC{}, catUC)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/index/rebuild", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"indexed":6,"generation":2}`, rec.Body.String())
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	catUC := &stubCatalogUC{product: &usecase.ProductInfo{ID: 3, Name: "Dove Intense Repair Shampoo", Price: 579, Rating: 4.7}}
	mux := newTestRouter(&stubRecommendUC{}, catUC)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/3", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var res v1Http.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "5.79", res.Price)
}

func TestCatalogHandler_GetProductNotFound(t *testing.T) {
	mux := newTestRouter(&stubRecommendUC{}, &stubCatalogUC{err: e.ErrProductNotFound})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogHandler_GetProductBadID(t *testing.T) {
	mux := newTestRouter(&stubRecommendUC{}, &stubCatalogUC{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
