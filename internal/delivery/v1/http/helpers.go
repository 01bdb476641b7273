package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DRSN-tech/substitution-engine/internal/usecase"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RecommendRequest — тело запроса на подбор заменителей.
type RecommendRequest struct {
	ProductName   string  `json:"product_name"`
	DietaryFilter string  `json:"dietary_filter,omitempty"`
	MinRating     float64 `json:"min_rating,omitempty"`
	MaxResults    int     `json:"max_results,omitempty"`
	UserID        *int64  `json:"user_id,omitempty"`
}

// SubstituteResponse — один заменитель в ответе. Цена отдаётся десятичной
// строкой; во внутренних слоях она хранится в копейках.
type SubstituteResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Price       string  `json:"price"`
	StockLevel  int64   `json:"stock_level"`
	Rating      float64 `json:"rating"`
	DietaryTag  string  `json:"dietary_tag"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Similarity  float64 `json:"similarity"`
}

type RecommendResponse struct {
	Substitutes []SubstituteResponse `json:"substitutes"`
}

// ReloadCatalogRequest — тело запроса на загрузку снимка каталога.
type ReloadCatalogRequest struct {
	ObjectKey string `json:"object_key"`
}

type ReloadCatalogResponse struct {
	Loaded     int   `json:"loaded"`
	Retired    int64 `json:"retired"`
	Indexed    int   `json:"indexed"`
	Generation int64 `json:"generation"`
}

type RebuildIndexResponse struct {
	Indexed    int   `json:"indexed"`
	Generation int64 `json:"generation"`
}

type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Price       string  `json:"price"`
	StockLevel  int64   `json:"stock_level"`
	Rating      float64 `json:"rating"`
	DietaryTag  string  `json:"dietary_tag"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrInvalidRating):
		return http.StatusBadRequest, e.ErrInvalidRating.Error()
	case errors.Is(err, e.ErrInvalidMaxResults):
		return http.StatusBadRequest, e.ErrInvalidMaxResults.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrObjectKeyRequired):
		return http.StatusBadRequest, e.ErrObjectKeyRequired.Error()
	case errors.Is(err, e.ErrInvalidCatalogCSV):
		return http.StatusUnprocessableEntity, e.ErrInvalidCatalogCSV.Error()
	case errors.Is(err, e.ErrEmptyCatalog):
		return http.StatusUnprocessableEntity, e.ErrEmptyCatalog.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrIndexNotBuilt):
		return http.StatusServiceUnavailable, e.ErrIndexNotBuilt.Error()
	case errors.Is(err, e.ErrEncoderFailure):
		return http.StatusServiceUnavailable, e.ErrEncoderFailure.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// formatCentsToPrice переводит цену из копеек в десятичную строку ("5.99").
func formatCentsToPrice(cents int64) string {
	return decimal.NewFromInt(cents).Shift(-2).StringFixed(2)
}

func toSubstituteResponse(s usecase.RankedSubstituteInfo) SubstituteResponse {
	return SubstituteResponse{
		ID:          s.ID,
		Name:        s.Name,
		Brand:       s.Brand,
		Category:    s.Category,
		Price:       formatCentsToPrice(s.Price),
		StockLevel:  s.StockLevel,
		Rating:      s.Rating,
		DietaryTag:  s.DietaryTag,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		Similarity:  s.Similarity,
	}
}

func toRecommendResponse(res *usecase.RecommendRes) RecommendResponse {
	substitutes := make([]SubstituteResponse, 0, len(res.Substitutes))
	for _, s := range res.Substitutes {
		substitutes = append(substitutes, toSubstituteResponse(s))
	}

	return RecommendResponse{Substitutes: substitutes}
}

func toProductResponse(info *usecase.ProductInfo) ProductResponse {
	return ProductResponse{
		ID:          info.ID,
		Name:        info.Name,
		Brand:       info.Brand,
		Category:    info.Category,
		Price:       formatCentsToPrice(info.Price),
		StockLevel:  info.StockLevel,
		Rating:      info.Rating,
		DietaryTag:  info.DietaryTag,
		Description: info.Description,
		ImageURL:    info.ImageURL,
	}
}
