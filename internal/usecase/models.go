package usecase

import (
	"time"

	"github.com/DRSN-tech/substitution-engine/internal/domain"
)

// RECOMMEND USECASE

// RecommendReq — запрос на подбор заменителей товара.
type RecommendReq struct {
	ProductName   string
	DietaryFilter string
	MinRating     float64
	MaxResults    int
	UserID        *int64
}

// RecommendRes — упорядоченный список заменителей с оценками близости.
type RecommendRes struct {
	Substitutes []RankedSubstituteInfo
}

// RankedSubstituteInfo — DTO заменителя для внешнего использования.
type RankedSubstituteInfo struct {
	ID          int64
	Name        string
	Brand       string
	Category    string
	Price       int64 // в минимальных денежных единицах
	StockLevel  int64
	Rating      float64
	DietaryTag  string
	Description string
	ImageURL    string
	Similarity  float64
}

// CandidateFilter — фильтры выборки кандидатов из каталога.
// Пустой DietaryFilter и нулевой MinRating отключают соответствующий фильтр.
type CandidateFilter struct {
	DietaryFilter string
	MinRating     float64
}

// CATALOG USECASE

// ReloadCatalogReq — запрос на загрузку снимка каталога из объектного хранилища.
type ReloadCatalogReq struct {
	ObjectKey string
}

// ReloadCatalogRes — результат загрузки снимка каталога.
type ReloadCatalogRes struct {
	Loaded     int   // строк снимка записано в каталог
	Retired    int64 // товаров обнулено по наличию
	Indexed    int   // векторов в новом индексе
	Generation int64 // поколение индекса после перестроения
}

// RebuildIndexRes — результат перестроения индекса по текущему каталогу.
type RebuildIndexRes struct {
	Indexed    int
	Generation int64
}

// ProductInfo — DTO с информацией о товаре каталога.
type ProductInfo struct {
	ID          int64
	Name        string
	Brand       string
	Category    string
	Price       int64
	StockLevel  int64
	Rating      float64
	DietaryTag  string
	Description string
	ImageURL    string
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	EventKey int64
	Payload  []byte
}

// OUTBOX

type EventStatus string

const (
	Pending    EventStatus = "pending"
	Processing EventStatus = "processing"
	Processed  EventStatus = "processed"
)

const EventTypeRecommendation = "recommendation.created"

// OutboxEvent — запись транзакционного outbox для доставки событий в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   string
	EventKey    int64 // ключ партиционирования Kafka
	Payload     []byte
	Status      EventStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MAPPERS

func NewRecommendReq(productName, dietaryFilter string, minRating float64, maxResults int, userID *int64) *RecommendReq {
	return &RecommendReq{
		ProductName:   productName,
		DietaryFilter: dietaryFilter,
		MinRating:     minRating,
		MaxResults:    maxResults,
		UserID:        userID,
	}
}

func NewRecommendRes(substitutes []RankedSubstituteInfo) *RecommendRes {
	return &RecommendRes{Substitutes: substitutes}
}

func NewRankedSubstituteInfo(product domain.Product, similarity float64) RankedSubstituteInfo {
	return RankedSubstituteInfo{
		ID:          product.ID,
		Name:        product.Name,
		Brand:       product.Brand,
		Category:    product.Category,
		Price:       product.Price,
		StockLevel:  product.StockLevel,
		Rating:      product.Rating,
		DietaryTag:  product.DietaryTag,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		Similarity:  similarity,
	}
}

func NewCandidateFilter(dietaryFilter string, minRating float64) *CandidateFilter {
	return &CandidateFilter{
		DietaryFilter: dietaryFilter,
		MinRating:     minRating,
	}
}

func NewProductInfo(product *domain.Product) *ProductInfo {
	return &ProductInfo{
		ID:          product.ID,
		Name:        product.Name,
		Brand:       product.Brand,
		Category:    product.Category,
		Price:       product.Price,
		StockLevel:  product.StockLevel,
		Rating:      product.Rating,
		DietaryTag:  product.DietaryTag,
		Description: product.Description,
		ImageURL:    product.ImageURL,
	}
}

func NewReloadCatalogReq(objectKey string) *ReloadCatalogReq {
	return &ReloadCatalogReq{ObjectKey: objectKey}
}

func NewWriteRawMessageReq(eventKey int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		EventKey: eventKey,
		Payload:  payload,
	}
}

func NewOutboxEvent(eventID, eventType string, eventKey int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		EventKey:  eventKey,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}
