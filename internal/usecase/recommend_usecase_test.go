package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/substitution-engine/internal/cfg"
	"github.com/DRSN-tech/substitution-engine/internal/domain"
	"github.com/DRSN-tech/substitution-engine/internal/index"
	"github.com/DRSN-tech/substitution-engine/internal/infrastructure/encoder"
	"github.com/DRSN-tech/substitution-engine/internal/infrastructure/encoder/tfidf"
	"github.com/DRSN-tech/substitution-engine/internal/usecase"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/DRSN-tech/substitution-engine/pkg/logger"
	"github.com/DRSN-tech/substitution-engine/pkg/vmath"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FAKES

type fakeProductRepo struct {
	mu       sync.Mutex
	products []domain.Product
}

func (f *fakeProductRepo) ListInStock(_ context.Context, filter *usecase.CandidateFilter) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.Product
	for _, p := range f.products {
		if !p.InStock() {
			continue
		}
		if filter != nil {
			if filter.DietaryFilter != "" &&
				!strings.Contains(strings.ToLower(p.DietaryTag), strings.ToLower(filter.DietaryFilter)) {
				continue
			}
			if p.Rating < filter.MinRating {
				continue
			}
		}
		out = append(out, p)
	}

	return out, nil
}

func (f *fakeProductRepo) ListAll(context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Product(nil), f.products...), nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, e.ErrProductNotFound
}

func (f *fakeProductRepo) UpsertBatch(_ context.Context, products []domain.Product) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, incoming := range products {
		replaced := false
		for i := range f.products {
			if strings.EqualFold(f.products[i].Name, incoming.Name) {
				incoming.ID = f.products[i].ID
				f.products[i] = incoming
				replaced = true
				break
			}
		}
		if !replaced {
			incoming.ID = int64(len(f.products) + 1)
			f.products = append(f.products, incoming)
		}
	}

	return len(products), nil
}

func (f *fakeProductRepo) ZeroStockMissing(_ context.Context, presentNames []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	present := make(map[string]struct{}, len(presentNames))
	for _, name := range presentNames {
		present[strings.ToLower(name)] = struct{}{}
	}

	var retired int64
	for i := range f.products {
		if _, ok := present[strings.ToLower(f.products[i].Name)]; ok {
			continue
		}
		if f.products[i].StockLevel > 0 {
			f.products[i].StockLevel = 0
			retired++
		}
	}

	return retired, nil
}

type fakeRecommendationRepo struct {
	mu      sync.Mutex
	records []domain.Recommendation
}

func (f *fakeRecommendationRepo) Append(_ context.Context, rec *domain.Recommendation) (*domain.Recommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := *rec
	stored.ID = int64(len(f.records) + 1)
	stored.CreatedAt = time.Now().UTC()
	f.records = append(f.records, stored)

	return &stored, nil
}

func (f *fakeRecommendationRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

type fakeOutboxRepo struct {
	mu     sync.Mutex
	events []usecase.OutboxEvent
}

func (f *fakeOutboxRepo) Create(_ context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := *event
	stored.ID = int64(len(f.events) + 1)
	f.events = append(f.events, stored)

	return &stored, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(context.Context, int) ([]*usecase.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(context.Context, int64) error { return nil }

func (f *fakeOutboxRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

// fakeCacheRepo промахивается, пока не задан hit, и считает записи.
type fakeCacheRepo struct {
	mu   sync.Mutex
	hit  []usecase.RankedSubstituteInfo
	sets int
}

func (f *fakeCacheRepo) GetSubstitutes(context.Context, string) ([]usecase.RankedSubstituteInfo, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hit != nil {
		return f.hit, true, nil
	}
	return nil, false, nil
}

func (f *fakeCacheRepo) SetSubstitutes(context.Context, string, []usecase.RankedSubstituteInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	return nil
}

func (f *fakeCacheRepo) setCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

type fakeEventEncoder struct{}

func (fakeEventEncoder) EncodeRecommendationEvent(rec *domain.Recommendation) ([]byte, error) {
	return []byte(rec.RecommendedProduct), nil
}

// fakeTx — pgx.Tx, которому не нужна база.
type fakeTx struct{}

func (fakeTx) Begin(context.Context) (pgx.Tx, error) { return fakeTx{}, nil }
func (fakeTx) Commit(context.Context) error          { return nil }
func (fakeTx) Rollback(context.Context) error        { return nil }
func (fakeTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (fakeTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }
func (fakeTx) LargeObjects() pgx.LargeObjects                         { return pgx.LargeObjects{} }
func (fakeTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (fakeTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (fakeTx) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }
func (fakeTx) Conn() *pgx.Conn                                         { return nil }

type fakeTxManager struct {
	mu      sync.Mutex
	began   int
	failure error
}

func (f *fakeTxManager) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	f.mu.Lock()
	f.began++
	failure := f.failure
	f.mu.Unlock()

	if failure != nil {
		return nil, failure
	}
	return fakeTx{}, nil
}

func (f *fakeTxManager) beginCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.began
}

// FIXTURE

// Цены в копейках, окно точного соответствия — 5000 (50 единиц валюты).
func groceryCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Head & Shoulders Shampoo", Brand: "Head & Shoulders", Category: "Hair Care", Price: 599, StockLevel: 10, Rating: 4.5, DietaryTag: "None", Description: "anti dandruff shampoo for daily hair care"},
		{ID: 2, Name: "Pantene Pro-V Shampoo", Brand: "Pantene", Category: "Hair Care", Price: 649, StockLevel: 8, Rating: 4.2, DietaryTag: "None", Description: "nourishing shampoo for smooth shiny hair"},
		{ID: 3, Name: "Dove Intense Repair Shampoo", Brand: "Dove", Category: "Hair Care", Price: 579, StockLevel: 5, Rating: 4.7, DietaryTag: "None", Description: "repair shampoo for dry damaged hair"},
		{ID: 4, Name: "Luxury Salon Shampoo", Brand: "Salon", Category: "Hair Care", Price: 9999, StockLevel: 3, Rating: 4.9, DietaryTag: "None", Description: "premium salon grade shampoo with keratin"},
		{ID: 5, Name: "Whole Wheat Bread", Brand: "Wonder", Category: "Bakery", Price: 350, StockLevel: 12, Rating: 4.0, DietaryTag: "None", Description: "fresh baked whole wheat bread contains gluten"},
		{ID: 6, Name: "Almond Flour Bread", Brand: "Simple Mills", Category: "Bakery", Price: 550, StockLevel: 6, Rating: 4.4, DietaryTag: "Gluten-Free", Description: "gluten free bread baked from almond flour"},
		{ID: 7, Name: "Discontinued Conditioner", Brand: "Old", Category: "Hair Care", Price: 610, StockLevel: 0, Rating: 4.8, DietaryTag: "None", Description: "conditioner no longer available"},
	}
}

type rankerFixture struct {
	uc        *usecase.RecommendUseCase
	products  *fakeProductRepo
	recs      *fakeRecommendationRepo
	outbox    *fakeOutboxRepo
	cache     *fakeCacheRepo
	txManager *fakeTxManager
}

func newRankerFixture(t *testing.T, catalog []domain.Product) *rankerFixture {
	t.Helper()

	log := logger.NewSlogLogger()
	idx := index.NewIndex(func() encoder.Encoder { return tfidf.NewEncoder() }, 4, log)
	require.NoError(t, idx.Build(context.Background(), catalog))

	f := &rankerFixture{
		products:  &fakeProductRepo{products: catalog},
		recs:      &fakeRecommendationRepo{},
		outbox:    &fakeOutboxRepo{},
		cache:     &fakeCacheRepo{},
		txManager: &fakeTxManager{},
	}
	f.uc = usecase.NewRecommendUC(
		f.products,
		f.recs,
		f.outbox,
		f.cache,
		f.txManager,
		idx,
		vmath.NewCosineScorer(),
		fakeEventEncoder{},
		log,
		&cfg.RankerCfg{
			DefaultMaxResults: 3,
			PriceWindowCents:  5000,
			BuildTimeout:      time.Minute,
			AuditTimeout:      time.Second,
		},
	)

	return f
}

// TESTS

func TestRecommend_TightMatchPreferred(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())

	res, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{ProductName: "Head & Shoulders Shampoo"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Substitutes)
	assert.LessOrEqual(t, len(res.Substitutes), 3)

	for _, s := range res.Substitutes {
		assert.Equal(t, "Hair Care", s.Category)
		assert.LessOrEqual(t, abs64(s.Price-599), int64(5000),
			"tight tier must keep the price within the window: %s", s.Name)
		assert.NotEqual(t, "Luxury Salon Shampoo", s.Name)
		assert.NotEqual(t, int64(7), s.ID, "out-of-stock products never appear")
	}
}

func TestRecommend_CategoryFallbackWhenPriceTooFar(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())

	// Все товары категории дальше ценового окна от базового
	res, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{ProductName: "Luxury Salon Shampoo"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Substitutes)

	for _, s := range res.Substitutes {
		assert.Equal(t, "Hair Care", s.Category)
		assert.Greater(t, abs64(s.Price-9999), int64(5000))
	}
}

func TestRecommend_GlobalFallbackForUnknownProduct(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())

	res, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{ProductName: "Unobtainium Polish"})
	require.NoError(t, err)
	assert.Len(t, res.Substitutes, 3, "global tier fills up to the default limit")
}

func TestRecommend_SelfExclusionIsCaseInsensitive(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())

	res, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{ProductName: "head & shoulders SHAMPOO"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Substitutes)

	for _, s := range res.Substitutes {
		assert.False(t, strings.EqualFold(s.Name, "Head & Shoulders Shampoo"))
	}
}

func TestRecommend_OrderingIsDeterministic(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())

	first, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{ProductName: "Whole Wheat Bread"})
	require.NoError(t, err)
	second, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{ProductName: "Whole Wheat Bread"})
	require.NoError(t, err)

	require.Equal(t, len(first.Substitutes), len(second.Substitutes))
	for i := range first.Substitutes {
		assert.Equal(t, first.Substitutes[i].ID, second.Substitutes[i].ID)
		assert.InDelta(t, first.Substitutes[i].Similarity, second.Substitutes[i].Similarity, 1e-9)
	}

	for i := 1; i < len(first.Substitutes); i++ {
		assert.GreaterOrEqual(t, first.Substitutes[i-1].Similarity, first.Substitutes[i].Similarity)
	}
}

func TestRecommend_NoDuplicateProducts(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())

	res, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{ProductName: "Pantene Pro-V Shampoo", MaxResults: 10})
	require.NoError(t, err)

	seen := make(map[int64]struct{})
	for _, s := range res.Substitutes {
		_, dup := seen[s.ID]
		assert.False(t, dup, "product %d returned twice", s.ID)
		seen[s.ID] = struct{}{}
	}
}

func TestRecommend_DietaryFilter(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())

	res, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{
		ProductName:   "Whole Wheat Bread",
		DietaryFilter: "gluten-free",
	})
	require.NoError(t, err)
	require.Len(t, res.Substitutes, 1)
	assert.Equal(t, "Almond Flour Bread", res.Substitutes[0].Name)
}

func TestRecommend_MinRatingFilter(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())

	res, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{
		ProductName: "Head & Shoulders Shampoo",
		MinRating:   4.5,
	})
	require.NoError(t, err)

	for _, s := range res.Substitutes {
		assert.GreaterOrEqual(t, s.Rating, 4.5)
	}
}

func TestRecommend_EmptyCandidateSetIsNotAnError(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())

	res, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{
		ProductName:   "Head & Shoulders Shampoo",
		DietaryFilter: "vegan",
	})
	require.NoError(t, err)
	assert.Empty(t, res.Substitutes)
}

func TestRecommend_MaxResultsCap(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())

	res, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{ProductName: "Unobtainium Polish", MaxResults: 1})
	require.NoError(t, err)
	assert.Len(t, res.Substitutes, 1)
}

func TestRecommend_Validation(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())

	_, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{ProductName: "   "})
	assert.ErrorIs(t, err, e.ErrProductNameRequired)

	_, err = f.uc.Recommend(context.Background(), &usecase.RecommendReq{ProductName: "Bread", MinRating: 5.5})
	assert.ErrorIs(t, err, e.ErrInvalidRating)

	_, err = f.uc.Recommend(context.Background(), &usecase.RecommendReq{ProductName: "Bread", MaxResults: -1})
	assert.ErrorIs(t, err, e.ErrInvalidMaxResults)
}

func TestRecommend_AuditWritesOneRecordPerSubstitute(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())

	userID := int64(42)
	res, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{
		ProductName: "Head & Shoulders Shampoo",
		UserID:      &userID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Substitutes)

	expected := len(res.Substitutes)
	assert.Eventually(t, func() bool {
		return f.recs.count() == expected && f.outbox.count() == expected
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRecommend_CacheHitStillWritesAudit(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())
	f.cache.hit = []usecase.RankedSubstituteInfo{
		{ID: 3, Name: "Dove Intense Repair Shampoo", Category: "Hair Care", Price: 579, Rating: 4.7, Similarity: 0.91},
	}

	userID := int64(42)
	res, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{
		ProductName: "Head & Shoulders Shampoo",
		UserID:      &userID,
	})
	require.NoError(t, err)
	require.Len(t, res.Substitutes, 1)
	assert.Equal(t, "Dove Intense Repair Shampoo", res.Substitutes[0].Name)

	// Ответ из кэша не освобождает от аудита принятых рекомендаций
	assert.Eventually(t, func() bool {
		return f.recs.count() == 1 && f.outbox.count() == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Готовый ответ повторно в кэш не пишется
	assert.Zero(t, f.cache.setCount())
}

func TestRecommend_CacheHitAnonymousSkipsAudit(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())
	f.cache.hit = []usecase.RankedSubstituteInfo{
		{ID: 3, Name: "Dove Intense Repair Shampoo", Category: "Hair Care", Price: 579, Rating: 4.7, Similarity: 0.91},
	}

	res, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{ProductName: "Head & Shoulders Shampoo"})
	require.NoError(t, err)
	require.Len(t, res.Substitutes, 1)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, f.recs.count())
	assert.Zero(t, f.txManager.beginCount())
}

func TestRecommend_AnonymousRequestSkipsAudit(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())

	_, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{ProductName: "Head & Shoulders Shampoo"})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, f.recs.count())
	assert.Zero(t, f.txManager.beginCount())
}

func TestRecommend_AuditFailureDoesNotFailTheCall(t *testing.T) {
	f := newRankerFixture(t, groceryCatalog())
	f.txManager.failure = errors.New("database is down")

	userID := int64(7)
	res, err := f.uc.Recommend(context.Background(), &usecase.RecommendReq{
		ProductName: "Head & Shoulders Shampoo",
		UserID:      &userID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Substitutes)

	assert.Eventually(t, func() bool {
		return f.txManager.beginCount() > 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Zero(t, f.recs.count())
}

func TestRecommend_IndexNotBuilt(t *testing.T) {
	log := logger.NewSlogLogger()
	idx := index.NewIndex(func() encoder.Encoder { return tfidf.NewEncoder() }, 4, log)

	uc := usecase.NewRecommendUC(
		&fakeProductRepo{products: groceryCatalog()},
		&fakeRecommendationRepo{},
		&fakeOutboxRepo{},
		&fakeCacheRepo{},
		&fakeTxManager{},
		idx,
		vmath.NewCosineScorer(),
		fakeEventEncoder{},
		log,
		&cfg.RankerCfg{DefaultMaxResults: 3, PriceWindowCents: 5000, BuildTimeout: time.Minute, AuditTimeout: time.Second},
	)

	_, err := uc.Recommend(context.Background(), &usecase.RecommendReq{ProductName: "Bread"})
	assert.ErrorIs(t, err, e.ErrIndexNotBuilt)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
