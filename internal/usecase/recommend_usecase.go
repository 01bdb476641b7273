package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/DRSN-tech/substitution-engine/internal/cfg"
	"github.com/DRSN-tech/substitution-engine/internal/domain"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/DRSN-tech/substitution-engine/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RecommendUseCase реализует подбор заменителей: скоринг кандидатов каталога
// по косинусной близости векторов и многоуровневый отбор с деградацией
// (категория и цена -> категория -> весь каталог).
type RecommendUseCase struct {
	productRepo        ProductRepository
	recommendationRepo RecommendationRepository
	outboxRepo         OutboxRepository
	cacheRepo          CacheRepository
	dbPool             transaction.Transactional
	index              EmbeddingIndex
	scorer             Scorer
	eventEncoder       EventEncoderInfra
	logger             logger.Logger
	cfg                *cfg.RankerCfg
}

func NewRecommendUC(
	productRepo ProductRepository,
	recommendationRepo RecommendationRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	index EmbeddingIndex,
	scorer Scorer,
	eventEncoder EventEncoderInfra,
	logger logger.Logger,
	cfg *cfg.RankerCfg,
) *RecommendUseCase {
	return &RecommendUseCase{
		productRepo:        productRepo,
		recommendationRepo: recommendationRepo,
		outboxRepo:         outboxRepo,
		cacheRepo:          cacheRepo,
		dbPool:             dbPool,
		index:              index,
		scorer:             scorer,
		eventEncoder:       eventEncoder,
		logger:             logger,
		cfg:                cfg,
	}
}

// Recommend возвращает упорядоченный список заменителей для товара по имени.
// Пустой список — не ошибка. Аудит принятых рекомендаций пишется в фоне
// и не влияет на результат вызова.
func (r *RecommendUseCase) Recommend(ctx context.Context, req *RecommendReq) (*RecommendRes, error) {
	const op = "RecommendUseCase.Recommend"

	// Валидация и нормализация параметров запроса
	if err := r.validateRequest(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Без построенного индекса подбор невозможен, в каталог не ходим
	if !r.index.Ready() {
		return nil, e.Wrap(op, e.ErrIndexNotBuilt)
	}

	queryName := strings.TrimSpace(req.ProductName)
	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = r.cfg.DefaultMaxResults
	}
	dietaryFilter := req.DietaryFilter
	if strings.EqualFold(dietaryFilter, "none") {
		dietaryFilter = ""
	}

	// Поиск готового ответа в кэше: ключ включает поколение индекса,
	// поэтому после перестроения старые записи просто перестают читаться.
	// Кэш разделяется пользователями и ускоряет только ранжирование,
	// аудит пишется для каждого запроса с известным пользователем.
	key := r.cacheKey(queryName, dietaryFilter, req.MinRating, maxResults)
	if cached, ok, err := r.cacheRepo.GetSubstitutes(ctx, key); err == nil && ok {
		if req.UserID != nil && len(cached) > 0 {
			go r.auditRecommendations(req.UserID, queryName, cached)
		}
		return NewRecommendRes(cached), nil
	}

	// Выборка кандидатов: только товары в наличии, с учётом фильтров
	candidates, err := r.productRepo.ListInStock(ctx, NewCandidateFilter(dietaryFilter, req.MinRating))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(candidates) == 0 {
		return NewRecommendRes([]RankedSubstituteInfo{}), nil
	}

	// Вектор запроса считается тем же кодировщиком, что и индекс
	queryVector, err := r.index.EmbedQuery(ctx, queryName)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	scored := r.scoreCandidates(queryVector, candidates)
	if len(scored) == 0 {
		return NewRecommendRes([]RankedSubstituteInfo{}), nil
	}

	// Детерминированный порядок: близость убыв., рейтинг убыв., id возр.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Similarity != scored[j].Similarity {
			return scored[i].Similarity > scored[j].Similarity
		}
		if scored[i].Rating != scored[j].Rating {
			return scored[i].Rating > scored[j].Rating
		}
		return scored[i].ID < scored[j].ID
	})

	base := findBaseProduct(scored, queryName)
	selected := selectByTiers(scored, base, queryName, maxResults, r.cfg.PriceWindowCents)

	substitutes := make([]RankedSubstituteInfo, 0, len(selected))
	for _, s := range selected {
		substitutes = append(substitutes, NewRankedSubstituteInfo(s.Product, s.Similarity))
	}

	// Аудит рекомендаций: пишется в фоне и только для известного пользователя
	if req.UserID != nil && len(substitutes) > 0 {
		go r.auditRecommendations(req.UserID, queryName, substitutes)
	}

	// Фоновое наполнение кэша
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := r.cacheRepo.SetSubstitutes(bgCtx, key, substitutes); err != nil {
			r.logger.Warnf("Failed to cache substitutes in background: %v", e.Wrap(op, err))
		}
	}()

	return NewRecommendRes(substitutes), nil
}

// scoreCandidates считает близость каждого кандидата к вектору запроса.
// Кандидаты без вектора в индексе не участвуют в ранжировании.
func (r *RecommendUseCase) scoreCandidates(queryVector []float32, candidates []domain.Product) []domain.RankedSubstitute {
	scored := make([]domain.RankedSubstitute, 0, len(candidates))
	for _, candidate := range candidates {
		vector, ok := r.index.VectorFor(candidate.ID)
		if !ok {
			continue
		}

		similarity, err := r.scorer.Score(queryVector, vector)
		if err != nil {
			r.logger.Warnf("Skipping unscorable candidate %d: %v", candidate.ID, err)
			continue
		}

		scored = append(scored, domain.RankedSubstitute{Product: candidate, Similarity: similarity})
	}

	return scored
}

// findBaseProduct ищет среди оценённых кандидатов товар из запроса.
// Сравнение по имени без учёта регистра; при дублях имён берётся
// лучший по порядку сортировки.
func findBaseProduct(scored []domain.RankedSubstitute, queryName string) *domain.RankedSubstitute {
	for i := range scored {
		if strings.EqualFold(scored[i].Name, queryName) {
			return &scored[i]
		}
	}

	return nil
}

// selectByTiers применяет уровни отбора по порядку и останавливается
// на первом, давшем хотя бы один результат:
//   - точное соответствие: категория базового товара и цена в пределах окна;
//   - категория базового товара без ограничения по цене;
//   - весь каталог по близости.
//
// Товар из запроса исключается по имени без учёта регистра, повторная выдача
// одного product_id невозможна.
func selectByTiers(scored []domain.RankedSubstitute, base *domain.RankedSubstitute, queryName string, maxResults int, priceWindow int64) []domain.RankedSubstitute {
	if base != nil {
		tight := func(c *domain.RankedSubstitute) bool {
			return c.Category == base.Category && absInt64(c.Price-base.Price) <= priceWindow
		}
		if selected := takeMatching(scored, queryName, maxResults, tight); len(selected) > 0 {
			return selected
		}

		sameCategory := func(c *domain.RankedSubstitute) bool {
			return c.Category == base.Category
		}
		if selected := takeMatching(scored, queryName, maxResults, sameCategory); len(selected) > 0 {
			return selected
		}
	}

	return takeMatching(scored, queryName, maxResults, func(*domain.RankedSubstitute) bool { return true })
}

// takeMatching набирает до maxResults кандидатов в отсортированном порядке,
// пропуская сам запрошенный товар и уже выбранные id.
func takeMatching(scored []domain.RankedSubstitute, queryName string, maxResults int, match func(*domain.RankedSubstitute) bool) []domain.RankedSubstitute {
	selected := make([]domain.RankedSubstitute, 0, maxResults)
	seen := make(map[int64]struct{}, maxResults)

	for i := range scored {
		if len(selected) == maxResults {
			break
		}

		candidate := &scored[i]
		if strings.EqualFold(candidate.Name, queryName) {
			continue
		}
		if _, ok := seen[candidate.ID]; ok {
			continue
		}
		if !match(candidate) {
			continue
		}

		seen[candidate.ID] = struct{}{}
		selected = append(selected, *candidate)
	}

	return selected
}

// auditRecommendations записывает принятые рекомендации и outbox-события
// одной транзакцией. Любая ошибка логируется и не влияет на результат подбора.
func (r *RecommendUseCase) auditRecommendations(userID *int64, inputProduct string, substitutes []RankedSubstituteInfo) {
	const op = "RecommendUseCase.auditRecommendations"

	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.AuditTimeout)
	defer cancel()

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, r.dbPool)
	if err != nil {
		r.logger.Warnf("Audit transaction not started: %v", e.Wrap(op, err))
		return
	}
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}
			r.logger.Warnf("Recommendation audit failed. input_product: %s, error: %v", inputProduct, e.Wrap(op, err))
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	for _, substitute := range substitutes {
		var rec *domain.Recommendation
		rec, err = r.recommendationRepo.Append(ctx, domain.NewRecommendation(userID, inputProduct, substitute.Name, substitute.Similarity))
		if err != nil {
			return
		}

		var payload []byte
		payload, err = r.eventEncoder.EncodeRecommendationEvent(rec)
		if err != nil {
			return
		}

		_, err = r.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), EventTypeRecommendation, rec.ID, payload))
		if err != nil {
			return
		}
	}

	err = tx.Commit(ctx)
}

// validateRequest проверяет корректность параметров запроса на подбор.
func (r *RecommendUseCase) validateRequest(req *RecommendReq) error {
	if strings.TrimSpace(req.ProductName) == "" {
		return e.ErrProductNameRequired
	}

	if req.MinRating < 0 || req.MinRating > 5 {
		return e.ErrInvalidRating
	}

	if req.MaxResults < 0 {
		return e.ErrInvalidMaxResults
	}

	return nil
}

// cacheKey формирует ключ кэша ответа. Поколение индекса в ключе делает
// записи прошлых поколений недостижимыми без явной инвалидации.
func (r *RecommendUseCase) cacheKey(queryName, dietaryFilter string, minRating float64, maxResults int) string {
	return fmt.Sprintf("substitutes:g%d:%s:%s:%.2f:%d",
		r.index.Generation(),
		strings.ToLower(queryName),
		strings.ToLower(dietaryFilter),
		minRating,
		maxResults,
	)
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
