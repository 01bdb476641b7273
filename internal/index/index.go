// Package index содержит индекс эмбеддингов каталога: отображение
// product_id -> вектор, построенное по текстам товаров.
package index

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/substitution-engine/internal/domain"
	"github.com/DRSN-tech/substitution-engine/internal/infrastructure/encoder"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/DRSN-tech/substitution-engine/pkg/logger"
	"github.com/google/uuid"
)

// snapshot — неизменяемое состояние одного успешного построения.
// Векторы и подготовленный энкодер живут и умирают вместе: запрос,
// пришедший во время перестроения, считается либо целиком по старому
// снимку, либо целиком по новому.
type snapshot struct {
	vectors    map[int64][]float32
	names      map[int64]string
	enc        encoder.Encoder
	dimension  int
	generation int64
	builtAt    time.Time
}

// Index владеет отображением товаров на векторы. Единственный писатель —
// Build; чтения (VectorFor, EmbedQuery) требуют только разделяемого доступа.
type Index struct {
	mu            sync.RWMutex
	current       *snapshot
	newEncoder    encoder.Factory
	maxConcurrent int
	logger        logger.Logger
}

func NewIndex(newEncoder encoder.Factory, maxConcurrent int, logger logger.Logger) *Index {
	const defaultMaxConcurrent = 8

	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}

	return &Index{
		newEncoder:    newEncoder,
		maxConcurrent: maxConcurrent,
		logger:        logger,
	}
}

// Build строит индекс по снимку каталога и атомарно подменяет предыдущий.
// Товары с пустым названием пропускаются. При любой ошибке кодирования
// прежний индекс (если был) остаётся действующим.
func (i *Index) Build(ctx context.Context, products []domain.Product) error {
	const op = "Index.Build"

	indexable := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		indexable = append(indexable, p)
	}
	if len(indexable) == 0 {
		return e.Wrap(op, e.ErrEmptyCatalog)
	}

	corpus := make([]string, len(indexable))
	for n, p := range indexable {
		corpus[n] = p.EmbeddingText()
	}

	enc := i.newEncoder()
	if err := enc.Prepare(ctx, corpus); err != nil {
		return e.Wrap(op, err)
	}

	vectors, err := i.encodeAll(ctx, enc, indexable, corpus)
	if err != nil {
		return e.Wrap(op, err)
	}

	dimension := 0
	for _, vec := range vectors {
		if dimension == 0 {
			dimension = len(vec)
			continue
		}
		if len(vec) != dimension {
			return e.Wrap(op, e.ErrDimensionMismatch)
		}
	}

	names := make(map[int64]string, len(indexable))
	for _, p := range indexable {
		names[p.ID] = p.Name
	}

	i.mu.Lock()
	var generation int64 = 1
	if i.current != nil {
		generation = i.current.generation + 1
	}
	i.current = &snapshot{
		vectors:    vectors,
		names:      names,
		enc:        enc,
		dimension:  dimension,
		generation: generation,
		builtAt:    time.Now().UTC(),
	}
	i.mu.Unlock()

	i.logger.Infof("embedding index built: %d vectors, dim %d, generation %d", len(vectors), dimension, generation)
	return nil
}

// encodeAll кодирует тексты товаров параллельно с ограничением конкурентности.
// Первая же ошибка отменяет остальные задания.
func (i *Index) encodeAll(ctx context.Context, enc encoder.Encoder, products []domain.Product, corpus []string) (map[int64][]float32, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		id  int64
		vec []float32
	}

	resCh := make(chan result, len(products))
	errCh := make(chan error, len(products))
	sem := make(chan struct{}, i.maxConcurrent)

	var wg sync.WaitGroup
	for n, p := range products {
		wg.Add(1)
		go func() {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
			defer func() { <-sem }()

			vec, err := enc.EncodeText(ctx, corpus[n])
			if err != nil {
				errCh <- fmt.Errorf("product %d: %w", p.ID, err)
				cancel()
				return
			}

			resCh <- result{id: p.ID, vec: vec}
		}()
	}

	go func() {
		wg.Wait()
		close(resCh)
		close(errCh)
	}()

	// Каналы буферизованы на все задания: после отмены воркеры завершаются
	// без блокировки, а закрытый resCh завершает сбор результатов.
	vectors := make(map[int64][]float32, len(products))
	for res := range resCh {
		vectors[res.id] = res.vec
	}

	// Ошибка кодирования информативнее сопутствующих ошибок отмены
	var buildErr error
	for err := range errCh {
		if buildErr == nil || errors.Is(buildErr, context.Canceled) {
			buildErr = err
		}
	}
	if buildErr != nil {
		return nil, buildErr
	}

	return vectors, nil
}

// VectorFor возвращает вектор товара из последнего построения, O(1).
func (i *Index) VectorFor(productID int64) ([]float32, bool) {
	s := i.snapshot()
	if s == nil {
		return nil, false
	}

	vec, ok := s.vectors[productID]
	return vec, ok
}

// EmbedQuery кодирует произвольный текст запроса той же функцией,
// которой был построен текущий индекс.
func (i *Index) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	const op = "Index.EmbedQuery"

	s := i.snapshot()
	if s == nil {
		return nil, e.Wrap(op, e.ErrIndexNotBuilt)
	}

	vec, err := s.enc.EncodeText(ctx, text)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return vec, nil
}

// Ready сообщает, было ли завершено хотя бы одно построение.
func (i *Index) Ready() bool {
	return i.snapshot() != nil
}

// Size возвращает количество векторов в текущем индексе.
func (i *Index) Size() int {
	s := i.snapshot()
	if s == nil {
		return 0
	}
	return len(s.vectors)
}

// Generation возвращает номер поколения текущего индекса (0 — не построен).
// Используется как часть ключа кэша рекомендаций: смена поколения
// автоматически обесценивает все прежние записи.
func (i *Index) Generation() int64 {
	s := i.snapshot()
	if s == nil {
		return 0
	}
	return s.generation
}

// Export возвращает векторы текущего индекса как доменные эмбеддинги
// (для зеркалирования во внешнее векторное хранилище).
// Порядок детерминирован: по возрастанию product_id.
func (i *Index) Export() []domain.Embedding {
	s := i.snapshot()
	if s == nil {
		return nil
	}

	ids := make([]int64, 0, len(s.vectors))
	for id := range s.vectors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	embeddings := make([]domain.Embedding, 0, len(ids))
	for _, id := range ids {
		payload := domain.NewPayload(id, s.names[id], s.enc.Name())
		payload["generation"] = s.generation
		embeddings = append(embeddings, *domain.NewEmbedding(uuid.NewString(), s.vectors[id], payload))
	}

	return embeddings
}

func (i *Index) snapshot() *snapshot {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.current
}
