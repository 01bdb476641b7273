package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/substitution-engine/internal/cfg"
	"github.com/DRSN-tech/substitution-engine/internal/domain"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/DRSN-tech/substitution-engine/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// CatalogUseCase управляет каталогом: загрузка снимков из объектного
// хранилища, перестроение векторного индекса и выдача карточек товаров.
type CatalogUseCase struct {
	productRepo     ProductRepository
	catalogSource   CatalogSourceRepository
	embeddingMirror EmbeddingMirrorRepository
	dbPool          transaction.Transactional
	index           EmbeddingIndex
	logger          logger.Logger
	cfg             *cfg.RankerCfg
}

func NewCatalogUC(
	productRepo ProductRepository,
	catalogSource CatalogSourceRepository,
	embeddingMirror EmbeddingMirrorRepository,
	dbPool transaction.Transactional,
	index EmbeddingIndex,
	logger logger.Logger,
	cfg *cfg.RankerCfg,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:     productRepo,
		catalogSource:   catalogSource,
		embeddingMirror: embeddingMirror,
		dbPool:          dbPool,
		index:           index,
		logger:          logger,
		cfg:             cfg,
	}
}

// ReloadCatalog загружает CSV-снимок каталога из объектного хранилища,
// обновляет каталог одной транзакцией (товары вне снимка получают нулевой
// остаток) и перестраивает векторный индекс.
func (c *CatalogUseCase) ReloadCatalog(ctx context.Context, req *ReloadCatalogReq) (*ReloadCatalogRes, error) {
	const op = "CatalogUseCase.ReloadCatalog"

	if strings.TrimSpace(req.ObjectKey) == "" {
		return nil, e.Wrap(op, e.ErrObjectKeyRequired)
	}

	snapshot, err := c.catalogSource.Fetch(ctx, req.ObjectKey)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer snapshot.Close()

	products, err := ParseCatalogSnapshot(snapshot)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(products) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCatalog)
	}

	loaded, retired, err := c.applySnapshot(ctx, products)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	indexed, generation, err := c.rebuild(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Infof("catalog reloaded from %s: %d products upserted, %d retired, %d indexed", req.ObjectKey, loaded, retired, indexed)

	return &ReloadCatalogRes{
		Loaded:     loaded,
		Retired:    retired,
		Indexed:    indexed,
		Generation: generation,
	}, nil
}

// RebuildIndex перестраивает индекс по текущему состоянию каталога,
// не обращаясь к снимку.
func (c *CatalogUseCase) RebuildIndex(ctx context.Context) (*RebuildIndexRes, error) {
	const op = "CatalogUseCase.RebuildIndex"

	indexed, generation, err := c.rebuild(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &RebuildIndexRes{
		Indexed:    indexed,
		Generation: generation,
	}, nil
}

// GetProductInfo возвращает карточку товара по идентификатору.
func (c *CatalogUseCase) GetProductInfo(ctx context.Context, id int64) (*ProductInfo, error) {
	const op = "CatalogUseCase.GetProductInfo"

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewProductInfo(product), nil
}

// applySnapshot записывает товары снимка и обнуляет остатки отсутствующих
// в нём товаров одной транзакцией.
func (c *CatalogUseCase) applySnapshot(ctx context.Context, products []domain.Product) (int, int64, error) {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	var loaded int
	loaded, err = c.productRepo.UpsertBatch(ctx, products)
	if err != nil {
		return 0, 0, err
	}

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}

	var retired int64
	retired, err = c.productRepo.ZeroStockMissing(ctx, names)
	if err != nil {
		return 0, 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, 0, err
	}

	return loaded, retired, nil
}

// rebuild строит новый индекс по товарам в наличии и зеркалирует его
// векторы во внешнюю векторную БД. Сбой зеркалирования не отменяет
// уже подменённый индекс.
func (c *CatalogUseCase) rebuild(ctx context.Context) (int, int64, error) {
	inStock, err := c.productRepo.ListInStock(ctx, nil)
	if err != nil {
		return 0, 0, err
	}

	buildCtx, cancel := context.WithTimeout(ctx, c.cfg.BuildTimeout)
	defer cancel()

	if err := c.index.Build(buildCtx, inStock); err != nil {
		return 0, 0, err
	}

	if err := c.embeddingMirror.Replace(ctx, c.index.Export()); err != nil {
		c.logger.Warnf("Failed to mirror index vectors: %v", err)
	}

	return c.index.Size(), c.index.Generation(), nil
}
