package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogSource struct {
	objects map[string]string
}

func (f *fakeCatalogSource) Fetch(_ context.Context, objectKey string) (io.ReadCloser, error) {
	body, ok := f.objects[objectKey]
	if !ok {
		return nil, errors.New("object not found: " + objectKey)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

type fakeEmbeddingMirror struct {
	replaced int
	failure  error
}

func (f *fakeEmbeddingMirror) Replace(_ context.Context, embeddings []domain.Embedding) error {
	if f.failure != nil {
		return f.failure
	}
	f.replaced = len(embeddings)
	return nil
}

type catalogFixture struct {
	uc        *usecase.CatalogUseCase
	products  *fakeProductRepo
	source    *fakeCatalogSource
	mirror    *fakeEmbeddingMirror
	txManager *fakeTxManager
}

func newCatalogFixture(t *testing.T, catalog []domain.Product) *catalogFixture {
	t.Helper()

	log := logger.NewSlogLogger()
	idx := index.NewIndex(func() encoder.Encoder { return tfidf.NewEncoder() }, 4, log)

	f := &catalogFixture{
		products:  &fakeProductRepo{products: catalog},
		source:    &fakeCatalogSource{objects: map[string]string{}},
		mirror:    &fakeEmbeddingMirror{},
		txManager: &fakeTxManager{},
	}
	f.uc = usecase.NewCatalogUC(
		f.products,
		f.source,
		f.mirror,
		f.txManager,
		idx,
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

func TestReloadCatalog_HappyPath(t *testing.T) {
	f := newCatalogFixture(t, groceryCatalog())
	f.source.objects["snapshots/latest.csv"] = strings.Join([]string{
		"Product Name,Brand,Category,Sale Price,Stock Level,Rating,Description",
		"Pantene Pro-V Shampoo,Pantene,Hair Care,6.99,20,4.3,nourishing shampoo",
		"Oat Milk,Oatly,Dairy,4.50,15,4.6,plant based oat drink",
	}, "\n")

	res, err := f.uc.ReloadCatalog(context.Background(), &usecase.ReloadCatalogReq{ObjectKey: "snapshots/latest.csv"})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Loaded)
	// В исходном каталоге шесть товаров в наличии, в снимке выжил один.
	assert.Equal(t, int64(5), res.Retired)
	assert.Equal(t, 2, res.Indexed)
	assert.Equal(t, int64(1), res.Generation)
	assert.Equal(t, 2, f.mirror.replaced)
	assert.Equal(t, 1, f.txManager.beginCount())

	updated, err := f.products.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(699), updated.Price)
	assert.Equal(t, int64(20), updated.StockLevel)
}

func TestReloadCatalog_ObjectKeyRequired(t *testing.T) {
	f := newCatalogFixture(t, groceryCatalog())

	_, err := f.uc.ReloadCatalog(context.Background(), &usecase.ReloadCatalogReq{ObjectKey: "  "})
	assert.ErrorIs(t, err, e.ErrObjectKeyRequired)
}

func TestReloadCatalog_FetchErrorPropagates(t *testing.T) {
	f := newCatalogFixture(t, groceryCatalog())

	_, err := f.uc.ReloadCatalog(context.Background(), &usecase.ReloadCatalogReq{ObjectKey: "snapshots/missing.csv"})
	require.Error(t, err)
	assert.Equal(t, 0, f.txManager.beginCount())
}

func TestReloadCatalog_EmptySnapshot(t *testing.T) {
	f := newCatalogFixture(t, groceryCatalog())
	f.source.objects["snapshots/empty.csv"] = "name,price\n"

	_, err := f.uc.ReloadCatalog(context.Background(), &usecase.ReloadCatalogReq{ObjectKey: "snapshots/empty.csv"})
	assert.ErrorIs(t, err, e.ErrEmptyCatalog)
	assert.Equal(t, 0, f.txManager.beginCount())
}

func TestReloadCatalog_InvalidSnapshotLeavesCatalogUntouched(t *testing.T) {
	f := newCatalogFixture(t, groceryCatalog())
	f.source.objects["snapshots/bad.csv"] = "brand,rating\nPantene,4.2\n"

	_, err := f.uc.ReloadCatalog(context.Background(), &usecase.ReloadCatalogReq{ObjectKey: "snapshots/bad.csv"})
	assert.ErrorIs(t, err, e.ErrInvalidCatalogCSV)
	assert.Equal(t, 0, f.txManager.beginCount())

	all, err := f.products.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, len(groceryCatalog()))
}

func TestReloadCatalog_MirrorFailureIsNotFatal(t *testing.T) {
	f := newCatalogFixture(t, groceryCatalog())
	f.mirror.failure = errors.New("vector store unavailable")
	f.source.objects["snapshots/latest.csv"] = strings.Join([]string{
		"name,price",
		"Oat Milk,4.50",
	}, "\n")

	res, err := f.uc.ReloadCatalog(context.Background(), &usecase.ReloadCatalogReq{ObjectKey: "snapshots/latest.csv"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Indexed)
}

func TestRebuildIndex_GenerationGrows(t *testing.T) {
	f := newCatalogFixture(t, groceryCatalog())

	first, err := f.uc.RebuildIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, first.Indexed)
	assert.Equal(t, int64(1), first.Generation)
	assert.Equal(t, 6, f.mirror.replaced)

	second, err := f.uc.RebuildIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Generation)
}

func TestRebuildIndex_EmptyCatalog(t *testing.T) {
	f := newCatalogFixture(t, nil)

	_, err := f.uc.RebuildIndex(context.Background())
	assert.ErrorIs(t, err, e.ErrEmptyCatalog)
}

func TestGetProductInfo(t *testing.T) {
	f := newCatalogFixture(t, groceryCatalog())

	info, err := f.uc.GetProductInfo(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Dove Intense Repair Shampoo", info.Name)
	assert.Equal(t, int64(579), info.Price)

	_, err = f.uc.GetProductInfo(context.Background(), 999)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}
