package pgdb

import (
	"context"
	"errors"
	"strings"

	"github.com/DRSN-tech/substitution-engine/internal/domain"
	"github.com/DRSN-tech/substitution-engine/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/substitution-engine/internal/usecase"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/DRSN-tech/substitution-engine/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const productColumns = `id, name, brand, category, price, stock_level, rating, dietary_tag, description, image_url, created_at, updated_at`

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// ListInStock возвращает товары в наличии с учётом фильтров кандидатов.
// Пустой DietaryFilter и нулевой MinRating не ограничивают выборку.
func (p *ProductRepo) ListInStock(ctx context.Context, filter *usecase.CandidateFilter) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE stock_level > 0
		  AND ($1 = '' OR dietary_tag ILIKE '%' || $1 || '%')
		  AND rating >= $2
		ORDER BY id;
	`

	var (
		dietaryFilter string
		minRating     float64
	)
	if filter != nil {
		dietaryFilter = filter.DietaryFilter
		minRating = filter.MinRating
	}

	rows, err := p.pool.Query(ctx, query, dietaryFilter, minRating)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.scanProducts(rows)
}

// GetByID возвращает товар по идентификатору.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Brand, &model.Category,
		&model.Price, &model.StockLevel, &model.Rating, &model.DietaryTag,
		&model.Description, &model.ImageURL, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// UpsertBatch идемпотентно записывает товары снимка каталога по уникальному
// имени одним батчем в рамках текущей транзакции.
func (p *ProductRepo) UpsertBatch(ctx context.Context, products []domain.Product) (int, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (name, brand, category, price, stock_level, rating, dietary_tag, description, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (name)
		DO UPDATE SET
			brand = EXCLUDED.brand,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			stock_level = EXCLUDED.stock_level,
			rating = EXCLUDED.rating,
			dietary_tag = EXCLUDED.dietary_tag,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			updated_at = NOW();
	`

	batch := &pgx.Batch{}
	for i := range products {
		model := p.conv.ToModel(&products[i])
		batch.Queue(query,
			model.Name, model.Brand, model.Category, model.Price,
			model.StockLevel, model.Rating, model.DietaryTag,
			model.Description, model.ImageURL,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range products {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return len(products), nil
}

// ZeroStockMissing обнуляет остатки товаров, отсутствующих в снимке каталога.
// Возвращает число затронутых товаров.
func (p *ProductRepo) ZeroStockMissing(ctx context.Context, presentNames []string) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	lowered := make([]string, len(presentNames))
	for i, name := range presentNames {
		lowered[i] = strings.ToLower(name)
	}

	query := `
		UPDATE products
		SET stock_level = 0, updated_at = NOW()
		WHERE stock_level > 0
		  AND lower(name) <> ALL($1);
	`

	result, err := tx.Exec(ctx, query, lowered)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return result.RowsAffected(), nil
}

// scanProducts читает строки товаров и конвертирует их в domain.
func (p *ProductRepo) scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	models := make([]*converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Brand, &model.Category,
			&model.Price, &model.StockLevel, &model.Rating, &model.DietaryTag,
			&model.Description, &model.ImageURL, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}
