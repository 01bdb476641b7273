package minio

import (
	"context"
	"io"

	"github.com/DRSN-tech/substitution-engine/internal/cfg"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// CatalogRepo читает CSV-снимки каталога из бакета MinIO.
type CatalogRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewCatalogRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *CatalogRepo {
	return &CatalogRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Fetch открывает объект снимка на чтение. Закрытие ридера — на вызывающем.
func (c *CatalogRepo) Fetch(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	object, err := c.mc.GetObject(ctx, c.cfg.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	// GetObject ленивый: ошибка отсутствия объекта всплывает на первом чтении,
	// поэтому наличие проверяется сразу
	if _, err := object.Stat(); err != nil {
		object.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return object, nil
}
