package usecase

import "context"

type RecommendUC interface {
	Recommend(ctx context.Context, req *RecommendReq) (*RecommendRes, error)
}

type CatalogUC interface {
	ReloadCatalog(ctx context.Context, req *ReloadCatalogReq) (*ReloadCatalogRes, error)
	RebuildIndex(ctx context.Context) (*RebuildIndexRes, error)
	GetProductInfo(ctx context.Context, id int64) (*ProductInfo, error)
}
