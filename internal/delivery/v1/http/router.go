package http

import (
	_ "github.com/DRSN-tech/substitution-engine/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/substitution-engine/internal/usecase"
	"github.com/DRSN-tech/substitution-engine/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(recUC usecase.RecommendUC, catUC usecase.CatalogUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		recHandler := NewRecommendationHandler(recUC, r.logger)
		catHandler := NewCatalogHandler(catUC, r.logger)
		registerRecommendationRoutes(v1, recHandler)
		registerCatalogRoutes(v1, catHandler)
	})
}

func registerRecommendationRoutes(router chi.Router, recHandler *RecommendationHandler) {
	router.Post("/recommendations", recHandler.recommend)
}

func registerCatalogRoutes(router chi.Router, catHandler *CatalogHandler) {
	router.Route("/catalog", func(cat chi.Router) {
		cat.Post("/reload", catHandler.reloadCatalog)
	})
	router.Route("/index", func(idx chi.Router) {
		idx.Post("/rebuild", catHandler.rebuildIndex)
	})
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/{id}", catHandler.getProduct)
	})
}
