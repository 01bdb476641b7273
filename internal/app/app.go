package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/substitution-engine/internal/cfg"
	v1Grpc "github.com/DRSN-tech/substitution-engine/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/substitution-engine/internal/delivery/v1/http"
	"github.com/DRSN-tech/substitution-engine/internal/index"
	"github.com/DRSN-tech/substitution-engine/internal/infrastructure/encoder"
	"github.com/DRSN-tech/substitution-engine/internal/infrastructure/encoder/tfidf"
	"github.com/DRSN-tech/substitution-engine/internal/infrastructure/kafka"
	"github.com/DRSN-tech/substitution-engine/internal/proto"
	s3Repo "github.com/DRSN-tech/substitution-engine/internal/repository/minio"
	"github.com/DRSN-tech/substitution-engine/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/substitution-engine/internal/repository/pgdb/converter/generated"
	qdrantRepo "github.com/DRSN-tech/substitution-engine/internal/repository/qdrant"
	"github.com/DRSN-tech/substitution-engine/internal/repository/redis"
	redisConv "github.com/DRSN-tech/substitution-engine/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/substitution-engine/internal/usecase"
	"github.com/DRSN-tech/substitution-engine/pkg/clients"
	"github.com/DRSN-tech/substitution-engine/pkg/closer"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/DRSN-tech/substitution-engine/pkg/logger"
	"github.com/DRSN-tech/substitution-engine/pkg/postgres"
	"github.com/DRSN-tech/substitution-engine/pkg/vmath"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// App собирает зависимости движка подбора заменителей и управляет
// их жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv      *v1Http.Server
	grpcSrv      *v1Grpc.GRPCServer
	outboxWorker *kafka.OutboxWorker
	catalogUC    usecase.CatalogUC
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(5 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(context.Context) error {
		db.Close()
		return nil
	})

	prConv := pgdbConv.NewProductConverterImpl()
	recConv := pgdbConv.NewRecommendationConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	substituteConv := redisConv.NewRankedSubstituteConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	recommendationRepo := pgdb.NewRecommendationRepo(db.Pool, recConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	catalogSourceRepo := s3Repo.NewCatalogRepo(minioClient, cfg.Minio)

	qdrantClient, err := clients.NewQdrantClient(cfg.Qdrant)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	qdrantCtx, qdrantCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureCollection(qdrantCtx, qdrantClient); err != nil {
		qdrantCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	qdrantCancel()
	cl.Add(func(context.Context) error {
		return qdrantClient.Client.Close()
	})

	embeddingMirror := qdrantRepo.NewEmbeddingRepo(qdrantClient.Client, cfg.Qdrant)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, substituteConv, cfg.Redis, log)

	encoderFactory, err := buildEncoderFactory(cfg, log, cl)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	embeddingIndex := index.NewIndex(encoderFactory, cfg.Encoder.MaxConcurrent, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(context.Context) error {
		return producer.Close()
	})

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		log.Warnf("Kafka topic not ready: %v", err)
	}

	recommendUC := usecase.NewRecommendUC(
		productRepo,
		recommendationRepo,
		outboxRepo,
		cacheRepo,
		db.Pool,
		embeddingIndex,
		vmath.NewCosineScorer(),
		producer,
		log,
		cfg.Ranker,
	)

	catalogUC := usecase.NewCatalogUC(
		productRepo,
		catalogSourceRepo,
		embeddingMirror,
		db.Pool,
		embeddingIndex,
		log,
		cfg.Ranker,
	)

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	grpcSrv := v1Grpc.NewGRPCServer(cfg.Grpc)
	grpcSrv.RegisterServices(recommendUC, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(recommendUC, catalogUC)
	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:          cfg,
		logger:       log,
		closer:       cl,
		httpSrv:      httpSrv,
		grpcSrv:      grpcSrv,
		outboxWorker: outboxWorker,
		catalogUC:    catalogUC,
	}, nil
}

// Run запускает серверы и блокируется до сигнала остановки или фатальной
// ошибки одного из серверов.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.outboxWorker.Start(workerCtx)

	// Первичное построение индекса по текущему каталогу. Пустой каталог —
	// не фатальная ситуация: индекс построится при загрузке снимка.
	if res, err := a.catalogUC.RebuildIndex(context.Background()); err != nil {
		a.logger.Warnf("Initial index build skipped: %v", err)
	} else {
		a.logger.Infof("Initial index built: %d vectors, generation %d", res.Indexed, res.Generation)
	}

	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			grpcErrCh <- err
		}
	}()

	httpErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			httpErrCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-httpErrCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.grpcSrv.Stop(shutdownCtx); err != nil {
		if !errors.Is(err, context.DeadlineExceeded) {
			a.logger.Errorf(err, "gRPC server shutdown error")
		} else {
			a.logger.Warnf("gRPC server shutdown timeout")
		}
	} else {
		a.logger.Infof("gRPC server stopped")
	}

	workerCancel()
	a.outboxWorker.Stop()
	a.logger.Infof("Outbox worker stopped")

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("Resource shutdown: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

// buildEncoderFactory выбирает бэкенд векторизации по конфигурации.
func buildEncoderFactory(cfg *config.Config, log logger.Logger, cl *closer.Closer) (encoder.Factory, error) {
	switch cfg.Encoder.Backend {
	case "tfidf":
		return func() encoder.Encoder { return tfidf.NewEncoder() }, nil
	default:
		conn, err := grpc.NewClient(
			cfg.Encoder.Addr,
			grpc.WithTransportCredentials(insecure.NewCredentials()), // НЕзащищённое соединение (без TLS)
		)
		if err != nil {
			return nil, err
		}
		cl.Add(func(context.Context) error {
			return conn.Close()
		})

		client := proto.NewTextEncoderServiceClient(conn)
		return func() encoder.Encoder {
			return encoder.NewGRPCEncoder(client, cfg.Encoder.MaxRetries, log)
		}, nil
	}
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
