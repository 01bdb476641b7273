package redis

import (
	"context"
	"encoding/json"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/DRSN-tech/substitution-engine/internal/cfg"
	"github.com/DRSN-tech/substitution-engine/internal/repository/redis/converter"
	"github.com/DRSN-tech/substitution-engine/internal/usecase"
	"github.com/DRSN-tech/substitution-engine/pkg/clients"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/DRSN-tech/substitution-engine/pkg/logger"
	"github.com/jimlawless/whereami"
)

// CacheRepo кэширует готовые списки заменителей. Ключ формирует вызывающая
// сторона и включает поколение индекса, поэтому записи прошлых поколений
// отмирают сами по TTL.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.RankedSubstituteConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.RankedSubstituteConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetSubstitutes возвращает закэшированный ответ по ключу.
// Промах и ошибка чтения не различаются для вызывающего: (nil, false, err).
func (r *CacheRepo) GetSubstitutes(ctx context.Context, key string) ([]usecase.RankedSubstituteInfo, bool, error) {
	data, err := r.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}

		r.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.RankedSubstituteRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := r.client.Client.Del(context.Background(), key).Err(); err != nil {
			r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, false, nil
	}

	return r.conv.ToArrUseCase(models), true, nil
}

// SetSubstitutes кэширует ответ с заданным TTL.
// Ошибки сериализации и записи логируются, но не возвращаются.
func (r *CacheRepo) SetSubstitutes(ctx context.Context, key string, substitutes []usecase.RankedSubstituteInfo) error {
	models := r.conv.ToArrRedisModel(substitutes)
	if models == nil {
		models = []converter.RankedSubstituteRedisModel{}
	}

	data, err := json.Marshal(models)
	if err != nil {
		r.logger.Warnf("Failed to marshal substitutes for caching (key: %s): %v", key, e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := r.client.Client.Set(ctx, key, data, r.cfg.RecommendationsTTL).Err(); err != nil {
		r.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}
