package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/otel"
	"github.com/Alturino/storefront/product/pkg/response"
)

const KeyProducts = "products:"

var ErrCacheMiss = errors.New("cache miss")

// ProductCache holds products by id. Implementations return ErrCacheMiss when
// the key is absent.
type ProductCache interface {
	Get(c context.Context, id uuid.UUID) (response.Product, error)
	Set(c context.Context, product response.Product) error
	Delete(c context.Context, id uuid.UUID) error
	Flush(c context.Context) error
}

func ProductKey(id uuid.UUID) string {
	return KeyProducts + id.String()
}

type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisProductCache(client *redis.Client, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{client: client, ttl: ttl}
}

func (r *RedisProductCache) Get(c context.Context, id uuid.UUID) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "RedisProductCache Get")
	defer span.End()

	cacheKey := ProductKey(id)
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "RedisProductCache Get").
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	jsonCache, err := r.client.Get(c, cacheKey).Result()
	if errors.Is(err, redis.Nil) {
		logger.Trace().Msg("product not found in cache")
		return response.Product{}, ErrCacheMiss
	}
	if err != nil {
		err = fmt.Errorf("failed getting product from cache with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger = logger.With().Str(log.KeyJsonCache, jsonCache).Logger()
	logger.Trace().Msg("found product in cache")

	product := response.Product{}
	if err = json.Unmarshal([]byte(jsonCache), &product); err != nil {
		err = fmt.Errorf("failed to unmarshal jsonCache with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	return product, nil
}

func (r *RedisProductCache) Set(c context.Context, product response.Product) error {
	c, span := otel.Tracer.Start(c, "RedisProductCache Set")
	defer span.End()

	cacheKey := ProductKey(product.ID)
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "RedisProductCache Set").
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	body, err := json.Marshal(product)
	if err != nil {
		err = fmt.Errorf("failed marshaling product with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if err = r.client.Set(c, cacheKey, body, r.ttl).Err(); err != nil {
		err = fmt.Errorf("failed inserting product to cache with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Trace().Msg("inserted product to cache")
	return nil
}

func (r *RedisProductCache) Delete(c context.Context, id uuid.UUID) error {
	c, span := otel.Tracer.Start(c, "RedisProductCache Delete")
	defer span.End()

	cacheKey := ProductKey(id)
	if err := r.client.Del(c, cacheKey).Err(); err != nil {
		err = fmt.Errorf("failed removing product=%s in cache with error=%w", cacheKey, err)
		otel.RecordError(err, span)
		zerolog.Ctx(c).Error().Err(err).Msg(err.Error())
		return err
	}
	return nil
}

// Flush removes every product key. Keys are walked with SCAN so the server is
// never blocked by KEYS.
func (r *RedisProductCache) Flush(c context.Context) error {
	c, span := otel.Tracer.Start(c, "RedisProductCache Flush")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "RedisProductCache Flush").
		Str(log.KeyProcess, "flushing product cache").
		Logger()

	var cursor uint64
	removed := 0
	for {
		keys, next, err := r.client.Scan(c, cursor, KeyProducts+"*", 100).Result()
		if err != nil {
			err = fmt.Errorf("failed scanning product keys with error=%w", err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
		if len(keys) > 0 {
			if err = r.client.Del(c, keys...).Err(); err != nil {
				err = fmt.Errorf("failed removing product keys with error=%w", err)
				otel.RecordError(err, span)
				logger.Error().Err(err).Msg(err.Error())
				return err
			}
			removed += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	logger.Info().Int("removed", removed).Msg("flushed product cache")
	return nil
}

// Noop is used when caching is disabled: every read misses.
type Noop struct{}

func (Noop) Get(context.Context, uuid.UUID) (response.Product, error) {
	return response.Product{}, ErrCacheMiss
}
func (Noop) Set(context.Context, response.Product) error { return nil }
func (Noop) Delete(context.Context, uuid.UUID) error     { return nil }
func (Noop) Flush(context.Context) error                 { return nil }

var (
	_ ProductCache = (*RedisProductCache)(nil)
	_ ProductCache = Noop{}
)
