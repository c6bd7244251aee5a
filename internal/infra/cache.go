package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/Alturino/storefront/internal/config"
	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/otel"
)

const cachePingTimeout = 3 * time.Second

// NewCacheClient connects to the redis backing the product cache. The client is
// closed again when instrumentation or the first ping fails.
func NewCacheClient(c context.Context, cacheConfig config.Cache) (*redis.Client, error) {
	c, span := otel.Tracer.Start(c, "main NewCacheClient")
	defer span.End()

	addr := fmt.Sprintf("%s:%d", cacheConfig.Host, cacheConfig.Port)
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "main NewCacheClient").
		Str("cacheAddr", addr).
		Int("cacheDatabase", cacheConfig.Database).
		Logger()

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cacheConfig.Password,
		DB:       cacheConfig.Database,
	})

	logger = logger.With().Str(log.KeyProcess, "instrumenting redis client").Logger()
	logger.Info().Msg("instrumenting redis client")
	attrs := redisotel.WithAttributes(semconv.DBSystemRedis)
	if err := errors.Join(
		redisotel.InstrumentTracing(client, attrs),
		redisotel.InstrumentMetrics(client, attrs),
	); err != nil {
		_ = client.Close()
		err = fmt.Errorf("failed instrumenting redis client with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("instrumented redis client")

	logger = logger.With().Str(log.KeyProcess, "pinging redis").Logger()
	logger.Info().Msg("pinging redis")
	pingCtx, cancel := context.WithTimeout(c, cachePingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		err = fmt.Errorf("failed pinging redis at %s with error=%w", addr, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("pinged redis")

	return client, nil
}
