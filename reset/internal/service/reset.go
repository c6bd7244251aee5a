package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/internal/cache"
	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
	"github.com/Alturino/storefront/internal/seed"
	"github.com/Alturino/storefront/reset/internal/otel"
)

type Resetter interface {
	Reset(c context.Context) (seed.Result, error)
}

type ResetService struct {
	seeder Resetter
	cache  cache.ProductCache
}

func NewResetService(seeder Resetter, productCache cache.ProductCache) *ResetService {
	return &ResetService{seeder: seeder, cache: productCache}
}

// Reset restores the default data sets and drops every cached product.
func (svc *ResetService) Reset(c context.Context) (seed.Result, error) {
	c, span := otel.Tracer.Start(c, "ResetService Reset")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ResetService Reset").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "resetting database").Logger()
	logger.Info().Msg("resetting database")
	result, err := svc.seeder.Reset(c)
	if err != nil {
		err = fmt.Errorf("failed resetting database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return seed.Result{}, err
	}
	logger.Info().Msg("reset database")

	logger = logger.With().Str(log.KeyProcess, "flushing product cache").Logger()
	if err = svc.cache.Flush(c); err != nil {
		err = fmt.Errorf("failed flushing product cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return seed.Result{}, err
	}
	logger.Info().Msg("flushed product cache")

	return result, nil
}
