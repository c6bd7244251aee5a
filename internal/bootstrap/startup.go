// Package bootstrap sequences what has to happen before the HTTP listener
// binds: the schema is brought up to date, then default data is seeded when the
// catalog is empty.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/otel"
	"github.com/Alturino/storefront/internal/seed"
)

type Migrator interface {
	Up(c context.Context) error
}

type Seeder interface {
	Seed(c context.Context) (seed.Result, error)
}

type Startup struct {
	Migrator Migrator
	Seeder   Seeder
}

// Run fails on the first error; Seed is never attempted on a schema that did
// not migrate.
func (s Startup) Run(c context.Context) (seed.Result, error) {
	c, span := otel.Tracer.Start(c, "Startup Run")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "Startup Run").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "syncing schema").Logger()
	logger.Info().Msg("syncing schema")
	if err := s.Migrator.Up(c); err != nil {
		err = fmt.Errorf("failed syncing schema with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return seed.Result{}, err
	}
	logger.Info().Msg("synced schema")

	logger = logger.With().Str(log.KeyProcess, "seeding default data").Logger()
	logger.Info().Msg("seeding default data")
	result, err := s.Seeder.Seed(c)
	if err != nil {
		err = fmt.Errorf("failed seeding default data with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return seed.Result{}, err
	}
	logger.Info().Any(log.KeySeedResult, result).Msg("startup completed")

	return result, nil
}
