package cmd

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/internal/bootstrap"
	"github.com/Alturino/storefront/internal/config"
	"github.com/Alturino/storefront/internal/constants"
	"github.com/Alturino/storefront/internal/infra"
	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/otel"
	"github.com/Alturino/storefront/internal/repository"
	"github.com/Alturino/storefront/internal/seed"
)

// withDatabase opens the pool for one maintenance command and closes it when fn
// returns.
func withDatabase(
	c context.Context,
	cfg *config.Config,
	appName string,
	fn func(c context.Context, pool *pgxpool.Pool) error,
) error {
	c, span := otel.Tracer.Start(c, appName)
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyAppName, appName).
		Str(log.KeyTag, "main withDatabase").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "initializing database").Logger()
	logger.Info().Msg("initializing database")
	c = logger.WithContext(c)
	pool, err := infra.NewDatabaseClient(c, cfg.Database)
	if err != nil {
		err = fmt.Errorf("failed initializing database with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	defer pool.Close()
	logger.Info().Msg("initialized database")

	if err := fn(c, pool); err != nil {
		otel.RecordError(err, span)
		return err
	}
	return nil
}

func runMigrate(c context.Context, cfg *config.Config) error {
	return withDatabase(c, cfg, constants.AppMigrate, func(c context.Context, pool *pgxpool.Pool) error {
		logger := zerolog.Ctx(c).With().Str(log.KeyProcess, "syncing schema").Logger()
		logger.Info().Msg("syncing schema")
		if err := infra.NewMigrator(pool).Up(c); err != nil {
			err = fmt.Errorf("failed syncing schema with error=%w", err)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
		logger.Info().Msg("synced schema")
		return nil
	})
}

func runSeed(c context.Context, cfg *config.Config) error {
	return withDatabase(c, cfg, constants.AppSeed, func(c context.Context, pool *pgxpool.Pool) error {
		startup := bootstrap.Startup{
			Migrator: infra.NewMigrator(pool),
			Seeder:   seed.NewSeeder(repository.NewStore(pool)),
		}
		_, err := startup.Run(c)
		return err
	})
}

// runReset reloads the default data and flushes cached products when the cache
// is enabled.
func runReset(c context.Context, cfg *config.Config) error {
	return withDatabase(c, cfg, constants.AppReset, func(c context.Context, pool *pgxpool.Pool) error {
		logger := zerolog.Ctx(c).With().Str(log.KeyProcess, "resetting default data").Logger()
		logger.Info().Msg("resetting default data")
		if err := infra.NewMigrator(pool).Up(c); err != nil {
			err = fmt.Errorf("failed syncing schema with error=%w", err)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
		result, err := seed.NewSeeder(repository.NewStore(pool)).Reset(c)
		if err != nil {
			err = fmt.Errorf("failed resetting default data with error=%w", err)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
		logger.Info().Any(log.KeySeedResult, result).Msg("reset default data")

		logger = logger.With().Str(log.KeyProcess, "flushing product cache").Logger()
		productCache, closeCache, err := newProductCache(c, cfg.Cache)
		if err != nil {
			err = fmt.Errorf("failed initializing cache with error=%w", err)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
		defer closeCache()
		if err := productCache.Flush(c); err != nil {
			err = fmt.Errorf("failed flushing product cache with error=%w", err)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
		logger.Info().Msg("flushed product cache")
		return nil
	})
}
