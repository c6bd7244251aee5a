package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	cartCmd "github.com/Alturino/storefront/cart/cmd"
	deliveryOptionCmd "github.com/Alturino/storefront/deliveryoption/cmd"
	"github.com/Alturino/storefront/internal/bootstrap"
	"github.com/Alturino/storefront/internal/cache"
	"github.com/Alturino/storefront/internal/config"
	"github.com/Alturino/storefront/internal/constants"
	"github.com/Alturino/storefront/internal/infra"
	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/otel"
	"github.com/Alturino/storefront/internal/repository"
	"github.com/Alturino/storefront/internal/router"
	"github.com/Alturino/storefront/internal/seed"
	orderCmd "github.com/Alturino/storefront/order/cmd"
	paymentCmd "github.com/Alturino/storefront/payment/cmd"
	productCmd "github.com/Alturino/storefront/product/cmd"
	resetCmd "github.com/Alturino/storefront/reset/cmd"
)

const shutdownTimeout = 10 * time.Second

func runServer(c context.Context, cfg *config.Config) error {
	c, span := otel.Tracer.Start(c, "runServer")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "main runServer").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "initializing otel sdk").Logger()
	logger.Info().Msg("initializing otel sdk")
	c = logger.WithContext(c)
	shutdownFuncs, err := otel.InitOtelSdk(c, constants.AppStorefront, cfg.Otel)
	if err != nil {
		err = fmt.Errorf("failed initializing otel sdk with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("initialized otel sdk")
	defer func() {
		logger := logger.With().Str(log.KeyProcess, "shutting down otel").Logger()
		logger.Info().Msg("shutting down otel")
		c, cancel := context.WithTimeout(context.WithoutCancel(c), shutdownTimeout)
		defer cancel()
		if err := otel.ShutdownOtel(c, shutdownFuncs); err != nil {
			err = fmt.Errorf("failed shutting down otel with error=%w", err)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("shutdown otel")
	}()

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
	logger.Info().Msg("initialized database")
	defer func() {
		logger := logger.With().Str(log.KeyProcess, "shutting down database connection").Logger()
		logger.Info().Msg("shutting down database connection")
		pool.Close()
		logger.Info().Msg("shutdown database connection")
	}()

	store := repository.NewStore(pool)
	seeder := seed.NewSeeder(store)

	logger = logger.With().Str(log.KeyProcess, "running startup").Logger()
	logger.Info().Msg("running startup")
	c = logger.WithContext(c)
	result, err := bootstrap.Startup{Migrator: infra.NewMigrator(pool), Seeder: seeder}.Run(c)
	if err != nil {
		err = fmt.Errorf("failed running startup with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Any(log.KeySeedResult, result).Msg("ran startup")

	logger = logger.With().Str(log.KeyProcess, "initializing cache").Logger()
	logger.Info().Msg("initializing cache")
	c = logger.WithContext(c)
	productCache, closeCache, err := newProductCache(c, cfg.Cache)
	if err != nil {
		err = fmt.Errorf("failed initializing cache with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Bool("enabled", cfg.Cache.Enabled).Msg("initialized cache")
	defer func() {
		logger := logger.With().Str(log.KeyProcess, "shutting down cache connection").Logger()
		logger.Info().Msg("shutting down cache connection")
		if err := closeCache(); err != nil {
			err = fmt.Errorf("failed closing cache with error=%w", err)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("shutdown cache connection")
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c = logger.WithContext(c)
	handler, err := router.New(c, router.Options{
		Registry: registry,
		Routes: []router.Attach{
			func(c context.Context, api *mux.Router) {
				productCmd.AttachProduct(c, api, store, productCache)
			},
			func(c context.Context, api *mux.Router) {
				deliveryOptionCmd.AttachDeliveryOption(c, api, store)
			},
			func(c context.Context, api *mux.Router) {
				cartCmd.AttachCart(c, api, store)
			},
			func(c context.Context, api *mux.Router) {
				orderCmd.AttachOrder(c, api, store)
			},
			func(c context.Context, api *mux.Router) {
				paymentCmd.AttachPayment(c, api, store)
			},
			func(c context.Context, api *mux.Router) {
				resetCmd.AttachReset(c, api, seeder, productCache)
			},
		},
	})
	if err != nil {
		err = fmt.Errorf("failed initializing router with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	logger = logger.With().Str(log.KeyProcess, "initializing server").Logger()
	logger.Info().Msg("initializing server")
	server := http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Application.Host, cfg.Application.Port),
		BaseContext:  func(net.Listener) context.Context { return c },
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	logger.Info().Msg("initialized server")

	serveErr := make(chan error, 1)
	go func() {
		logger := logger.With().Str(log.KeyProcess, "start server").Logger()
		logger.Info().Msgf("Server running on port %d", cfg.Application.Port)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("encounter error=%w while running server", err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
		return nil
	case <-c.Done():
	}

	logger = logger.With().Str(log.KeyProcess, "shutdown server").Logger()
	logger.Info().Msg("received interuption signal shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(c), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		err = fmt.Errorf("failed shutting down server with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("server completely shutdown")
	return nil
}

// newProductCache returns the redis backed cache when enabled and a no-op
// cache otherwise.
func newProductCache(
	c context.Context,
	cfg config.Cache,
) (cache.ProductCache, func() error, error) {
	if !cfg.Enabled {
		return cache.Noop{}, func() error { return nil }, nil
	}
	client, err := infra.NewCacheClient(c, cfg)
	if err != nil {
		return nil, nil, err
	}
	ttl := time.Duration(cfg.TTL) * time.Second
	return cache.NewRedisProductCache(client, ttl), client.Close, nil
}
