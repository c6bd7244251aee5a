package cmd

import (
	"context"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/internal/cache"
	"github.com/Alturino/storefront/internal/constants"
	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/reset/internal/controller"
	"github.com/Alturino/storefront/reset/internal/otel"
	"github.com/Alturino/storefront/reset/internal/service"
)

// AttachReset mounts POST /reset. productCache is flushed after every reload.
func AttachReset(
	c context.Context,
	api *mux.Router,
	seeder service.Resetter,
	productCache cache.ProductCache,
) {
	c, span := otel.Tracer.Start(c, "AttachReset")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyAppName, constants.AppResetService).
		Str(log.KeyTag, "main AttachReset").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "attaching reset controller").Logger()
	logger.Info().Msg("attaching reset controller")
	controller.AttachResetController(api, service.NewResetService(seeder, productCache))
	logger.Info().Msg("attached reset controller")
}
