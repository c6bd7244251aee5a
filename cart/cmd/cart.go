package cmd

import (
	"context"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/cart/internal/controller"
	"github.com/Alturino/storefront/cart/internal/otel"
	"github.com/Alturino/storefront/cart/internal/service"
	"github.com/Alturino/storefront/internal/constants"
	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/repository"
)

func AttachCart(c context.Context, api *mux.Router, store repository.Store) {
	c, span := otel.Tracer.Start(c, "AttachCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyAppName, constants.AppCartService).
		Str(log.KeyTag, "main AttachCart").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "attaching cart controller").Logger()
	logger.Info().Msg("attaching cart controller")
	controller.AttachCartController(api, service.NewCartService(store))
	logger.Info().Msg("attached cart controller")
}
