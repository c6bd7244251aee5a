package cmd

import (
	"context"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/internal/cache"
	"github.com/Alturino/storefront/internal/constants"
	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/repository"
	"github.com/Alturino/storefront/product/internal/controller"
	"github.com/Alturino/storefront/product/internal/otel"
	"github.com/Alturino/storefront/product/internal/service"
)

// AttachProduct mounts /products on api. Reads by id go through productCache.
func AttachProduct(
	c context.Context,
	api *mux.Router,
	store repository.Store,
	productCache cache.ProductCache,
) {
	c, span := otel.Tracer.Start(c, "AttachProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyAppName, constants.AppProductService).
		Str(log.KeyTag, "main AttachProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "attaching product controller").Logger()
	logger.Info().Msg("attaching product controller")
	controller.AttachProductController(api, service.NewProductService(store, productCache))
	logger.Info().Msg("attached product controller")
}
