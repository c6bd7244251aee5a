package cmd

import (
	"context"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/internal/constants"
	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/repository"
	"github.com/Alturino/storefront/order/internal/controller"
	"github.com/Alturino/storefront/order/internal/otel"
	"github.com/Alturino/storefront/order/internal/service"
)

func AttachOrder(c context.Context, api *mux.Router, store repository.Store) {
	c, span := otel.Tracer.Start(c, "AttachOrder")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyAppName, constants.AppOrderService).
		Str(log.KeyTag, "main AttachOrder").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "attaching order controller").Logger()
	logger.Info().Msg("attaching order controller")
	controller.AttachOrderController(api, service.NewOrderService(store, nil))
	logger.Info().Msg("attached order controller")
}
