package cmd

import (
	"context"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/deliveryoption/internal/controller"
	"github.com/Alturino/storefront/deliveryoption/internal/otel"
	"github.com/Alturino/storefront/deliveryoption/internal/service"
	"github.com/Alturino/storefront/internal/constants"
	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/repository"
)

func AttachDeliveryOption(c context.Context, api *mux.Router, store repository.Store) {
	c, span := otel.Tracer.Start(c, "AttachDeliveryOption")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyAppName, constants.AppDeliveryOptionService).
		Str(log.KeyTag, "main AttachDeliveryOption").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "attaching delivery option controller").Logger()
	logger.Info().Msg("attaching delivery option controller")
	controller.AttachDeliveryOptionController(api, service.NewDeliveryOptionService(store, nil))
	logger.Info().Msg("attached delivery option controller")
}
