package cmd

import (
	"context"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/internal/constants"
	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/repository"
	"github.com/Alturino/storefront/payment/internal/controller"
	"github.com/Alturino/storefront/payment/internal/otel"
	"github.com/Alturino/storefront/payment/internal/service"
)

func AttachPayment(c context.Context, api *mux.Router, store repository.Store) {
	c, span := otel.Tracer.Start(c, "AttachPayment")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyAppName, constants.AppPaymentService).
		Str(log.KeyTag, "main AttachPayment").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "attaching payment controller").Logger()
	logger.Info().Msg("attaching payment controller")
	controller.AttachPaymentController(api, service.NewPaymentService(store))
	logger.Info().Msg("attached payment controller")
}
