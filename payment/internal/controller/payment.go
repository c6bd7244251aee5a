package controller

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inHttp "github.com/Alturino/storefront/internal/http"
	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
	"github.com/Alturino/storefront/payment/internal/otel"
	"github.com/Alturino/storefront/payment/internal/service"
)

type PaymentController struct {
	service *service.PaymentService
}

func AttachPaymentController(mux *mux.Router, service *service.PaymentService) {
	controller := PaymentController{service}
	mux.HandleFunc("/payment-summary", controller.Summary).Methods(http.MethodGet)
}

func (p PaymentController) Summary(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "PaymentController Summary")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PaymentController Summary").
		Str(log.KeyProcess, "computing payment summary").
		Logger()

	logger.Info().Msg("computing payment summary")
	c = logger.WithContext(c)
	summary, err := p.service.Summary(c)
	if err != nil {
		err = fmt.Errorf("failed computing payment summary with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteError(c, w, err)
		return
	}
	logger.Info().Msg("computed payment summary")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, summary)
}
