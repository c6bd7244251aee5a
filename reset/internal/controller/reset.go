package controller

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inHttp "github.com/Alturino/storefront/internal/http"
	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
	"github.com/Alturino/storefront/reset/internal/otel"
	"github.com/Alturino/storefront/reset/internal/service"
)

type ResetController struct {
	service *service.ResetService
}

func AttachResetController(mux *mux.Router, service *service.ResetService) {
	controller := ResetController{service}
	mux.HandleFunc("/reset", controller.Reset).Methods(http.MethodPost)
}

func (rc ResetController) Reset(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ResetController Reset")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ResetController Reset").
		Str(log.KeyProcess, "resetting default data").
		Logger()

	logger.Info().Msg("resetting default data")
	c = logger.WithContext(c)
	result, err := rc.service.Reset(c)
	if err != nil {
		err = fmt.Errorf("failed resetting default data with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteError(c, w, err)
		return
	}
	logger.Info().Any(log.KeySeedResult, result).Msg("reset default data")

	inHttp.WriteNoContent(w)
}
