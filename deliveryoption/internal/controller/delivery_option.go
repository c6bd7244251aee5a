package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/deliveryoption/internal/otel"
	"github.com/Alturino/storefront/deliveryoption/internal/service"
	"github.com/Alturino/storefront/deliveryoption/pkg/request"
	inHttp "github.com/Alturino/storefront/internal/http"
	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
	"github.com/Alturino/storefront/internal/validate"
)

const (
	keyDeliveryOptionID         = "deliveryOptionId"
	expandEstimatedDeliveryTime = "estimatedDeliveryTime"
)

type DeliveryOptionController struct {
	service *service.DeliveryOptionService
}

func AttachDeliveryOptionController(mux *mux.Router, service *service.DeliveryOptionService) {
	controller := DeliveryOptionController{service}

	router := mux.PathPrefix("/delivery-options").Subrouter()
	router.HandleFunc("", controller.FindDeliveryOptions).Methods(http.MethodGet)
	router.HandleFunc("", controller.InsertDeliveryOption).Methods(http.MethodPost)
	router.HandleFunc("/{deliveryOptionId}", controller.FindDeliveryOptionById).
		Methods(http.MethodGet)
	router.HandleFunc("/{deliveryOptionId}", controller.UpdateDeliveryOption).
		Methods(http.MethodPut)
	router.HandleFunc("/{deliveryOptionId}", controller.RemoveDeliveryOption).
		Methods(http.MethodDelete)
}

func (d DeliveryOptionController) FindDeliveryOptions(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "DeliveryOptionController FindDeliveryOptions")
	defer span.End()

	expand := inHttp.HasExpand(r, expandEstimatedDeliveryTime)
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "DeliveryOptionController FindDeliveryOptions").
		Bool(log.KeyExpand, expand).
		Str(log.KeyProcess, "finding delivery options").
		Logger()

	logger.Info().Msg("finding delivery options")
	c = logger.WithContext(c)
	deliveryOptions, err := d.service.FindDeliveryOptions(c, expand)
	if err != nil {
		err = fmt.Errorf("failed finding delivery options with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteError(c, w, err)
		return
	}
	logger.Info().Msg("found delivery options")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, deliveryOptions)
}

func (d DeliveryOptionController) FindDeliveryOptionById(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "DeliveryOptionController FindDeliveryOptionById")
	defer span.End()

	id := mux.Vars(r)[keyDeliveryOptionID]
	expand := inHttp.HasExpand(r, expandEstimatedDeliveryTime)
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "DeliveryOptionController FindDeliveryOptionById").
		Str(log.KeyDeliveryOptionID, id).
		Str(log.KeyProcess, "finding delivery option").
		Logger()

	logger.Info().Msg("finding delivery option")
	c = logger.WithContext(c)
	deliveryOption, err := d.service.FindDeliveryOptionById(c, id, expand)
	if err != nil {
		err = fmt.Errorf("failed finding delivery option with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteError(c, w, err)
		return
	}
	logger.Info().Msg("found delivery option")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, deliveryOption)
}

func (d DeliveryOptionController) InsertDeliveryOption(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "DeliveryOptionController InsertDeliveryOption")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "DeliveryOptionController InsertDeliveryOption").
		Logger()

	reqBody := request.InsertDeliveryOption{}
	if err := inHttp.DecodeJsonBody(r, &reqBody); err != nil {
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		inHttp.WriteBadRequest(c, w, err)
		return
	}
	reqBody.ID = strings.TrimSpace(reqBody.ID)
	if err := validate.Struct(c, reqBody); err != nil {
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		inHttp.WriteBadRequest(c, w, err)
		return
	}

	logger = logger.With().Str(log.KeyProcess, "inserting delivery option").Logger()
	logger.Info().Msg("inserting delivery option")
	c = logger.WithContext(c)
	deliveryOption, err := d.service.InsertDeliveryOption(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed inserting delivery option with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteError(c, w, err)
		return
	}
	logger.Info().Msg("inserted delivery option")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusCreated, deliveryOption)
}

func (d DeliveryOptionController) UpdateDeliveryOption(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "DeliveryOptionController UpdateDeliveryOption")
	defer span.End()

	id := mux.Vars(r)[keyDeliveryOptionID]
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "DeliveryOptionController UpdateDeliveryOption").
		Str(log.KeyDeliveryOptionID, id).
		Logger()

	reqBody := request.UpdateDeliveryOption{}
	if err := inHttp.DecodeJsonBody(r, &reqBody); err != nil {
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		inHttp.WriteBadRequest(c, w, err)
		return
	}
	if err := validate.Struct(c, reqBody); err != nil {
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		inHttp.WriteBadRequest(c, w, err)
		return
	}

	logger = logger.With().Str(log.KeyProcess, "updating delivery option").Logger()
	logger.Info().Msg("updating delivery option")
	c = logger.WithContext(c)
	deliveryOption, err := d.service.UpdateDeliveryOption(c, id, reqBody)
	if err != nil {
		err = fmt.Errorf("failed updating delivery option with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteError(c, w, err)
		return
	}
	logger.Info().Msg("updated delivery option")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, deliveryOption)
}

func (d DeliveryOptionController) RemoveDeliveryOption(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "DeliveryOptionController RemoveDeliveryOption")
	defer span.End()

	id := mux.Vars(r)[keyDeliveryOptionID]
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "DeliveryOptionController RemoveDeliveryOption").
		Str(log.KeyDeliveryOptionID, id).
		Str(log.KeyProcess, "removing delivery option").
		Logger()

	logger.Info().Msg("removing delivery option")
	c = logger.WithContext(c)
	if err := d.service.RemoveDeliveryOption(c, id); err != nil {
		err = fmt.Errorf("failed removing delivery option with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteError(c, w, err)
		return
	}
	logger.Info().Msg("removed delivery option")

	inHttp.WriteNoContent(w)
}
