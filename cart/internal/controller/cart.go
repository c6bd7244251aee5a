package controller

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/cart/internal/otel"
	"github.com/Alturino/storefront/cart/internal/service"
	"github.com/Alturino/storefront/cart/pkg/request"
	inErrors "github.com/Alturino/storefront/internal/errors"
	inHttp "github.com/Alturino/storefront/internal/http"
	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
	"github.com/Alturino/storefront/internal/validate"
)

const (
	keyProductID  = "productId"
	expandProduct = "product"
)

type CartController struct {
	service *service.CartService
}

func AttachCartController(mux *mux.Router, service *service.CartService) {
	controller := CartController{service}

	router := mux.PathPrefix("/cart-items").Subrouter()
	router.HandleFunc("", controller.FindCartItems).Methods(http.MethodGet)
	router.HandleFunc("", controller.AddCartItem).Methods(http.MethodPost)
	router.HandleFunc("/{productId}", controller.FindCartItemByProductId).Methods(http.MethodGet)
	router.HandleFunc("/{productId}", controller.UpdateCartItem).Methods(http.MethodPut)
	router.HandleFunc("/{productId}", controller.RemoveCartItem).Methods(http.MethodDelete)
}

func (ctrl CartController) FindCartItems(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController FindCartItems")
	defer span.End()

	expand := inHttp.HasExpand(r, expandProduct)
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController FindCartItems").
		Bool(log.KeyExpand, expand).
		Str(log.KeyProcess, "finding cart items").
		Logger()

	logger.Info().Msg("finding cart items")
	c = logger.WithContext(c)
	items, err := ctrl.service.FindCartItems(c, expand)
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteError(c, w, err)
		return
	}
	logger.Info().Msg("found cart items")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, items)
}

func (ctrl CartController) FindCartItemByProductId(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController FindCartItemByProductId")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController FindCartItemByProductId").
		Logger()

	productID, err := inHttp.PathUUID(r, keyProductID, inErrors.ErrCartItemNotFound)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		inHttp.WriteError(c, w, err)
		return
	}

	logger = logger.With().
		Str(log.KeyProductID, productID.String()).
		Str(log.KeyProcess, "finding cart item").
		Logger()
	logger.Info().Msg("finding cart item")
	c = logger.WithContext(c)
	item, err := ctrl.service.FindCartItemByProductId(c, productID, inHttp.HasExpand(r, expandProduct))
	if err != nil {
		err = fmt.Errorf("failed finding cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteError(c, w, err)
		return
	}
	logger.Info().Msg("found cart item")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, item)
}

func (ctrl CartController) AddCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController AddCartItem").
		Logger()

	reqBody := request.InsertCartItem{}
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

	logger = logger.With().Str(log.KeyProcess, "adding cart item").Logger()
	logger.Info().Msg("adding cart item")
	c = logger.WithContext(c)
	item, err := ctrl.service.AddCartItem(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed adding cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteError(c, w, err)
		return
	}
	logger.Info().Msg("added cart item")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusCreated, item)
}

func (ctrl CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController UpdateCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController UpdateCartItem").
		Logger()

	productID, err := inHttp.PathUUID(r, keyProductID, inErrors.ErrCartItemNotFound)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		inHttp.WriteError(c, w, err)
		return
	}
	logger = logger.With().Str(log.KeyProductID, productID.String()).Logger()

	reqBody := request.UpdateCartItem{}
	if err = inHttp.DecodeJsonBody(r, &reqBody); err != nil {
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		inHttp.WriteBadRequest(c, w, err)
		return
	}
	if err = validate.Struct(c, reqBody); err != nil {
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		inHttp.WriteBadRequest(c, w, err)
		return
	}

	logger = logger.With().Str(log.KeyProcess, "updating cart item").Logger()
	logger.Info().Msg("updating cart item")
	c = logger.WithContext(c)
	item, err := ctrl.service.UpdateCartItem(c, productID, reqBody)
	if err != nil {
		err = fmt.Errorf("failed updating cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteError(c, w, err)
		return
	}
	logger.Info().Msg("updated cart item")

	inHttp.WriteJsonResponse(c, w, nil, http.StatusOK, item)
}

func (ctrl CartController) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController RemoveCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController RemoveCartItem").
		Logger()

	productID, err := inHttp.PathUUID(r, keyProductID, inErrors.ErrCartItemNotFound)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		inHttp.WriteError(c, w, err)
		return
	}

	logger = logger.With().
		Str(log.KeyProductID, productID.String()).
		Str(log.KeyProcess, "removing cart item").
		Logger()
	logger.Info().Msg("removing cart item")
	c = logger.WithContext(c)
	if err = ctrl.service.RemoveCartItem(c, productID); err != nil {
		err = fmt.Errorf("failed removing cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteError(c, w, err)
		return
	}
	logger.Info().Msg("removed cart item")

	inHttp.WriteNoContent(w)
}
