package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	inErrors "github.com/Alturino/storefront/internal/errors"
	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/otel"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJsonResponse(
	c context.Context,
	w http.ResponseWriter,
	header map[string]string,
	statusCode int,
	body any,
) {
	c, span := otel.Tracer.Start(c, "WriteJsonResponse")
	defer span.End()

	logger := zerolog.Ctx(c).With().Str(log.KeyTag, "WriteJsonResponse").Logger()

	w.Header().Set(KeyHeaderContentType, ValueHeaderApplicationJson)
	for k, v := range header {
		w.Header().Add(k, v)
	}
	w.WriteHeader(statusCode)

	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func WriteBadRequest(c context.Context, w http.ResponseWriter, err error) {
	WriteJsonResponse(c, w, nil, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// WriteInternalError answers with the generic failure body. The cause is
// logged by the caller and never sent to the client.
func WriteInternalError(c context.Context, w http.ResponseWriter) {
	WriteJsonResponse(
		c,
		w,
		nil,
		http.StatusInternalServerError,
		ErrorResponse{Error: inErrors.ErrInternal.Error()},
	)
}

// WriteError maps err onto the error taxonomy: lookup misses become 404,
// invalid input 400, duplicates 409 and anything else a generic 500.
func WriteError(c context.Context, w http.ResponseWriter, err error) {
	switch {
	case inErrors.IsNotFound(err):
		WriteJsonResponse(
			c,
			w,
			nil,
			http.StatusNotFound,
			ErrorResponse{Error: inErrors.NotFoundCause(err).Error()},
		)
	case errors.Is(err, inErrors.ErrInvalidRequest), errors.Is(err, inErrors.ErrEmptyOrder):
		WriteBadRequest(c, w, err)
	case errors.Is(err, inErrors.ErrProductAlreadyExist),
		errors.Is(err, inErrors.ErrDeliveryOptionAlreadyExist):
		WriteJsonResponse(c, w, nil, http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		WriteInternalError(c, w)
	}
}
