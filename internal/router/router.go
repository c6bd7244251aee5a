package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/Alturino/storefront/internal/constants"
	inErrors "github.com/Alturino/storefront/internal/errors"
	inHttp "github.com/Alturino/storefront/internal/http"
	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/middleware"
	"github.com/Alturino/storefront/internal/otel"
)

const PrefixApi = "/api"

// Attach mounts one resource on the /api subrouter.
type Attach func(c context.Context, api *mux.Router)

type Options struct {
	Registry *prometheus.Registry
	Routes   []Attach
}

type HealthResponse struct {
	Status string `json:"status"`
}

func Health(w http.ResponseWriter, r *http.Request) {
	inHttp.WriteJsonResponse(
		r.Context(),
		w,
		nil,
		http.StatusOK,
		HealthResponse{Status: "Backend is running"},
	)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	inHttp.WriteJsonResponse(
		r.Context(),
		w,
		nil,
		http.StatusNotFound,
		inHttp.ErrorResponse{Error: inErrors.ErrRouteNotFound.Error()},
	)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	inHttp.WriteJsonResponse(
		r.Context(),
		w,
		nil,
		http.StatusMethodNotAllowed,
		inHttp.ErrorResponse{Error: inErrors.ErrMethodNotAllowed.Error()},
	)
}

// New builds the whole HTTP surface: health check, prometheus exposition and
// every resource under /api, wrapped in CORS.
func New(c context.Context, opts Options) (http.Handler, error) {
	c, span := otel.Tracer.Start(c, "router New")
	defer span.End()

	logger := zerolog.Ctx(c).With().Str(log.KeyTag, "router New").Logger()

	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	logger = logger.With().Str(log.KeyProcess, "registering http metrics").Logger()
	logger.Info().Msg("registering http metrics")
	metrics, err := middleware.NewMetrics(registry)
	if err != nil {
		err = fmt.Errorf("failed registering http metrics with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("registered http metrics")

	logger = logger.With().Str(log.KeyProcess, "initializing router").Logger()
	logger.Info().Msg("initializing router")
	router := mux.NewRouter()
	router.Use(
		otelmux.Middleware(constants.AppStorefront),
		middleware.Logging,
		metrics.Middleware,
		middleware.RecoverPanic,
	)
	router.NotFoundHandler = middleware.Logging(
		middleware.RecoverPanic(http.HandlerFunc(notFound)),
	)
	router.MethodNotAllowedHandler = middleware.Logging(
		middleware.RecoverPanic(http.HandlerFunc(methodNotAllowed)),
	)

	router.HandleFunc("/", Health).Methods(http.MethodGet)
	router.Handle(
		"/metrics",
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	).Methods(http.MethodGet)

	api := router.PathPrefix(PrefixApi).Subrouter()
	for _, attach := range opts.Routes {
		attach(c, api)
	}
	logger.Info().Int("resources", len(opts.Routes)).Msg("initialized router")

	return middleware.Cors(router), nil
}
