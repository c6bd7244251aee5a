package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inHttp "github.com/Alturino/storefront/internal/http"
	"github.com/Alturino/storefront/internal/middleware"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	handler, err := New(context.Background(), Options{
		Registry: prometheus.NewRegistry(),
		Routes: []Attach{
			func(c context.Context, api *mux.Router) {
				api.HandleFunc("/explode", func(http.ResponseWriter, *http.Request) {
					panic("secret connection string")
				}).Methods(http.MethodGet)
			},
		},
	})
	require.NoError(t, err)
	return handler
}

func TestRouter(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   map[string]string
	}{
		{
			name:       "given GET / should report the backend is running",
			method:     http.MethodGet,
			target:     "/",
			wantStatus: http.StatusOK,
			wantBody:   map[string]string{"status": "Backend is running"},
		},
		{
			name:       "given unknown route should return json 404",
			method:     http.MethodGet,
			target:     "/api/unknown",
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]string{"error": "Not found"},
		},
		{
			name:       "given wrong method should return json 405",
			method:     http.MethodPost,
			target:     "/",
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   map[string]string{"error": "Method not allowed"},
		},
		{
			name:       "given panicking handler should return generic 500",
			method:     http.MethodGet,
			target:     "/api/explode",
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]string{"error": "Something went wrong!"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := newHandler(t)
			req := httptest.NewRequest(tc.method, tc.target, nil)
			req.Header.Set("Origin", "http://localhost:5173")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, inHttp.ValueHeaderApplicationJson, rec.Header().Get(inHttp.KeyHeaderContentType))
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.NotContains(t, rec.Body.String(), "secret")

			body := map[string]string{}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tc.wantBody, body)
		})
	}
}

func TestRouterPreflight(t *testing.T) {
	handler := newHandler(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRouterMetrics(t *testing.T) {
	handler := newHandler(t)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), middleware.MetricRequestsTotal)
}
