package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alturino/storefront/deliveryoption/internal/service"
	"github.com/Alturino/storefront/deliveryoption/pkg/response"
	inHttp "github.com/Alturino/storefront/internal/http"
	"github.com/Alturino/storefront/internal/repository/fake"
	"github.com/Alturino/storefront/internal/seed"
)

var now = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	store := fake.NewStore()
	_, err := seed.NewSeeder(store).Seed(context.Background())
	require.NoError(t, err)

	router := mux.NewRouter()
	AttachDeliveryOptionController(
		router.PathPrefix("/api").Subrouter(),
		service.NewDeliveryOptionService(store, func() time.Time { return now }),
	)
	return router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestFindDeliveryOptions(t *testing.T) {
	tests := []struct {
		name             string
		target           string
		expectedEstimate bool
	}{
		{
			name:   "given no expand should omit estimated delivery time",
			target: "/api/delivery-options",
		},
		{
			name:             "given expand should include estimated delivery time",
			target:           "/api/delivery-options?expand=estimatedDeliveryTime",
			expectedEstimate: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := serve(newRouter(t), http.MethodGet, test.target, "")

			require.Equal(t, http.StatusOK, rec.Code)
			actual := []response.DeliveryOption{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actual))
			require.Len(t, actual, len(seed.DefaultDeliveryOptions))
			for i, d := range actual {
				assert.Equal(t, seed.DefaultDeliveryOptions[i].ID, d.ID)
				if !test.expectedEstimate {
					assert.Nil(t, d.EstimatedDeliveryTimeMs)
					continue
				}
				require.NotNil(t, d.EstimatedDeliveryTimeMs)
				expected := now.Add(time.Duration(d.DeliveryDays) * 24 * time.Hour).UnixMilli()
				assert.Equal(t, expected, *d.EstimatedDeliveryTimeMs)
			}
		})
	}
}

func TestDeliveryOptionController(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "given known id should return delivery option",
			method:         http.MethodGet,
			target:         "/api/delivery-options/2",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "given unknown id should return not found",
			method:         http.MethodGet,
			target:         "/api/delivery-options/42",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Delivery option not found",
		},
		{
			name:           "given new id should create delivery option",
			method:         http.MethodPost,
			target:         "/api/delivery-options",
			body:           `{"id":"4","label":"Pickup","deliveryDays":0,"priceCents":0}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "given existing id should return conflict",
			method:         http.MethodPost,
			target:         "/api/delivery-options",
			body:           `{"id":"1","label":"Pickup","deliveryDays":0,"priceCents":0}`,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "given negative price should return bad request",
			method:         http.MethodPost,
			target:         "/api/delivery-options",
			body:           `{"id":"5","label":"Pickup","deliveryDays":0,"priceCents":-1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "given known id should update delivery option",
			method:         http.MethodPut,
			target:         "/api/delivery-options/3",
			body:           `{"label":"Same Day","deliveryDays":0,"priceCents":1999}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "given unknown id should not update",
			method:         http.MethodPut,
			target:         "/api/delivery-options/42",
			body:           `{"label":"Same Day","deliveryDays":0,"priceCents":1999}`,
			expectedStatus: http.StatusNotFound,
			expectedError:  "Delivery option not found",
		},
		{
			name:           "given known id should delete delivery option",
			method:         http.MethodDelete,
			target:         "/api/delivery-options/3",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "given unknown id should not delete",
			method:         http.MethodDelete,
			target:         "/api/delivery-options/42",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Delivery option not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := serve(newRouter(t), test.method, test.target, test.body)

			assert.Equal(t, test.expectedStatus, rec.Code)
			if rec.Code < http.StatusBadRequest {
				return
			}
			body := inHttp.ErrorResponse{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
			if test.expectedError != "" {
				assert.Equal(t, test.expectedError, body.Error)
			}
		})
	}
}
