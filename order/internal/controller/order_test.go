package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inHttp "github.com/Alturino/storefront/internal/http"
	"github.com/Alturino/storefront/internal/repository/fake"
	"github.com/Alturino/storefront/internal/seed"
	"github.com/Alturino/storefront/order/internal/service"
	"github.com/Alturino/storefront/order/pkg/response"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	store := fake.NewStore()
	_, err := seed.NewSeeder(store).Seed(context.Background())
	require.NoError(t, err)

	router := mux.NewRouter()
	AttachOrderController(router.PathPrefix("/api").Subrouter(), service.NewOrderService(store, nil))
	return router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestOrderController(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "given seeded orders should list them",
			method:         http.MethodGet,
			target:         "/api/orders?expand=products",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "given default order id should return it",
			method:         http.MethodGet,
			target:         "/api/orders/27cba69d-4c3d-4098-b42d-ac7fa62b7664",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "given unknown order id should return not found",
			method:         http.MethodGet,
			target:         "/api/orders/00000000-0000-4000-8000-000000000000",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Order not found",
		},
		{
			name:           "given valid line items should create order",
			method:         http.MethodPost,
			target:         "/api/orders",
			body:           `{"products":[{"productId":"e43638ce-6aa0-4b85-b27f-e1d07eb678c6","quantity":1,"deliveryOptionId":"3"}]}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "given empty line items should return bad request",
			method:         http.MethodPost,
			target:         "/api/orders",
			body:           `{"products":[]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "given unknown product should return bad request",
			method:         http.MethodPost,
			target:         "/api/orders",
			body:           `{"products":[{"productId":"00000000-0000-4000-8000-000000000000","quantity":1,"deliveryOptionId":"1"}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "given orders are immutable should not route delete",
			method:         http.MethodDelete,
			target:         "/api/orders/27cba69d-4c3d-4098-b42d-ac7fa62b7664",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := serve(newRouter(t), test.method, test.target, test.body)

			assert.Equal(t, test.expectedStatus, rec.Code)
			if test.expectedError != "" {
				body := inHttp.ErrorResponse{}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, test.expectedError, body.Error)
			}
		})
	}
}

func TestCreatedOrderIsListedFirst(t *testing.T) {
	router := newRouter(t)

	rec := serve(router, http.MethodPost, "/api/orders",
		`{"products":[{"productId":"e43638ce-6aa0-4b85-b27f-e1d07eb678c6","quantity":1,"deliveryOptionId":"3"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := response.Order{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	// 1090 + 999 = 2089, tax 209
	assert.Equal(t, int64(2298), created.TotalCostCents)

	rec = serve(router, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	orders := []response.Order{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, len(seed.DefaultOrders)+1)
	assert.Equal(t, created.ID, orders[0].ID)
}
