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

	cacheFake "github.com/Alturino/storefront/internal/cache/fake"
	inHttp "github.com/Alturino/storefront/internal/http"
	"github.com/Alturino/storefront/internal/repository/fake"
	"github.com/Alturino/storefront/internal/seed"
	"github.com/Alturino/storefront/product/internal/service"
	"github.com/Alturino/storefront/product/pkg/response"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	store := fake.NewStore()
	_, err := seed.NewSeeder(store).Seed(context.Background())
	require.NoError(t, err)

	router := mux.NewRouter()
	AttachProductController(
		router.PathPrefix("/api").Subrouter(),
		service.NewProductService(store, cacheFake.NewProductCache()),
	)
	return router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProductController(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "given seeded catalog should list products",
			method:         http.MethodGet,
			target:         "/api/products",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "given known id should return product",
			method:         http.MethodGet,
			target:         "/api/products/15b6fc6f-327a-4ec4-896f-486349e85a3d",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "given unknown id should return not found",
			method:         http.MethodGet,
			target:         "/api/products/00000000-0000-4000-8000-000000000000",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Product not found",
		},
		{
			name:           "given malformed id should return not found",
			method:         http.MethodGet,
			target:         "/api/products/not-a-uuid",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Product not found",
		},
		{
			name:           "given valid body should create product",
			method:         http.MethodPost,
			target:         "/api/products",
			body:           `{"name":"Umbrella","image":"images/products/umbrella.jpg","category":"accessories","priceCents":1500,"keywords":["rain"]}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "given non positive price should return bad request",
			method:         http.MethodPost,
			target:         "/api/products",
			body:           `{"name":"Umbrella","image":"images/products/umbrella.jpg","category":"accessories","priceCents":0}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "given malformed json should return bad request",
			method:         http.MethodPost,
			target:         "/api/products",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "given update of unknown id should return not found",
			method:         http.MethodPut,
			target:         "/api/products/00000000-0000-4000-8000-000000000000",
			body:           `{"name":"Umbrella","image":"images/products/umbrella.jpg","category":"accessories","priceCents":1500}`,
			expectedStatus: http.StatusNotFound,
			expectedError:  "Product not found",
		},
		{
			name:           "given known id should delete product",
			method:         http.MethodDelete,
			target:         "/api/products/15b6fc6f-327a-4ec4-896f-486349e85a3d",
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := serve(newRouter(t), test.method, test.target, test.body)

			assert.Equal(t, test.expectedStatus, rec.Code)
			if test.expectedStatus == http.StatusNoContent {
				assert.Empty(t, rec.Body.Bytes())
				return
			}
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if rec.Code >= http.StatusBadRequest {
				body := inHttp.ErrorResponse{}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.NotEmpty(t, body.Error)
				if test.expectedError != "" {
					assert.Equal(t, test.expectedError, body.Error)
				}
			}
		})
	}
}

func TestFindProductsSearch(t *testing.T) {
	rec := serve(newRouter(t), http.MethodGet, "/api/products?search=sock", "")

	require.Equal(t, http.StatusOK, rec.Code)
	products := []response.Product{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, int64(1090), products[0].PriceCents)
	assert.Equal(t, 4.5, products[0].Rating.Stars)
}

func TestDeletedProductIsGone(t *testing.T) {
	router := newRouter(t)
	target := "/api/products/e43638ce-6aa0-4b85-b27f-e1d07eb678c6"

	require.Equal(t, http.StatusOK, serve(router, http.MethodGet, target, "").Code)
	require.Equal(t, http.StatusNoContent, serve(router, http.MethodDelete, target, "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, target, "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodDelete, target, "").Code)
}
