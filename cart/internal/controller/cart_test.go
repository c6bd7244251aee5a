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

	"github.com/Alturino/storefront/cart/internal/service"
	"github.com/Alturino/storefront/cart/pkg/response"
	inHttp "github.com/Alturino/storefront/internal/http"
	"github.com/Alturino/storefront/internal/repository/fake"
	"github.com/Alturino/storefront/internal/seed"
)

const (
	socks      = "e43638ce-6aa0-4b85-b27f-e1d07eb678c6"
	basketball = "15b6fc6f-327a-4ec4-896f-486349e85a3d"
	toaster    = "54e0eccd-8f36-462b-b68a-8182611d9add"
	missing    = "00000000-0000-4000-8000-000000000000"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	store := fake.NewStore()
	_, err := seed.NewSeeder(store).Seed(context.Background())
	require.NoError(t, err)

	router := mux.NewRouter()
	AttachCartController(router.PathPrefix("/api").Subrouter(), service.NewCartService(store))
	return router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestFindCartItems(t *testing.T) {
	tests := []struct {
		name            string
		target          string
		expectedProduct bool
	}{
		{
			name:   "given no expand should return cart without products",
			target: "/api/cart-items",
		},
		{
			name:            "given expand product should embed products",
			target:          "/api/cart-items?expand=product",
			expectedProduct: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := serve(newRouter(t), http.MethodGet, test.target, "")

			require.Equal(t, http.StatusOK, rec.Code)
			items := decode[[]response.CartItem](t, rec)
			require.Len(t, items, len(seed.DefaultCart))
			assert.Equal(t, socks, items[0].ProductID.String())
			assert.Equal(t, int32(2), items[0].Quantity)
			assert.Equal(t, "1", items[0].DeliveryOptionID)
			for _, item := range items {
				if !test.expectedProduct {
					assert.Nil(t, item.Product)
					continue
				}
				require.NotNil(t, item.Product)
				assert.Equal(t, item.ProductID, item.Product.ID)
			}
		})
	}
}

func TestAddCartItem(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		expectedStatus   int
		expectedQuantity int32
	}{
		{
			name:             "given product not in cart should add it with default delivery option",
			body:             `{"productId":"` + toaster + `","quantity":3}`,
			expectedStatus:   http.StatusCreated,
			expectedQuantity: 3,
		},
		{
			name:             "given product already in cart should increment quantity",
			body:             `{"productId":"` + socks + `","quantity":1}`,
			expectedStatus:   http.StatusCreated,
			expectedQuantity: 3,
		},
		{
			name:           "given unknown product should return bad request",
			body:           `{"productId":"` + missing + `","quantity":1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "given zero quantity should return bad request",
			body:           `{"productId":"` + toaster + `","quantity":0}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "given missing product id should return bad request",
			body:           `{"quantity":1}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := serve(newRouter(t), http.MethodPost, "/api/cart-items", test.body)

			require.Equal(t, test.expectedStatus, rec.Code)
			if rec.Code != http.StatusCreated {
				assert.NotEmpty(t, decode[inHttp.ErrorResponse](t, rec).Error)
				return
			}
			item := decode[response.CartItem](t, rec)
			assert.Equal(t, test.expectedQuantity, item.Quantity)
			assert.Equal(t, service.DefaultDeliveryOptionID, item.DeliveryOptionID)
		})
	}
}

func TestUpdateCartItem(t *testing.T) {
	tests := []struct {
		name             string
		target           string
		body             string
		expectedStatus   int
		expectedQuantity int32
		expectedOption   string
	}{
		{
			name:             "given new quantity should keep delivery option",
			target:           "/api/cart-items/" + basketball,
			body:             `{"quantity":5}`,
			expectedStatus:   http.StatusOK,
			expectedQuantity: 5,
			expectedOption:   "2",
		},
		{
			name:             "given new delivery option should keep quantity",
			target:           "/api/cart-items/" + basketball,
			body:             `{"deliveryOptionId":"3"}`,
			expectedStatus:   http.StatusOK,
			expectedQuantity: 1,
			expectedOption:   "3",
		},
		{
			name:           "given unknown delivery option should return bad request",
			target:         "/api/cart-items/" + basketball,
			body:           `{"deliveryOptionId":"99"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "given zero quantity should return bad request",
			target:         "/api/cart-items/" + basketball,
			body:           `{"quantity":0}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "given product not in cart should return not found",
			target:         "/api/cart-items/" + toaster,
			body:           `{"quantity":2}`,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := serve(newRouter(t), http.MethodPut, test.target, test.body)

			require.Equal(t, test.expectedStatus, rec.Code)
			if rec.Code != http.StatusOK {
				assert.NotEmpty(t, decode[inHttp.ErrorResponse](t, rec).Error)
				return
			}
			item := decode[response.CartItem](t, rec)
			assert.Equal(t, test.expectedQuantity, item.Quantity)
			assert.Equal(t, test.expectedOption, item.DeliveryOptionID)
		})
	}
}

func TestRemoveCartItem(t *testing.T) {
	router := newRouter(t)

	rec := serve(router, http.MethodGet, "/api/cart-items/"+socks+"?expand=product", "")
	require.Equal(t, http.StatusOK, rec.Code)
	item := decode[response.CartItem](t, rec)
	require.NotNil(t, item.Product)
	assert.Equal(t, int64(1090), item.Product.PriceCents)

	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodDelete, "/api/cart-items/"+socks, "").Code)

	rec = serve(router, http.MethodGet, "/api/cart-items/"+socks, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cart item not found", decode[inHttp.ErrorResponse](t, rec).Error)

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodDelete, "/api/cart-items/"+socks, "").Code)
}
