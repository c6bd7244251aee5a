package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cacheFake "github.com/Alturino/storefront/internal/cache/fake"
	"github.com/Alturino/storefront/internal/repository"
	"github.com/Alturino/storefront/internal/repository/fake"
	"github.com/Alturino/storefront/internal/seed"
	productResponse "github.com/Alturino/storefront/product/pkg/response"
	"github.com/Alturino/storefront/reset/internal/service"
)

func TestReset(t *testing.T) {
	tests := []struct {
		name           string
		failures       map[string]error
		expectedStatus int
		expectedCount  int
	}{
		{
			name:           "given modified data should restore defaults",
			expectedStatus: http.StatusNoContent,
			expectedCount:  len(seed.DefaultProducts),
		},
		{
			name:           "given storage failure should keep current data",
			failures:       map[string]error{"CreateOrders": errors.New("disk full")},
			expectedStatus: http.StatusInternalServerError,
			expectedCount:  len(seed.DefaultProducts) + 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := context.Background()
			store := fake.NewStore()
			seeder := seed.NewSeeder(store)
			_, err := seeder.Seed(c)
			require.NoError(t, err)
			_, err = store.InsertProduct(c, repository.InsertProductParams{
				Name:       "Umbrella",
				Image:      "images/products/umbrella.jpg",
				Category:   "accessories",
				PriceCents: 1500,
			})
			require.NoError(t, err)

			productCache := cacheFake.NewProductCache()
			require.NoError(t, productCache.Set(c, productResponse.Product{ID: uuid.New()}))
			for k, v := range test.failures {
				store.Failures[k] = v
			}

			router := mux.NewRouter()
			AttachResetController(
				router.PathPrefix("/api").Subrouter(),
				service.NewResetService(seeder, productCache),
			)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/reset", nil))

			assert.Equal(t, test.expectedStatus, rec.Code)
			for k := range test.failures {
				delete(store.Failures, k)
			}
			count, err := store.CountProducts(c)
			require.NoError(t, err)
			assert.Equal(t, int64(test.expectedCount), count)
			if test.expectedStatus == http.StatusNoContent {
				assert.Zero(t, productCache.Len())
			}
		})
	}
}
