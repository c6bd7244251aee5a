package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cacheFake "github.com/Alturino/storefront/internal/cache/fake"
	inErrors "github.com/Alturino/storefront/internal/errors"
	"github.com/Alturino/storefront/internal/repository/fake"
	"github.com/Alturino/storefront/internal/seed"
	"github.com/Alturino/storefront/product/pkg/request"
)

var socksID = uuid.MustParse("e43638ce-6aa0-4b85-b27f-e1d07eb678c6")

func setup(t *testing.T) (*ProductService, *fake.Store, *cacheFake.ProductCache) {
	t.Helper()
	store := fake.NewStore()
	_, err := seed.NewSeeder(store).Seed(context.Background())
	require.NoError(t, err)
	productCache := cacheFake.NewProductCache()
	return NewProductService(store, productCache), store, productCache
}

func TestFindProducts(t *testing.T) {
	tests := []struct {
		name          string
		search        string
		expectedCount int
		expectedFirst string
	}{
		{
			name:          "given no search should return every product in seed order",
			expectedCount: len(seed.DefaultProducts),
			expectedFirst: seed.DefaultProducts[0].Name,
		},
		{
			name:          "given search matching a keyword should return matching products",
			search:        "BASKETBALLS",
			expectedCount: 1,
			expectedFirst: "Intermediate Size Basketball",
		},
		{
			name:          "given search matching a name should return matching products",
			search:        "toaster",
			expectedCount: 1,
			expectedFirst: "2 Slot Toaster - Black",
		},
		{
			name:          "given search matching nothing should return empty list",
			search:        "submarine",
			expectedCount: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, _, _ := setup(t)

			actual, err := svc.FindProducts(context.Background(), request.FindProducts{Search: test.search})

			require.NoError(t, err)
			assert.NotNil(t, actual)
			assert.Len(t, actual, test.expectedCount)
			if test.expectedCount > 0 {
				assert.Equal(t, test.expectedFirst, actual[0].Name)
			}
		})
	}
}

func TestFindProductById(t *testing.T) {
	c := context.Background()
	svc, store, productCache := setup(t)

	first, err := svc.FindProductById(c, socksID)
	require.NoError(t, err)
	assert.Equal(t, int64(1090), first.PriceCents)
	assert.Equal(t, 1, productCache.Len())

	second, err := svc.FindProductById(c, socksID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	lookups := 0
	for _, call := range store.Calls() {
		if call == "FindProductById" {
			lookups++
		}
	}
	assert.Equal(t, 1, lookups, "second read is served from cache")

	_, err = svc.FindProductById(c, uuid.New())
	assert.ErrorIs(t, err, inErrors.ErrProductNotFound)
}

func TestFindProductByIdIgnoresCacheFailure(t *testing.T) {
	svc, _, productCache := setup(t)
	productCache.Failures["Get"] = errors.New("connection refused")
	productCache.Failures["Set"] = errors.New("connection refused")

	actual, err := svc.FindProductById(context.Background(), socksID)

	require.NoError(t, err)
	assert.Equal(t, socksID, actual.ID)
}

func TestUpdateAndRemoveProduct(t *testing.T) {
	c := context.Background()
	svc, _, productCache := setup(t)

	_, err := svc.FindProductById(c, socksID)
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(c, socksID, request.Product{
		Name:       "Socks",
		Image:      "images/products/socks.jpg",
		Category:   "apparel",
		PriceCents: 1200,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1200), updated.PriceCents)
	assert.Equal(t, []string{}, updated.Keywords)
	assert.Zero(t, productCache.Len(), "update evicts the cached product")

	actual, err := svc.FindProductById(c, socksID)
	require.NoError(t, err)
	assert.Equal(t, "Socks", actual.Name)

	require.NoError(t, svc.RemoveProduct(c, socksID))
	_, err = svc.FindProductById(c, socksID)
	assert.ErrorIs(t, err, inErrors.ErrProductNotFound)

	err = svc.RemoveProduct(c, socksID)
	assert.ErrorIs(t, err, inErrors.ErrProductNotFound)

	_, err = svc.UpdateProduct(c, uuid.New(), request.Product{Name: "x", PriceCents: 1})
	assert.ErrorIs(t, err, inErrors.ErrProductNotFound)
}

func TestInsertProduct(t *testing.T) {
	c := context.Background()
	svc, _, _ := setup(t)

	inserted, err := svc.InsertProduct(c, request.Product{
		Name:       "Umbrella",
		Image:      "images/products/umbrella.jpg",
		Category:   "accessories",
		PriceCents: 1500,
		Rating:     request.Rating{Stars: 4.5, Count: 12},
		Keywords:   []string{"rain"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, inserted.ID)

	actual, err := svc.FindProductById(c, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, inserted, actual)
}
