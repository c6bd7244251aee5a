package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alturino/storefront/internal/repository"
	"github.com/Alturino/storefront/internal/repository/fake"
)

var base = time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)

func fixedClock() func() time.Time {
	return func() time.Time { return base }
}

func TestSeed(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, store *fake.Store)
		expected Result
		calls    []string
	}{
		{
			name:  "given empty store should load every default set",
			setup: func(t *testing.T, store *fake.Store) {},
			expected: Result{
				Seeded:          true,
				Products:        int64(len(DefaultProducts)),
				DeliveryOptions: int64(len(DefaultDeliveryOptions)),
				CartItems:       int64(len(DefaultCart)),
				Orders:          int64(len(DefaultOrders)),
				Base:            base,
			},
			calls: []string{
				"CountProducts",
				"ExecTx",
				"CreateProducts",
				"CreateDeliveryOptions",
				"CreateCartItems",
				"CreateOrders",
			},
		},
		{
			name: "given store with one product should write nothing",
			setup: func(t *testing.T, store *fake.Store) {
				_, err := store.InsertProduct(context.Background(), repository.InsertProductParams{
					Name:       "Custom",
					Image:      "images/custom.jpg",
					Category:   "misc",
					PriceCents: 100,
				})
				require.NoError(t, err)
			},
			expected: Result{Seeded: false},
			calls:    []string{"InsertProduct", "CountProducts"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := fake.NewStore()
			test.setup(t, store)

			actual, err := NewSeeder(store, WithClock(fixedClock())).Seed(context.Background())

			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
			assert.Equal(t, test.calls, store.Calls())
		})
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	c := context.Background()
	store := fake.NewStore()
	seeder := NewSeeder(store, WithClock(fixedClock()))

	first, err := seeder.Seed(c)
	require.NoError(t, err)
	assert.True(t, first.Seeded)

	before, err := store.FindProducts(c)
	require.NoError(t, err)

	second, err := seeder.Seed(c)
	require.NoError(t, err)
	assert.False(t, second.Seeded)

	after, err := store.FindProducts(c)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	orders, err := store.FindOrders(c)
	require.NoError(t, err)
	assert.Len(t, orders, len(DefaultOrders))
}

func TestSeedTimestamps(t *testing.T) {
	c := context.Background()
	store := fake.NewStore()

	_, err := NewSeeder(store, WithClock(fixedClock())).Seed(c)
	require.NoError(t, err)

	products, err := store.FindProducts(c)
	require.NoError(t, err)
	require.Len(t, products, len(DefaultProducts))
	for i, p := range products {
		assert.Equal(t, DefaultProducts[i].ID, p.ID, "products keep default order")
		assert.Equal(t, base.Add(time.Duration(i)*time.Millisecond), p.CreatedAt.Time)
		assert.Equal(t, p.CreatedAt, p.UpdatedAt)
		if i > 0 {
			assert.True(t, p.CreatedAt.Time.After(products[i-1].CreatedAt.Time))
		}
	}

	deliveryOptions, err := store.FindDeliveryOptions(c)
	require.NoError(t, err)
	for i, d := range deliveryOptions {
		assert.Equal(t, base.Add(time.Duration(i)*time.Millisecond), d.CreatedAt.Time)
	}

	cartItems, err := store.FindCartItems(c)
	require.NoError(t, err)
	for _, ci := range cartItems {
		assert.False(t, ci.CreatedAt.Time.Before(base))
	}
}

func TestSeedRollsBackOnFailure(t *testing.T) {
	c := context.Background()
	store := fake.NewStore()
	store.Failures["CreateOrders"] = errors.New("connection reset")

	actual, err := NewSeeder(store, WithClock(fixedClock())).Seed(c)

	require.Error(t, err)
	assert.Equal(t, Result{}, actual)

	delete(store.Failures, "CreateOrders")
	count, err := store.CountProducts(c)
	require.NoError(t, err)
	assert.Zero(t, count)
	cartItems, err := store.FindCartItems(c)
	require.NoError(t, err)
	assert.Empty(t, cartItems)
}

func TestSeedFailsWhenCountFails(t *testing.T) {
	store := fake.NewStore()
	store.Failures["CountProducts"] = errors.New("relation \"products\" does not exist")

	_, err := NewSeeder(store).Seed(context.Background())

	require.Error(t, err)
	assert.NotContains(t, store.Calls(), "ExecTx")
}

func TestReset(t *testing.T) {
	c := context.Background()
	store := fake.NewStore()
	seeder := NewSeeder(store, WithClock(fixedClock()))

	_, err := seeder.Seed(c)
	require.NoError(t, err)

	_, err = store.DeleteCartItemByProductId(c, DefaultCart[0].ProductID)
	require.NoError(t, err)
	_, err = store.InsertOrder(c, repository.InsertOrderParams{
		ID:          uuid.New(),
		OrderTimeMs: 1,
		Products:    []byte(`[]`),
	})
	require.NoError(t, err)

	later := base.Add(time.Hour)
	seeder.now = func() time.Time { return later }
	actual, err := seeder.Reset(c)
	require.NoError(t, err)

	assert.Equal(t, Result{
		Seeded:          true,
		Products:        int64(len(DefaultProducts)),
		DeliveryOptions: int64(len(DefaultDeliveryOptions)),
		CartItems:       int64(len(DefaultCart)),
		Orders:          int64(len(DefaultOrders)),
		Base:            later,
	}, actual)

	cartItems, err := store.FindCartItems(c)
	require.NoError(t, err)
	assert.Len(t, cartItems, len(DefaultCart))
	orders, err := store.FindOrders(c)
	require.NoError(t, err)
	assert.Len(t, orders, len(DefaultOrders))
	for _, o := range orders {
		assert.False(t, o.CreatedAt.Time.Before(later))
	}
}

func TestOrderTotal(t *testing.T) {
	assert.Equal(t, int64(3506), OrderTotal(DefaultOrders[0].Products))
	assert.Equal(t, int64(5708), OrderTotal(DefaultOrders[1].Products))
}
