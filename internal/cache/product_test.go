package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	testRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/Alturino/storefront/product/pkg/response"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	c := context.Background()
	redisContainer, err := testRedis.Run(c, "redis:7.4.2-alpine3.21")
	if err != nil {
		t.Fatalf("failed running redis container with error: %s", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(redisContainer); err != nil {
			t.Errorf("failed to terminate container: %s", err)
		}
	})

	redisConnStr, err := redisContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting redis connection string with error: %s", err)
	}
	redisOpt, err := redis.ParseURL(redisConnStr)
	if err != nil {
		t.Fatalf("failed parsing redis connection string with error: %s", err)
	}
	client := redis.NewClient(redisOpt)
	t.Cleanup(func() { client.Close() })
	if err = client.Ping(c).Err(); err != nil {
		t.Fatalf("failed ping redis client with error: %s", err)
	}
	return client
}

func TestRedisProductCache(t *testing.T) {
	client := setupRedis(t)
	c := context.Background()
	productCache := NewRedisProductCache(client, time.Minute)

	product := response.Product{
		ID:         uuid.New(),
		Name:       "Intermediate Size Basketball",
		Image:      "images/products/intermediate-composite-basketball.jpg",
		Category:   "sports",
		PriceCents: 2095,
		Rating:     response.Rating{Stars: 4, Count: 127},
		Keywords:   []string{"sports", "basketballs"},
		CreatedAt:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := productCache.Get(c, product.ID)
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, productCache.Set(c, product))
	actual, err := productCache.Get(c, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product, actual)

	ttl, err := client.TTL(c, ProductKey(product.ID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, productCache.Delete(c, product.ID))
	_, err = productCache.Get(c, product.ID)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisProductCacheFlush(t *testing.T) {
	client := setupRedis(t)
	c := context.Background()
	productCache := NewRedisProductCache(client, time.Minute)

	ids := make([]uuid.UUID, 0, 250)
	for i := range 250 {
		id := uuid.New()
		ids = append(ids, id)
		require.NoError(t, productCache.Set(c, response.Product{
			ID:         id,
			Name:       fmt.Sprintf("product %d", i),
			PriceCents: int64(i + 1),
			Keywords:   []string{},
		}))
	}
	require.NoError(t, client.Set(c, "unrelated", "value", 0).Err())

	require.NoError(t, productCache.Flush(c))

	for _, id := range ids {
		_, err := productCache.Get(c, id)
		assert.ErrorIs(t, err, ErrCacheMiss)
	}
	value, err := client.Get(c, "unrelated").Result()
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestNoop(t *testing.T) {
	c := context.Background()
	id := uuid.New()

	assert.NoError(t, Noop{}.Set(c, response.Product{ID: id}))
	_, err := Noop{}.Get(c, id)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, Noop{}.Delete(c, id))
	assert.NoError(t, Noop{}.Flush(c))
}
