package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	testRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/Alturino/storefront/internal/config"
)

func TestNewCacheClient(t *testing.T) {
	t.Run("given unreachable redis should return error", func(t *testing.T) {
		client, err := NewCacheClient(context.Background(), config.Cache{
			Enabled: true,
			Host:    "127.0.0.1",
			Port:    1,
		})
		assert.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("given running redis should ping", func(t *testing.T) {
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

		host, err := redisContainer.Host(c)
		require.NoError(t, err)
		port, err := redisContainer.MappedPort(c, "6379/tcp")
		require.NoError(t, err)

		client, err := NewCacheClient(c, config.Cache{
			Enabled: true,
			Host:    host,
			Port:    uint16(port.Int()),
		})
		require.NoError(t, err)
		t.Cleanup(func() { client.Close() })

		require.NoError(t, client.Set(c, "storefront:ping", "pong", 0).Err())
		value, err := client.Get(c, "storefront:ping").Result()
		require.NoError(t, err)
		assert.Equal(t, "pong", value)
	})
}
