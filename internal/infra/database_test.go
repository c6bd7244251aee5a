package infra

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/Alturino/storefront/internal/config"
	"github.com/Alturino/storefront/internal/repository"
	"github.com/Alturino/storefront/internal/seed"
)

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	c := context.Background()
	pgContainer, err := postgres.Run(
		c,
		"postgres:16.6-alpine3.21",
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithDatabase("storefront"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed running postgres container with error: %s", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Errorf("failed to terminate container: %s", err)
		}
	})

	host, err := pgContainer.Host(c)
	if err != nil {
		t.Fatalf("failed getting postgres host with error: %s", err)
	}
	port, err := pgContainer.MappedPort(c, "5432/tcp")
	if err != nil {
		t.Fatalf("failed getting postgres port with error: %s", err)
	}

	pool, err := NewDatabaseClient(c, config.Database{
		Name:     "storefront",
		Host:     host,
		Password: "postgres",
		TimeZone: "UTC",
		Username: "postgres",
		SslMode:  "disable",
		Port:     uint16(port.Int()),
	})
	if err != nil {
		t.Fatalf("failed connecting to postgres with error: %s", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestStartupAgainstPostgres(t *testing.T) {
	pool := setupPostgres(t)
	c := context.Background()
	store := repository.NewStore(pool)
	migrator := NewMigrator(pool)

	require.NoError(t, migrator.Up(c))
	require.NoError(t, migrator.Up(c), "second migration run should be a no-op")

	base := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	seeder := seed.NewSeeder(store, seed.WithClock(func() time.Time { return base }))

	t.Run("given empty database should seed every default set", func(t *testing.T) {
		result, err := seeder.Seed(c)
		require.NoError(t, err)
		assert.True(t, result.Seeded)
		assert.EqualValues(t, len(seed.DefaultProducts), result.Products)
		assert.EqualValues(t, len(seed.DefaultDeliveryOptions), result.DeliveryOptions)
		assert.EqualValues(t, len(seed.DefaultCart), result.CartItems)
		assert.EqualValues(t, len(seed.DefaultOrders), result.Orders)
	})

	t.Run("given seeded database should not seed again", func(t *testing.T) {
		result, err := seeder.Seed(c)
		require.NoError(t, err)
		assert.False(t, result.Seeded)

		count, err := store.CountProducts(c)
		require.NoError(t, err)
		assert.EqualValues(t, len(seed.DefaultProducts), count)
	})

	t.Run("given seeded products should stamp base plus index milliseconds", func(t *testing.T) {
		rows, err := pool.Query(c, `SELECT created_at FROM products ORDER BY created_at`)
		require.NoError(t, err)
		createdAt, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
		require.NoError(t, err)

		require.Len(t, createdAt, len(seed.DefaultProducts))
		for i, at := range createdAt {
			assert.True(
				t,
				base.Add(time.Duration(i)*time.Millisecond).Equal(at),
				"row %d created at %s", i, at,
			)
		}
	})

	t.Run("given quantity below one should violate the cart check", func(t *testing.T) {
		_, err := store.UpsertCartItem(c, repository.UpsertCartItemParams{
			ProductID:        seed.DefaultProducts[2].ID,
			Quantity:         0,
			DeliveryOptionID: "1",
		})
		require.Error(t, err)
		assert.True(t, repository.IsCheckViolation(err))
	})

	t.Run("given existing delivery option id should violate uniqueness", func(t *testing.T) {
		_, err := store.InsertDeliveryOption(c, repository.InsertDeliveryOptionParams{
			ID:           "1",
			Label:        "Duplicate",
			DeliveryDays: 2,
			PriceCents:   0,
		})
		require.Error(t, err)
		assert.True(t, repository.IsUniqueViolation(err))
	})

	t.Run("given changed data should reset to defaults", func(t *testing.T) {
		_, err := store.DeleteProduct(c, seed.DefaultProducts[0].ID)
		require.NoError(t, err)

		result, err := seeder.Reset(c)
		require.NoError(t, err)
		assert.True(t, result.Seeded)

		count, err := store.CountProducts(c)
		require.NoError(t, err)
		assert.EqualValues(t, len(seed.DefaultProducts), count)

		orders, err := store.FindOrders(c)
		require.NoError(t, err)
		assert.Len(t, orders, len(seed.DefaultOrders))
	})
}
