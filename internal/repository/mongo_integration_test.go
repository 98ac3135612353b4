//go:build testcontainers

package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/config"
	"github.com/Lixing-Zhang/ecommerce-backend/internal/models"
	"github.com/Lixing-Zhang/ecommerce-backend/internal/store"
)

// setupMongoStore starts a MongoDB container and returns a connected store.
func setupMongoStore(t *testing.T) *store.Store {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "docker.io/library/mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start MongoDB container")

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017/tcp")
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := store.Connect(ctx, config.MongoConfig{
		URI:            fmt.Sprintf("mongodb://%s:%s", host, port.Port()),
		Database:       "integration",
		ConnectTimeout: 30,
	}, log)
	require.True(t, s.Connected(), "store did not connect")

	t.Cleanup(func() {
		_ = s.Close(context.Background())
		_ = container.Terminate(context.Background())
	})

	return s
}

func TestMongoRepositories(t *testing.T) {
	s := setupMongoStore(t)
	ctx := context.Background()

	products := NewMongoProductRepository(s)
	orders := NewMongoOrderRepository(s)

	t.Run("product filters and projection", func(t *testing.T) {
		ids := seedProducts(t, products)

		n, err := products.Count(ctx, models.ProductFilter{Name: "shirt"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		list, err := products.List(ctx, models.ProductFilter{Size: "M"}, 10, 0)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, ids[0], list[0].ID)
		assert.Equal(t, ids[3], list[1].ID)
		assert.Nil(t, list[0].Sizes)

		n, err = products.Count(ctx, models.ProductFilter{Name: "t-shirt"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = products.Count(ctx, models.ProductFilter{Name: ".*"})
		require.NoError(t, err)
		assert.Zero(t, n, "name filter must be literal")

		window, err := products.List(ctx, models.ProductFilter{}, 2, 3)
		require.NoError(t, err)
		require.Len(t, window, 2)
		assert.Equal(t, ids[3], window[0].ID)
		assert.Equal(t, ids[4], window[1].ID)
	})

	t.Run("product lookups", func(t *testing.T) {
		id, err := products.Create(ctx, models.Product{Name: "Hoodie", Price: 55})
		require.NoError(t, err)

		p, err := products.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Hoodie", p.Name)
		assert.Empty(t, p.Sizes)

		_, err = products.GetByID(ctx, "malformed")
		assert.ErrorIs(t, err, ErrProductNotFound)

		_, err = products.GetByID(ctx, "000000000000000000000000")
		assert.ErrorIs(t, err, ErrProductNotFound)

		found, err := products.GetByIDs(ctx, []string{id, "malformed", "000000000000000000000000"})
		require.NoError(t, err)
		assert.Len(t, found, 1)
		assert.Equal(t, id, found[id].ID)
	})

	t.Run("orders by user", func(t *testing.T) {
		var ids []string
		for i := 1; i <= 3; i++ {
			id, err := orders.Create(ctx, models.Order{
				UserID: "user_1",
				Items:  []models.OrderItem{{ProductID: "not-checked", Qty: i}},
				Total:  float64(i * 10),
			})
			require.NoError(t, err)
			ids = append(ids, id)
		}
		_, err := orders.Create(ctx, models.Order{UserID: "user_2", Items: nil})
		require.NoError(t, err)

		n, err := orders.CountByUser(ctx, "user_1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		list, err := orders.ListByUser(ctx, "user_1", 2, 1)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, ids[1], list[0].ID)
		assert.Equal(t, ids[2], list[1].ID)
		assert.Equal(t, []models.OrderItem{{ProductID: "not-checked", Qty: 3}}, list[1].Items)
		assert.Equal(t, 30.0, list[1].Total)
	})
}
