package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8000", cfg.Server.Port)
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, "hronedb", cfg.Mongo.Database)
		assert.Equal(t, 10, cfg.Mongo.ConnectTimeout)
		assert.Empty(t, cfg.Seed.ProductSources)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("missing connection string is fatal", func(t *testing.T) {
		t.Setenv("MONGO_URI", "")

		cfg, err := Load()
		assert.Nil(t, cfg)
		assert.ErrorContains(t, err, "MONGO_URI is required")
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://db:27017")
		t.Setenv("MONGO_DATABASE", "shop")
		t.Setenv("PORT", "9090")
		t.Setenv("SEED_PRODUCT_SOURCES", "https://example.com/a.ndjson.gz, ,/tmp/b.ndjson")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
		t.Setenv("READ_TIMEOUT", "not-a-number")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "shop", cfg.Mongo.Database)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 15, cfg.Server.ReadTimeout)
		assert.Equal(t, []string{"https://example.com/a.ndjson.gz", "/tmp/b.ndjson"}, cfg.Seed.ProductSources)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("LOG_LEVEL", "verbose")

		_, err := Load()
		assert.ErrorContains(t, err, "invalid log level")
	})
}
