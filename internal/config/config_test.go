package config

import (
	"os"
	"path/filepath"
	"testing"

	"mitrasafety/storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "api:\n  base_url: http://shop.local\n"))
	require.NoError(t, err)

	assert.Equal(t, "http://shop.local", cfg.API.BaseURL)
	assert.Equal(t, CartBackendSQLite, cfg.Cart.Backend)
	assert.Equal(t, "mitra-safety-cart", cfg.Cart.StorageKey)
	assert.Equal(t, domain.DefaultPricing(), cfg.Cart.Pricing())
	assert.Equal(t, domain.DefaultMaxPrice, cfg.Filters.MaxPrice)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileOverridesPricing(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, `
cart:
  backend: redis
  free_shipping_threshold: 750000
  flat_shipping_fee: 15000
`))
	require.NoError(t, err)

	assert.Equal(t, CartBackendRedis, cfg.Cart.Backend)
	assert.Equal(t, domain.Pricing{FreeShippingThreshold: 750000, FlatShippingFee: 15000}, cfg.Cart.Pricing())
}

func TestLoadFileEnvOverride(t *testing.T) {
	t.Setenv("CART_FLAT_SHIPPING_FEE", "30000")

	cfg, err := LoadFile(writeConfig(t, "log:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, int64(30000), cfg.Cart.FlatShippingFee)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFileRejectsUnknownBackend(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "cart:\n  backend: floppy\n"))
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5432, Name: "shop", User: "u", Password: "p"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=shop sslmode=disable", cfg.DSN())
}
