package config_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varun123-lab/Mario-Vendor/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "storefront.json", cfg.StorePath)
	assert.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.08")))
	assert.True(t, cfg.FreeShippingMin.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, cfg.FlatShipping.Equal(decimal.RequireFromString("9.99")))
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_PATH", "/tmp/demo.json")
	t.Setenv("TAX_RATE", "0.10")
	t.Setenv("FREE_SHIPPING_MIN", "100")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/demo.json", cfg.StorePath)
	assert.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.10")))
	assert.True(t, cfg.FreeShippingMin.Equal(decimal.RequireFromString("100")))
}

func TestLoadRejectsBadDecimal(t *testing.T) {
	t.Setenv("TAX_RATE", "eight percent")

	_, err := config.Load()

	assert.Error(t, err)
}

func TestLoadRejectsNegativeTaxRate(t *testing.T) {
	t.Setenv("TAX_RATE", "-0.01")

	_, err := config.Load()

	assert.Error(t, err)
}
