package config_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/holafushion/storefront/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, currency.USD, cfg.Currency)
	assert.Equal(t, 20, cfg.PageSize)
	assert.True(t, cfg.Rates.TaxRate.Equal(decimal.RequireFromString("0.14")))
	assert.True(t, cfg.Rates.FreeShippingOver.Equal(decimal.RequireFromString("50")))
	assert.True(t, cfg.Rates.ShippingFee.Equal(decimal.RequireFromString("5.99")))
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_API_URL", "https://api.example.com")
	t.Setenv("STOREFRONT_CURRENCY", "EUR")
	t.Setenv("STOREFRONT_PAGE_SIZE", "12")
	t.Setenv("STOREFRONT_TAX_RATE", "0.2")
	t.Setenv("STOREFRONT_SHIPPING_FEE", "3.49")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, currency.EUR, cfg.Currency)
	assert.Equal(t, 12, cfg.PageSize)
	assert.True(t, cfg.Rates.TaxRate.Equal(decimal.RequireFromString("0.2")))
	assert.True(t, cfg.Rates.ShippingFee.Equal(decimal.RequireFromString("3.49")))
	assert.Equal(t, currency.EUR, cfg.Rates.Currency)
}

func TestLoadRejectsGarbage(t *testing.T) {
	t.Setenv("STOREFRONT_CURRENCY", "not-a-currency")
	_, err := config.Load()
	require.Error(t, err)

	t.Setenv("STOREFRONT_CURRENCY", "USD")
	t.Setenv("STOREFRONT_TAX_RATE", "fourteen percent")
	_, err = config.Load()
	require.Error(t, err)

	// unparsable ints fall back to the default instead of failing
	t.Setenv("STOREFRONT_TAX_RATE", "0.14")
	t.Setenv("STOREFRONT_PAGE_SIZE", "twenty")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.PageSize)
}
