package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/holafushion/storefront/internal/pricing"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Config collects the storefront constants. Everything has a default; a
// .env file or the process environment overrides.
type Config struct {
	APIBaseURL string
	Currency   currency.Unit
	PageSize   int
	Rates      pricing.Rates
}

func Load() (*Config, error) {
	// Missing .env is fine, the defaults below carry.
	_ = godotenv.Load()

	unit, err := currency.ParseISO(getEnv("STOREFRONT_CURRENCY", "USD"))
	if err != nil {
		return nil, fmt.Errorf("currency.ParseISO: %w", err)
	}

	taxRate, err := getEnvAsDecimal("STOREFRONT_TAX_RATE", "0.14")
	if err != nil {
		return nil, err
	}

	freeOver, err := getEnvAsDecimal("STOREFRONT_FREE_SHIPPING_OVER", "50")
	if err != nil {
		return nil, err
	}

	shippingFee, err := getEnvAsDecimal("STOREFRONT_SHIPPING_FEE", "5.99")
	if err != nil {
		return nil, err
	}

	return &Config{
		APIBaseURL: getEnv("STOREFRONT_API_URL", "http://localhost:3000"),
		Currency:   unit,
		PageSize:   getEnvAsInt("STOREFRONT_PAGE_SIZE", 20),
		Rates: pricing.Rates{
			TaxRate:          taxRate,
			FreeShippingOver: freeOver,
			ShippingFee:      shippingFee,
			Currency:         unit,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDecimal(key, defaultValue string) (decimal.Decimal, error) {
	parsed, err := decimal.NewFromString(getEnv(key, defaultValue))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: decimal.NewFromString: %w", key, err)
	}
	return parsed, nil
}
