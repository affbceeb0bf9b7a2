package pricing_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/holafushion/storefront/internal/domain"
	"github.com/holafushion/storefront/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

var totalsComparers = cmp.Options{
	cmp.Comparer(func(a, b decimal.Decimal) bool {
		return a.Equal(b)
	}),
	// currency.Unit is opaque to cmp but directly comparable
	cmp.Comparer(func(a, b currency.Unit) bool {
		return a == b
	}),
}

func line(price string, qty int) domain.CartLine {
	return domain.CartLine{
		Product: domain.Product{
			Price: domain.NewMoney(decimal.RequireFromString(price), currency.USD),
		},
		Quantity: qty,
	}
}

func TestComputeTotals(t *testing.T) {
	rates := pricing.DefaultRates()

	tests := []struct {
		name         string
		lines        []domain.CartLine
		wantSubtotal string
		wantTaxes    string
		wantShipping string
		wantTotal    string
	}{
		{
			name:         "below free-shipping threshold: flat fee applies",
			lines:        []domain.CartLine{line("10", 2), line("5", 1)},
			wantSubtotal: "25.00",
			wantTaxes:    "3.50",
			wantShipping: "5.99",
			wantTotal:    "34.49",
		},
		{
			name:         "above threshold: free shipping, taxes rounded half-up",
			lines:        []domain.CartLine{line("19.99", 3), line("5.00", 1)},
			wantSubtotal: "64.97",
			wantTaxes:    "9.10", // 64.97 * 0.14 = 9.0958
			wantShipping: "0",
			wantTotal:    "74.07",
		},
		{
			name:         "subtotal exactly at threshold: fee still applies",
			lines:        []domain.CartLine{line("50", 1)},
			wantSubtotal: "50.00",
			wantTaxes:    "7.00",
			wantShipping: "5.99",
			wantTotal:    "62.99",
		},
		{
			name:         "empty cart: everything zero, no shipping fee",
			lines:        nil,
			wantSubtotal: "0",
			wantTaxes:    "0",
			wantShipping: "0",
			wantTotal:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := pricing.ComputeTotals(domain.Cart{Lines: tt.lines}, rates)

			assertAmount(t, tt.wantSubtotal, totals.Subtotal)
			assertAmount(t, tt.wantTaxes, totals.Taxes)
			assertAmount(t, tt.wantShipping, totals.Shipping)
			assertAmount(t, tt.wantTotal, totals.Total)
		})
	}
}

func TestComputeTotalsDeterministic(t *testing.T) {
	rates := pricing.DefaultRates()
	cart := domain.Cart{Lines: []domain.CartLine{line("19.99", 3), line("5.00", 1)}}

	first := pricing.ComputeTotals(cart, rates)
	second := pricing.ComputeTotals(cart, rates)

	if diff := cmp.Diff(first, second, totalsComparers); diff != "" {
		t.Errorf("totals differ between calls (-first +second):\n%s", diff)
	}
}

func TestComputeTotalsDoesNotMutateCart(t *testing.T) {
	rates := pricing.DefaultRates()
	cart := domain.Cart{Lines: []domain.CartLine{line("10", 2)}}

	_ = pricing.ComputeTotals(cart, rates)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.True(t, cart.Lines[0].Price.Amount.Equal(decimal.RequireFromString("10")))
}

func assertAmount(t *testing.T, want string, got domain.Money) {
	t.Helper()
	assert.True(t, got.Amount.Equal(decimal.RequireFromString(want)),
		"want %s, got %s", want, got.Amount.String())
}
