package pricing

import (
	"github.com/holafushion/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Rates carries the pricing constants. Tax is a single flat rate; shipping
// is free above the threshold and a flat fee otherwise.
type Rates struct {
	TaxRate          decimal.Decimal
	FreeShippingOver decimal.Decimal
	ShippingFee      decimal.Decimal
	Currency         currency.Unit
}

func DefaultRates() Rates {
	return Rates{
		TaxRate:          decimal.RequireFromString("0.14"),
		FreeShippingOver: decimal.RequireFromString("50"),
		ShippingFee:      decimal.RequireFromString("5.99"),
		Currency:         currency.USD,
	}
}

// Totals is derived from the cart on every read and never stored.
type Totals struct {
	Subtotal domain.Money
	Taxes    domain.Money
	Shipping domain.Money
	Total    domain.Money
}

// ComputeTotals is a pure function of the cart and the rates.
//
// Numeric policy: taxes are computed on the exact subtotal, then subtotal,
// taxes and shipping are each rounded half-up to two decimal places and the
// total is the sum of the rounded components.
func ComputeTotals(cart domain.Cart, rates Rates) Totals {
	subtotal := decimal.Zero
	for _, line := range cart.Lines {
		subtotal = subtotal.Add(line.Price.Amount.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	taxes := subtotal.Mul(rates.TaxRate)

	shipping := decimal.Zero
	if len(cart.Lines) > 0 && !subtotal.GreaterThan(rates.FreeShippingOver) {
		shipping = rates.ShippingFee
	}

	subtotal = subtotal.Round(2)
	taxes = taxes.Round(2)
	shipping = shipping.Round(2)

	return Totals{
		Subtotal: domain.NewMoney(subtotal, rates.Currency),
		Taxes:    domain.NewMoney(taxes, rates.Currency),
		Shipping: domain.NewMoney(shipping, rates.Currency),
		Total:    domain.NewMoney(subtotal.Add(taxes).Add(shipping), rates.Currency),
	}
}
