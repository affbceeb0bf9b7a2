package checkout_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"

	"github.com/holafushion/storefront/internal/checkout"
	"github.com/holafushion/storefront/internal/domain"
	"github.com/holafushion/storefront/internal/pricing"
)

func orderLine(title, price string, qty int) domain.CartLine {
	return domain.CartLine{
		Product: domain.Product{
			Title: title,
			Price: domain.NewMoney(decimal.RequireFromString(price), currency.USD),
		},
		Quantity: qty,
	}
}

func TestBuildMessageEmptyCart(t *testing.T) {
	got := checkout.BuildMessage(domain.Cart{}, pricing.DefaultRates())
	assert.Equal(t, "My cart is empty.", got)
}

func TestBuildMessageFreeShipping(t *testing.T) {
	cart := domain.Cart{Lines: []domain.CartLine{
		orderLine("Linen Shirt", "19.99", 3),
		orderLine("Canvas Tote", "5.00", 1),
	}}

	want := `Hello, I want to order the following items:

1. Linen Shirt — Qty: 3 — Unit: $19.99 — Line: $59.97
2. Canvas Tote — Qty: 1 — Unit: $5.00 — Line: $5.00

Subtotal: $64.97
Taxes (14%): $9.10
Shipping: Free
Total: $74.07

Name:
Phone:
Address (if delivery):

Thank you!`

	assert.Equal(t, want, checkout.BuildMessage(cart, pricing.DefaultRates()))
}

func TestBuildMessageFlatShippingFee(t *testing.T) {
	cart := domain.Cart{Lines: []domain.CartLine{
		orderLine("Socks", "10.00", 2),
	}}

	want := `Hello, I want to order the following items:

1. Socks — Qty: 2 — Unit: $10.00 — Line: $20.00

Subtotal: $20.00
Taxes (14%): $2.80
Shipping: $5.99
Total: $28.79

Name:
Phone:
Address (if delivery):

Thank you!`

	assert.Equal(t, want, checkout.BuildMessage(cart, pricing.DefaultRates()))
}
