package checkout

import (
	"fmt"
	"strings"

	"github.com/holafushion/storefront/internal/domain"
	"github.com/holafushion/storefront/internal/pricing"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func qty(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// BuildMessage renders the cart into the plain-text order message that gets
// pasted into a direct-message checkout. Line layout is part of the product,
// keep it stable.
func BuildMessage(cart domain.Cart, rates pricing.Rates) string {
	if len(cart.Lines) == 0 {
		return "My cart is empty."
	}

	totals := pricing.ComputeTotals(cart, rates)
	taxPct := rates.TaxRate.Mul(hundred)

	var b strings.Builder
	b.WriteString("Hello, I want to order the following items:\n\n")

	for i, line := range cart.Lines {
		unit := line.Price.Amount
		fmt.Fprintf(&b, "%d. %s — Qty: %d — Unit: $%s — Line: $%s\n",
			i+1,
			line.Title,
			line.Quantity,
			unit.StringFixed(2),
			unit.Mul(qty(line.Quantity)).StringFixed(2),
		)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal: $%s\n", totals.Subtotal.Amount.StringFixed(2))
	fmt.Fprintf(&b, "Taxes (%s%%): $%s\n", taxPct.String(), totals.Taxes.Amount.StringFixed(2))
	if totals.Shipping.IsZero() {
		b.WriteString("Shipping: Free\n")
	} else {
		fmt.Fprintf(&b, "Shipping: $%s\n", totals.Shipping.Amount.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: $%s\n", totals.Total.Amount.StringFixed(2))

	b.WriteString("\n")
	b.WriteString("Name:\n")
	b.WriteString("Phone:\n")
	b.WriteString("Address (if delivery):\n")
	b.WriteString("\n")
	b.WriteString("Thank you!")

	return b.String()
}
