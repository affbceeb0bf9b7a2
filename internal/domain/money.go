package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

// MulInt scales the amount by a whole quantity, e.g. a cart line quantity.
func (m Money) MulInt(qty int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(qty))),
		Currency: m.Currency,
	}
}

// Add assumes both operands share the same currency; the engine is
// single-currency by construction.
func (m Money) Add(other Money) Money {
	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}
}

// RoundCents rounds half-up to two decimal places.
func (m Money) RoundCents() Money {
	return Money{
		Amount:   m.Amount.Round(2),
		Currency: m.Currency,
	}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}
