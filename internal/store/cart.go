package store

import (
	"slices"

	"github.com/holafushion/storefront/internal/domain"
	"github.com/holafushion/storefront/internal/pricing"
)

// AddToCart appends a new line with quantity 1, or bumps the quantity when a
// line for the same product ID already exists. The line carries a full
// snapshot of the product fields as of the first add; a later catalog price
// change does not reach back into the line.
func (s *Store) AddToCart(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == p.ID {
			s.cart[i].Quantity++
			return
		}
	}

	s.cart = append(s.cart, domain.CartLine{
		Product:  p,
		Quantity: 1,
		AddedAt:  s.now(),
	})
}

// IncreaseQuantity bumps the matching line by one; unknown IDs are a no-op.
func (s *Store) IncreaseQuantity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart[i].Quantity++
			return
		}
	}
}

// DecreaseQuantity lowers the matching line by one, floored at 1. A line at
// quantity 1 stays in the cart; dropping it takes an explicit RemoveFromCart.
func (s *Store) DecreaseQuantity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == id && s.cart[i].Quantity > 1 {
			s.cart[i].Quantity--
			return
		}
	}
}

// RemoveFromCart deletes the matching line regardless of quantity.
func (s *Store) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = slices.DeleteFunc(s.cart, func(line domain.CartLine) bool {
		return line.ID == id
	})
}

// ResetCart empties the cart unconditionally.
func (s *Store) ResetCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = nil
}

func (s *Store) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.Cart{Lines: slices.Clone(s.cart)}
}

// Totals recomputes the derived amounts on every call; nothing is cached.
func (s *Store) Totals() pricing.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	return pricing.ComputeTotals(domain.Cart{Lines: s.cart}, s.rates)
}
