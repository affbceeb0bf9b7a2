package store

import (
	"slices"

	"github.com/holafushion/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// LoadCatalog replaces the whole catalog snapshot. There is no merge: entries
// absent from the new snapshot disappear from the catalog view. Cart lines
// referencing them are left alone; they keep their add-time snapshot until
// explicitly removed. Price bounds are recomputed, the active price range is
// re-clamped and the page index rewinds to the first page.
func (s *Store) LoadCatalog(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = slices.Clone(products)
	s.recomputePriceBounds()
	s.page = 1
}

// SetLoading flips the UI busy flag; it has no effect on data invariants.
func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = v
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.products)
}

func (s *Store) Product(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}

	return domain.Product{}, false
}

// PriceBounds reports the observed min/max price of the current catalog.
func (s *Store) PriceBounds() (floor, ceil decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.priceFloor, s.priceCeil
}

// recomputePriceBounds must be called with the lock held.
func (s *Store) recomputePriceBounds() {
	s.priceFloor = decimal.Zero
	s.priceCeil = decimal.Zero

	for i, p := range s.products {
		if i == 0 {
			s.priceFloor = p.Price.Amount
			s.priceCeil = p.Price.Amount
			continue
		}
		if p.Price.Amount.LessThan(s.priceFloor) {
			s.priceFloor = p.Price.Amount
		}
		if p.Price.Amount.GreaterThan(s.priceCeil) {
			s.priceCeil = p.Price.Amount
		}
	}

	if !s.customRange {
		s.filter.MinPrice = s.priceFloor
		s.filter.MaxPrice = s.priceCeil
		return
	}

	// Clamp a user-chosen range into the new bounds. If the range collapses
	// the custom choice no longer makes sense, so fall back to the bounds.
	if s.filter.MinPrice.LessThan(s.priceFloor) {
		s.filter.MinPrice = s.priceFloor
	}
	if s.filter.MaxPrice.GreaterThan(s.priceCeil) {
		s.filter.MaxPrice = s.priceCeil
	}
	if s.filter.MinPrice.GreaterThan(s.filter.MaxPrice) {
		s.filter.MinPrice = s.priceFloor
		s.filter.MaxPrice = s.priceCeil
		s.customRange = false
	}
}
