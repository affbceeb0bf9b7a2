package store

import (
	"slices"
	"strings"

	"github.com/holafushion/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// FilterAll is the sentinel that turns a category or gender filter into a
// pass-through.
const FilterAll = "all"

// Filter is the active catalog view state. Category matches exactly, gender
// matches case-insensitively, the price range is inclusive on both ends and
// all three compose by AND.
type Filter struct {
	Category string
	Gender   string
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
}

// Page is one window of the filtered catalog.
type Page struct {
	Items      []domain.Product
	Number     int
	PageSize   int
	TotalItems int
	TotalPages int
}

func (s *Store) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filter
}

func (s *Store) SetCategoryFilter(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter.Category = category
	s.page = 1
}

func (s *Store) SetGenderFilter(gender string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter.Gender = gender
	s.page = 1
}

// SetPriceRange picks an explicit inclusive price window. The window is
// clamped into the observed catalog bounds on the next catalog reload.
func (s *Store) SetPriceRange(min, max decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter.MinPrice = min
	s.filter.MaxPrice = max
	s.customRange = true
	s.page = 1
}

// ResetFilters returns category and gender to the pass-through sentinel and
// the price range to the observed catalog bounds.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter.Category = FilterAll
	s.filter.Gender = FilterAll
	s.filter.MinPrice = s.priceFloor
	s.filter.MaxPrice = s.priceCeil
	s.customRange = false
	s.page = 1
}

// SetPage requests a page of the filtered view. Out-of-range requests are
// clamped when the page is read, not rejected.
func (s *Store) SetPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 1 {
		n = 1
	}
	s.page = n
}

// VisibleProducts returns the filtered catalog in catalog order, unpaged.
func (s *Store) VisibleProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.visibleLocked()
}

// ProductPage applies pagination over the filtered view, clamping the
// requested page into the valid range.
func (s *Store) ProductPage() Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	visible := s.visibleLocked()

	total := len(visible)
	totalPages := (total + s.pageSize - 1) / s.pageSize

	number := s.page
	if totalPages == 0 {
		number = 1
	} else if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * s.pageSize
	end := start + s.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      visible[start:end],
		Number:     number,
		PageSize:   s.pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

func (s *Store) visibleLocked() []domain.Product {
	var out []domain.Product
	for _, p := range s.products {
		if s.matchesLocked(p) {
			out = append(out, p)
		}
	}

	return slices.Clip(out)
}

func (s *Store) matchesLocked(p domain.Product) bool {
	if s.filter.Category != FilterAll && p.Category != s.filter.Category {
		return false
	}
	if s.filter.Gender != FilterAll && !strings.EqualFold(p.Gender, s.filter.Gender) {
		return false
	}
	if p.Price.Amount.LessThan(s.filter.MinPrice) || p.Price.Amount.GreaterThan(s.filter.MaxPrice) {
		return false
	}

	return true
}
