package store

import (
	"github.com/holafushion/storefront/internal/domain"
)

// The scratch slot stages a single product record for the detail view and
// the admin create/edit forms. It is overwritten wholesale on each staging
// and abandoned silently on navigation; no dirty tracking, no validation.
// Transiently invalid values (empty title, zero price) are accepted while a
// form is mid-edit.

// StageForView loads a product into the scratch slot for display.
func (s *Store) StageForView(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = p
}

// StageForEdit loads a product into the scratch slot for form editing.
func (s *Store) StageForEdit(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = p
}

func (s *Store) Draft() domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.draft
}

// ResetDraft clears the slot, e.g. after a create form is submitted.
func (s *Store) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = domain.Product{}
}

func (s *Store) SetDraftTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Title = title
}

func (s *Store) SetDraftPrice(price domain.Money) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Price = price
}

func (s *Store) SetDraftCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Category = category
}

func (s *Store) SetDraftGender(gender string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Gender = gender
}

func (s *Store) SetDraftDescription(description string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Description = description
}

func (s *Store) SetDraftImage(image string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Image = image
}

func (s *Store) SetDraftRate(rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Rating.Rate = rate
}

func (s *Store) SetDraftCount(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Rating.Count = count
}
