package store

import (
	"sync"
	"time"

	"github.com/holafushion/storefront/internal/domain"
	"github.com/holafushion/storefront/internal/pricing"
	"github.com/shopspring/decimal"
)

const DefaultPageSize = 20

// Store owns all client-side state: the catalog snapshot, the cart, the
// staging slots, the active filter and the session. It is the sole mutator;
// every write goes through a method and readers receive copies. A single
// mutex stands in for the serialized event dispatch of the original host.
type Store struct {
	mu sync.Mutex

	products []domain.Product
	loading  bool

	cart []domain.CartLine

	draft     domain.Product
	userDraft domain.User

	filter      Filter
	customRange bool
	page        int
	pageSize    int

	priceFloor decimal.Decimal
	priceCeil  decimal.Decimal

	logged     bool
	loggedUser *domain.User
	users      []domain.User

	rates pricing.Rates
	now   func() time.Time
}

type Option func(*Store)

func WithPageSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

func WithRates(r pricing.Rates) Option {
	return func(s *Store) {
		s.rates = r
	}
}

// WithClock overrides the timestamp source for cart lines, used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		page:      1,
		pageSize:  DefaultPageSize,
		filter:    Filter{Category: FilterAll, Gender: FilterAll},
		userDraft: domain.User{Role: domain.RoleUser},
		rates:     pricing.DefaultRates(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) Rates() pricing.Rates {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rates
}
