package signal

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/holafushion/storefront/internal/port"
	"github.com/holafushion/storefront/internal/store"
	"github.com/holafushion/storefront/pkg/logger"
	"go.uber.org/zap"
)

// Refresher refetches stale data sets into the store when an invalidation
// event arrives. A failed fetch is logged and dropped; the store keeps its
// previous snapshot, there is no retry.
type Refresher struct {
	store   *store.Store
	catalog port.CatalogService
	users   port.UserService
	log     *zap.Logger
}

func NewRefresher(st *store.Store, catalog port.CatalogService, users port.UserService, log *zap.Logger) *Refresher {
	if log == nil {
		log = logger.Get()
	}

	return &Refresher{
		store:   st,
		catalog: catalog,
		users:   users,
		log:     log,
	}
}

// Run consumes invalidation events until the channel closes. Call it on its
// own goroutine.
func (r *Refresher) Run(ctx context.Context, messages <-chan *message.Message) {
	for msg := range messages {
		r.handle(ctx, Scope(msg.Payload))
		msg.Ack()
	}
}

func (r *Refresher) handle(ctx context.Context, scope Scope) {
	switch scope {
	case ScopeProducts:
		r.store.SetLoading(true)
		defer r.store.SetLoading(false)

		products, err := r.catalog.ListProducts(ctx)
		if err != nil {
			r.log.Warn("catalog refresh failed, keeping previous snapshot", zap.Error(err))
			return
		}
		r.store.LoadCatalog(products)

	case ScopeUsers:
		users, err := r.users.ListUsers(ctx)
		if err != nil {
			r.log.Warn("user refresh failed, keeping previous snapshot", zap.Error(err))
			return
		}
		r.store.SetUsers(users)

	default:
		r.log.Warn("unknown invalidation scope", zap.String("scope", string(scope)))
	}
}
