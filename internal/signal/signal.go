package signal

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// Scope names a cached data set that may have gone stale.
type Scope string

const (
	ScopeProducts Scope = "products"
	ScopeUsers    Scope = "users"
)

const invalidationTopic = "cache.invalidated"

// Notifier carries cache-invalidation events over an in-process pub/sub.
// After a write to the backend the caller publishes the affected scope and
// whoever holds a cached copy refetches. This replaces watching a boolean
// changed flag: the event says exactly what went stale and carries no other
// state.
type Notifier struct {
	pubSub *gochannel.GoChannel
}

func NewNotifier() *Notifier {
	return &Notifier{
		pubSub: gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{}),
	}
}

// Invalidate announces that cached data for the scope may be stale.
func (n *Notifier) Invalidate(scope Scope) error {
	msg := message.NewMessage(uuid.NewString(), []byte(scope))

	if err := n.pubSub.Publish(invalidationTopic, msg); err != nil {
		return fmt.Errorf("pubSub.Publish: %w", err)
	}

	return nil
}

// Subscribe returns the invalidation stream. The channel closes when the
// context is cancelled or the notifier is closed.
func (n *Notifier) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	messages, err := n.pubSub.Subscribe(ctx, invalidationTopic)
	if err != nil {
		return nil, fmt.Errorf("pubSub.Subscribe: %w", err)
	}

	return messages, nil
}

func (n *Notifier) Close() error {
	return n.pubSub.Close()
}
