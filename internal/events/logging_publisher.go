package events

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/cookieshop/internal/logger"
)

// LoggingPublisher emits events as structured log entries and fans them out to
// subscribers.
type LoggingPublisher struct {
	logger *logger.Logger
	subs   map[string][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewLoggingPublisher creates a publisher that writes each event through log.
func NewLoggingPublisher(log *logger.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		logger: log,
		subs:   make(map[string][]subscriptionEntry),
	}
}

// Publish logs the event and invokes every handler subscribed to its type.
func (p *LoggingPublisher) Publish(ctx context.Context, event Event) error {
	if p == nil || event.Type == "" {
		return nil
	}

	p.mu.RLock()
	handlers := append([]subscriptionEntry(nil), p.subs[event.Type]...)
	p.mu.RUnlock()

	fields := make(map[string]any, len(event.Payload)+1)
	for key, value := range event.Payload {
		fields[key] = value
	}
	fields["event_type"] = event.Type
	p.logger.InfoFields("shop event", fields)

	for _, entry := range handlers {
		if entry.handler == nil {
			continue
		}
		if err := entry.handler(ctx, event); err != nil {
			p.logger.WithFields(map[string]any{"event_type": event.Type}).Error(err, "event handler failed")
		}
	}

	return nil
}

// Subscribe registers a handler for the provided event type.
func (p *LoggingPublisher) Subscribe(eventType string, handler Handler) (Subscription, error) {
	if p == nil || handler == nil {
		return noopSubscription{}, nil
	}
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return subscription{
		cancel: func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			handlers := p.subs[eventType]
			for i, entry := range handlers {
				if entry.id == id {
					p.subs[eventType] = append(handlers[:i], handlers[i+1:]...)
					break
				}
			}
		},
	}, nil
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler Handler
}
