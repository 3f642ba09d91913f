package events

import "context"

const (
	// EventItemRemoved is emitted when a delete request removed an item.
	EventItemRemoved = "item.removed"
	// EventItemRemoveMissed is emitted when a delete request named an absent id.
	EventItemRemoveMissed = "item.remove_missed"
	// EventThemeToggled is emitted after the theme selection flips.
	EventThemeToggled = "theme.toggled"
	// EventRouteChanged is emitted when navigation lands on a new view.
	EventRouteChanged = "route.changed"
	// EventSearchChanged is emitted when the catalog filter query changes.
	EventSearchChanged = "search.changed"
)

// Event is a notable change in shop state.
type Event struct {
	Type    string
	Payload map[string]any
}

// New builds an Event from alternating key/value pairs. A trailing key with no
// value is dropped.
func New(eventType string, kv ...any) Event {
	payload := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		payload[key] = kv[i+1]
	}
	return Event{Type: eventType, Payload: payload}
}

// Handler processes an event of a specific type. Errors are logged and do not
// stop delivery to other handlers.
type Handler func(context.Context, Event) error

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}

// Publisher distributes events to subscribers synchronously.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType string, handler Handler) (Subscription, error)
}
