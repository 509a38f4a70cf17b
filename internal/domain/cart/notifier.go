// internal/domain/cart/notifier.go
package cart

import "sync"

// Event describes a cart change. It carries enough for a badge-style
// consumer to refresh without re-reading the cart.
type Event struct {
	SessionID     string
	ItemCount     int
	TotalQuantity int
	Total         int64
}

// Notifier fans cart-changed events out to subscribers. It replaces
// polling: any component displaying a cart-derived count subscribes once
// and refreshes on delivery. Slow subscribers miss events rather than
// blocking mutations.
type Notifier struct {
	mu          sync.Mutex
	subscribers map[int]chan Event
	nextID      int
}

// NewNotifier creates a cart change notifier
func NewNotifier() *Notifier {
	return &Notifier{
		subscribers: make(map[int]chan Event),
	}
}

// Subscribe registers a listener. The returned cancel function must be
// called to release the subscription.
func (n *Notifier) Subscribe() (<-chan Event, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	ch := make(chan Event, 16)
	n.subscribers[id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if sub, ok := n.subscribers[id]; ok {
			delete(n.subscribers, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Publish delivers an event to every subscriber without blocking
func (n *Notifier) Publish(ev Event) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}
