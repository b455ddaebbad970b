// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/flatland/internal/logger"
)

// Handler defines the function signature for event subscribers.
// Returning true consumes the event and stops later handlers from seeing it.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler // Map event types to a list of handlers
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
// Handlers run in subscription order.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "Handler subscribed to %v", eventType)
}

// Dispatch sends an event synchronously to the handlers for its type and
// reports whether one of them consumed it.
func (m *Manager) Dispatch(eventType Type, data interface{}) bool {
	m.mu.RLock()
	// Copy so a handler may subscribe during dispatch.
	handlers := make([]Handler, len(m.handlers[eventType]))
	copy(handlers, m.handlers[eventType])
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return false
	}

	logger.DebugTagf("event", "Dispatching %v to %d handler(s)", eventType, len(handlers))

	e := Event{Type: eventType, Data: data}
	for _, handler := range handlers {
		if handler(e) {
			return true
		}
	}
	return false
}
