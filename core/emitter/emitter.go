package emitter

import "sync"

// Listener is a callback invoked when an event fires
type Listener func(data any)

// Emitter is a minimal synchronous event bus. Listeners are registered once
// at module initialization and invoked in registration order on Emit
type Emitter struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
}

// New creates a new Emitter
func New() *Emitter {
	return &Emitter{
		listeners: make(map[string][]Listener),
	}
}

// On registers a listener for the given event name
func (e *Emitter) On(event string, listener Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners[event] = append(e.listeners[event], listener)
}

// Emit fires the event, invoking every registered listener with data
func (e *Emitter) Emit(event string, data any) {
	e.mu.RLock()
	listeners := make([]Listener, len(e.listeners[event]))
	copy(listeners, e.listeners[event])
	e.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}
