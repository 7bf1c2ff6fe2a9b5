package store

import (
	"sync"

	"github.com/google/uuid"
)

// hub fan-outs collection snapshots to subscribed listeners.
// Delivery is synchronous in subscription-independent order; listeners are
// expected to do only local work (the Live Aggregator caches and recomputes
// in memory).
type hub[T any] struct {
	mu        sync.Mutex
	listeners map[string]func(T)
}

func newHub[T any]() *hub[T] {
	return &hub[T]{listeners: make(map[string]func(T))}
}

// subscribe registers fn and returns an idempotent unsubscribe function.
func (h *hub[T]) subscribe(fn func(T)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.NewString()
	h.listeners[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id) // ลบซ้ำได้ ไม่มีผลข้างเคียง
	}
}

// fire delivers snapshot to every current listener.
func (h *hub[T]) fire(snapshot T) {
	h.mu.Lock()
	fns := make([]func(T), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
