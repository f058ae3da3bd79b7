package reset

import (
	"sync"

	"github.com/dmitrymomot/togglekit/pkg/feature"
)

// All is the name that addresses every subscribed feature.
const All = "*"

// Bus routes reset notifications by feature name to the invalidation
// callbacks handed out by toggle sets. One bus may serve many toggle sets.
// All methods are safe for concurrent use.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]func()
}

// NewBus creates an empty reset bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]func())}
}

// Subscribe returns a reset hook that registers the feature's invalidation
// callback under name.
func (b *Bus) Subscribe(name string) feature.ResetFunc {
	return func(invalidate func()) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.subs[name] = append(b.subs[name], invalidate)
	}
}

// Reset invalidates the named features. All invalidates every subscriber.
// It returns the number of callbacks invoked.
func (b *Bus) Reset(names ...string) int {
	b.mu.RLock()
	var callbacks []func()
	for _, name := range names {
		if name == All {
			callbacks = callbacks[:0]
			for _, subs := range b.subs {
				callbacks = append(callbacks, subs...)
			}
			break
		}
		callbacks = append(callbacks, b.subs[name]...)
	}
	b.mu.RUnlock()

	// callbacks run outside the lock so they may touch the bus
	for _, invalidate := range callbacks {
		invalidate()
	}
	return len(callbacks)
}

// ResetAll invalidates every subscribed feature.
func (b *Bus) ResetAll() int {
	return b.Reset(All)
}

// Len returns the number of registered callbacks.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, subs := range b.subs {
		n += len(subs)
	}
	return n
}
