// Package notify implements named change notifications for objects observed by an
// outer presentation layer.
//
// Delivery is synchronous: Notify invokes every subscriber on the calling goroutine,
// in registration order, once per name. Subscribers that need a specific goroutine
// must marshal themselves.
package notify

import (
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Handler receives the name of the property that changed.
type Handler func(name string)

type subscription struct {
	id uint64
	fn Handler
}

// Notifier fans out change notifications to its subscribers.
// The zero value is ready to use.
type Notifier struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
	name   string
}

// New returns a notifier whose log lines carry the given source name.
func New(source string) *Notifier {
	return &Notifier{name: source}
}

// Subscribe registers fn and returns a function removing it again.
func (n *Notifier) Subscribe(fn Handler) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			n.subs = slices.DeleteFunc(n.subs, func(s subscription) bool { return s.id == id })
		})
	}
}

// Subscribers returns the number of registered handlers.
func (n *Notifier) Subscribers() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}

// Notify delivers each name to every subscriber.
func (n *Notifier) Notify(names ...string) {
	n.mu.RLock()
	subs := slices.Clone(n.subs)
	n.mu.RUnlock()

	for _, name := range names {
		for _, s := range subs {
			n.deliver(s.fn, name)
		}
	}
}

func (n *Notifier) deliver(fn Handler, name string) {
	defer func() {
		if rec := recover(); rec != nil {
			zap.S().Named("notify").Errorw("subscriber panicked", "source", n.name, "property", name, "panic", rec)
		}
	}()
	fn(name)
}
