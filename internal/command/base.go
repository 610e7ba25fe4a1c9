package command

import (
	"fmt"

	"github.com/atomicstack/toolbar-commands/internal/logging"
	"github.com/atomicstack/toolbar-commands/internal/logging/events"
)

// MaxNotifyDepth bounds re-entrant Update calls on one command. A listener
// that triggers Update on the command it is observing nests one level; calls
// beyond this depth are dropped and logged.
const MaxNotifyDepth = 8

// Listener is called with no payload; it re-reads whatever state it needs.
type Listener func()

// ListenerID identifies a subscription for RemoveListener.
type ListenerID uint64

type subscription struct {
	id ListenerID
	fn Listener
}

// Base carries the per-instance plumbing shared by every variant: the unique
// id assigned when the command goes live, the execution context it is
// attached to, and its listeners.
type Base struct {
	uniqueID  string
	ctx       any
	live      bool
	listeners []subscription
	nextID    ListenerID
	depth     int
}

// Core returns b. Embedding Base satisfies that part of Command.
func (b *Base) Core() *Base { return b }

// UniqueID is empty until the command is attached.
func (b *Base) UniqueID() string { return b.uniqueID }

// Context returns the execution context supplied at attach time.
func (b *Base) Context() any { return b.ctx }

// IsLive reports whether the command has been attached.
func (b *Base) IsLive() bool { return b.live }

// AddListener subscribes fn and returns a handle for RemoveListener.
func (b *Base) AddListener(fn Listener) ListenerID {
	if fn == nil {
		return 0
	}
	b.nextID++
	b.listeners = append(b.listeners, subscription{id: b.nextID, fn: fn})
	return b.nextID
}

// RemoveListener drops the subscription and reports whether it existed.
func (b *Base) RemoveListener(id ListenerID) bool {
	for i, sub := range b.listeners {
		if sub.id == id {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount returns the number of active subscriptions.
func (b *Base) ListenerCount() int { return len(b.listeners) }

// Update calls every listener in subscription order. Listeners added or
// removed during the call take effect on the next Update. A panicking
// listener is logged and does not stop the others.
func (b *Base) Update() {
	if b.depth >= MaxNotifyDepth {
		logging.Warn("command %s: notification depth %d exceeded, update dropped", b.uniqueID, b.depth)
		events.Command.NotifyDepth(b.uniqueID, b.depth)
		return
	}
	b.depth++
	defer func() { b.depth-- }()

	snapshot := make([]subscription, len(b.listeners))
	copy(snapshot, b.listeners)
	for _, sub := range snapshot {
		b.call(sub)
	}
}

func (b *Base) call(sub subscription) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error(fmt.Errorf("command %s: listener %d panicked: %v", b.uniqueID, sub.id, r))
			events.Command.ListenerPanic(b.uniqueID, r)
		}
	}()
	sub.fn()
}

// clearListeners is used on session teardown.
func (b *Base) clearListeners() {
	b.listeners = nil
}
