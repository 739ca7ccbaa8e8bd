package events

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Subscription controls the lifetime of exactly one listener registration.
type Subscription interface {
	// ID returns a unique identifier that stays valid after Remove.
	ID() string

	// Remove detaches the listener. Later dispatch passes will not invoke it.
	// Calling Remove more than once has no effect beyond the first call.
	Remove()
}

// Handle is the Subscription implementation used by every owner in this
// package. The zero value is not usable; call NewSubscription.
type Handle struct {
	id      string
	once    sync.Once
	removed atomic.Bool
	release func()
}

// NewSubscription wraps release so that it runs at most once.
// A nil release yields a handle whose Remove only flips its state.
func NewSubscription(release func()) *Handle {
	return &Handle{id: uuid.NewString(), release: release}
}

// ID returns the subscription identifier.
func (h *Handle) ID() string { return h.id }

// Remove runs the release func on the first call only.
func (h *Handle) Remove() {
	h.once.Do(func() {
		h.removed.Store(true)
		if h.release != nil {
			h.release()
		}
		h.release = nil
	})
}

// Removed reports whether Remove has been called.
func (h *Handle) Removed() bool { return h.removed.Load() }

// Group removes several subscriptions as one. Members are removed in
// reverse registration order.
type Group struct {
	*Handle
}

// NewGroup returns a Subscription that removes every member.
func NewGroup(subs ...Subscription) *Group {
	members := append([]Subscription(nil), subs...)
	return &Group{Handle: NewSubscription(func() {
		for i := len(members) - 1; i >= 0; i-- {
			if members[i] != nil {
				members[i].Remove()
			}
		}
	})}
}

var _ Subscription = (*Handle)(nil)
var _ Subscription = (*Group)(nil)
