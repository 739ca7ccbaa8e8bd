package events

import "sync"

// CommandsObserver multicasts locally initiated commands to every
// registered CommandListener.
type CommandsObserver struct {
	mu        sync.Mutex
	listeners []*commandEntry
	onErr     ErrorHandler
}

type commandEntry struct {
	fn CommandListener
}

// ObserverOption configures a CommandsObserver.
type ObserverOption func(*CommandsObserver)

// WithErrorHandler sets where listener panics are reported.
func WithErrorHandler(h ErrorHandler) ObserverOption {
	return func(o *CommandsObserver) {
		o.onErr = h
	}
}

// NewCommandsObserver returns an empty observer reporting failures to
// LogErrorHandler unless configured otherwise.
func NewCommandsObserver(opts ...ObserverOption) *CommandsObserver {
	o := &CommandsObserver{onErr: LogErrorHandler}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Register appends l to the listener table. Registering the same func twice
// creates two entries with independent subscriptions.
// A nil listener yields an already-removed subscription.
func (o *CommandsObserver) Register(l CommandListener) Subscription {
	if l == nil {
		h := NewSubscription(nil)
		h.Remove()
		return h
	}
	e := &commandEntry{fn: l}
	o.mu.Lock()
	o.listeners = append(o.listeners, e)
	o.mu.Unlock()
	return NewSubscription(func() { o.remove(e) })
}

func (o *CommandsObserver) remove(e *commandEntry) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, cur := range o.listeners {
		if cur == e {
			// copy-on-write keeps in-flight snapshots intact
			next := make([]*commandEntry, 0, len(o.listeners)-1)
			next = append(next, o.listeners[:i]...)
			o.listeners = append(next, o.listeners[i+1:]...)
			return
		}
	}
}

// Notify invokes every listener registered before the call, in registration
// order, with (name, params). A panicking listener is reported to the error
// handler and the pass continues with the next listener.
func (o *CommandsObserver) Notify(name string, params any) {
	o.mu.Lock()
	snapshot := o.listeners
	onErr := o.onErr
	o.mu.Unlock()

	for _, e := range snapshot {
		fn := e.fn
		SafeCall(KindCommand, name, onErr, func() { fn(name, params) })
	}
}

// Len returns the number of live registrations.
func (o *CommandsObserver) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.listeners)
}
