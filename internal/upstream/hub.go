package upstream

import (
	"sync/atomic"

	"hostevents/internal/events"
)

// Hub is an in-memory push source. Emit* methods deliver synchronously to
// the callbacks registered before the call, in registration order.
type Hub struct {
	closed atomic.Bool
	onErr  events.ErrorHandler

	appLaunched      table[func()]
	lifecycle        table[func(events.LifecycleEvent)]
	commandCompleted table[func(events.CommandCompletedEvent)]
	native           table[func(events.NativeEvent)]
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithErrorHandler sets where panicking callbacks are reported.
func WithErrorHandler(h events.ErrorHandler) HubOption {
	return func(hub *Hub) { hub.onErr = h }
}

// NewHub returns an open hub with empty tables.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{onErr: events.LogErrorHandler}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func register[T any](h *Hub, t *table[T], fn T) (events.Subscription, error) {
	if h.closed.Load() {
		return nil, ErrClosed
	}
	e := t.add(fn)
	return events.NewSubscription(func() { t.remove(e) }), nil
}

// RegisterAppLaunchedListener adds cb to the app-launched table.
func (h *Hub) RegisterAppLaunchedListener(cb func()) (events.Subscription, error) {
	return register(h, &h.appLaunched, cb)
}

// RegisterComponentLifecycleListener adds cb to the lifecycle table.
func (h *Hub) RegisterComponentLifecycleListener(cb func(events.LifecycleEvent)) (events.Subscription, error) {
	return register(h, &h.lifecycle, cb)
}

// RegisterCommandCompletedListener adds cb to the command-completed table.
func (h *Hub) RegisterCommandCompletedListener(cb func(events.CommandCompletedEvent)) (events.Subscription, error) {
	return register(h, &h.commandCompleted, cb)
}

// RegisterNativeEventListener adds cb to the native-event table.
func (h *Hub) RegisterNativeEventListener(cb func(events.NativeEvent)) (events.Subscription, error) {
	return register(h, &h.native, cb)
}

// report passes a non-nil err to the error handler.
func (h *Hub) report(err error) {
	if err != nil && h.onErr != nil {
		h.onErr(err)
	}
}

// EmitAppLaunched notifies app-launched callbacks.
func (h *Hub) EmitAppLaunched() {
	if h.closed.Load() {
		return
	}
	for _, cb := range h.appLaunched.snapshot() {
		events.SafeCall(events.KindAppLaunched, "", h.onErr, cb)
	}
}

// EmitComponentLifecycle notifies lifecycle callbacks with ev.
func (h *Hub) EmitComponentLifecycle(ev events.LifecycleEvent) {
	if h.closed.Load() {
		return
	}
	for _, cb := range h.lifecycle.snapshot() {
		events.SafeCall(events.KindComponentLifecycle, string(ev.Type), h.onErr, func() { cb(ev) })
	}
}

// EmitCommandCompleted notifies completion callbacks with ev.
func (h *Hub) EmitCommandCompleted(ev events.CommandCompletedEvent) {
	if h.closed.Load() {
		return
	}
	for _, cb := range h.commandCompleted.snapshot() {
		events.SafeCall(events.KindCommandCompleted, ev.CommandID, h.onErr, func() { cb(ev) })
	}
}

// EmitNativeEvent notifies generic event callbacks with the raw envelope.
func (h *Hub) EmitNativeEvent(ev events.NativeEvent) {
	if h.closed.Load() {
		return
	}
	for _, cb := range h.native.snapshot() {
		events.SafeCall(events.KindNativeEvent, ev.Name, h.onErr, func() { cb(ev) })
	}
}

// Counts reports live registrations per native kind.
func (h *Hub) Counts() map[events.Kind]int {
	return map[events.Kind]int{
		events.KindAppLaunched:        h.appLaunched.len(),
		events.KindComponentLifecycle: h.lifecycle.len(),
		events.KindCommandCompleted:   h.commandCompleted.len(),
		events.KindNativeEvent:        h.native.len(),
	}
}

// Close drops every registration. Later registrations fail with ErrClosed
// and emits become no-ops. Outstanding subscriptions stay safe to Remove.
func (h *Hub) Close() {
	if !h.closed.CompareAndSwap(false, true) {
		return
	}
	h.appLaunched.clear()
	h.lifecycle.clear()
	h.commandCompleted.clear()
	h.native.clear()
}

// Closed reports whether Close has been called.
func (h *Hub) Closed() bool { return h.closed.Load() }

var _ events.Source = (*Hub)(nil)
