package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"hostevents/internal/events"
	"hostevents/pkg/types"
)

const defaultQueueSize = 256

// Loop runs queued deliveries one at a time on its own goroutine. It plays
// the role of the host's event-processing thread.
type Loop struct {
	hub   *Hub
	queue chan func()
	done  chan struct{}

	// mu orders Submit against shutdown: once stopped is set under the
	// write lock no further work can enter the queue.
	mu      sync.RWMutex
	stopped bool

	started   atomic.Bool
	running   atomic.Bool
	delivered atomic.Uint64
}

// NewLoop returns a loop delivering through hub. A non-positive size uses
// the package default.
func NewLoop(hub *Hub, size int) *Loop {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Loop{
		hub:   hub,
		queue: make(chan func(), size),
		done:  make(chan struct{}),
	}
}

// Run processes queued work until ctx is canceled. Work accepted before
// cancellation still runs before Run returns. Run may be called once.
func (l *Loop) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return fmt.Errorf("loop already started")
	}
	l.running.Store(true)
	defer func() {
		l.running.Store(false)
		close(l.done)
	}()
	for {
		select {
		case <-ctx.Done():
			l.mu.Lock()
			l.stopped = true
			l.mu.Unlock()
			l.drain()
			return nil
		case fn := <-l.queue:
			l.exec(fn)
		}
	}
}

func (l *Loop) drain() {
	for {
		select {
		case fn := <-l.queue:
			l.exec(fn)
		default:
			return
		}
	}
}

func (l *Loop) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.hub.report(fmt.Errorf("event loop task panicked: %v", r))
		}
	}()
	fn()
	l.delivered.Add(1)
}

// Submit queues fn without blocking.
func (l *Loop) Submit(fn func()) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.stopped {
		return ErrStopped
	}
	select {
	case l.queue <- fn:
		return nil
	default:
		return ErrQueueFull
	}
}

// Post decodes n and queues its delivery through the hub.
func (l *Loop) Post(n types.Notification) (events.Kind, error) {
	kind, deliver, err := Decode(n)
	if err != nil {
		return kind, err
	}
	return kind, l.Submit(func() { deliver(l.hub) })
}

// Decode turns a raw notification into a delivery func. Missing fields
// decode to zero values. Fields of the wrong JSON type are left zero too;
// the delivery then reports ErrPartialPayload to the hub's ErrorHandler
// before emitting. Invalid JSON and non-object bodies are rejected.
func Decode(n types.Notification) (events.Kind, func(*Hub), error) {
	kind, err := events.ParseKind(n.Kind)
	if err != nil || !kind.Native() {
		return 0, nil, fmt.Errorf("%w: %q", ErrUnknownKind, n.Kind)
	}
	switch kind {
	case events.KindAppLaunched:
		return kind, (*Hub).EmitAppLaunched, nil
	case events.KindComponentLifecycle:
		var ev events.LifecycleEvent
		partial, err := unmarshal(kind, n.Payload, &ev)
		if err != nil {
			return kind, nil, err
		}
		return kind, func(h *Hub) {
			h.report(partial)
			h.EmitComponentLifecycle(ev)
		}, nil
	case events.KindCommandCompleted:
		var ev events.CommandCompletedEvent
		partial, err := unmarshal(kind, n.Payload, &ev)
		if err != nil {
			return kind, nil, err
		}
		return kind, func(h *Hub) {
			h.report(partial)
			h.EmitCommandCompleted(ev)
		}, nil
	default:
		var ev events.NativeEvent
		partial, err := unmarshal(kind, n.Payload, &ev)
		if err != nil {
			return kind, nil, err
		}
		return kind, func(h *Hub) {
			h.report(partial)
			h.EmitNativeEvent(ev)
		}, nil
	}
}

// unmarshal decodes raw into v. A field type mismatch is returned as
// partial with v still usable; any other failure is returned as err.
func unmarshal(kind events.Kind, raw json.RawMessage, v any) (partial, err error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	err = json.Unmarshal(raw, v)
	if err == nil {
		return nil, nil
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		return fmt.Errorf("%w: %s: %v", ErrPartialPayload, kind, err), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
}

// Done is closed once Run returns.
func (l *Loop) Done() <-chan struct{} { return l.done }

// Running reports whether Run is processing work.
func (l *Loop) Running() bool { return l.running.Load() }

// Len returns the number of queued items.
func (l *Loop) Len() int { return len(l.queue) }

// Cap returns the queue capacity.
func (l *Loop) Cap() int { return cap(l.queue) }

// Delivered returns the number of work items run to completion.
func (l *Loop) Delivered() uint64 { return l.delivered.Load() }

// Hub returns the source the loop delivers through.
func (l *Loop) Hub() *Hub { return l.hub }
