// Package screens binds screen components to the lifecycle and native
// events addressed to them.
package screens

import (
	"hostevents/internal/events"
)

// Optional callbacks a bound component may implement. Each is invoked only
// for events whose component id matches the component's own.
type (
	WillAppearHandler interface {
		ComponentWillAppear(events.LifecycleEvent)
	}
	DidAppearHandler interface {
		ComponentDidAppear(events.LifecycleEvent)
	}
	DidDisappearHandler interface {
		ComponentDidDisappear(events.LifecycleEvent)
	}
	DidMountHandler interface {
		ComponentDidMount(events.LifecycleEvent)
	}
	DidUnmountHandler interface {
		ComponentDidUnmount(events.LifecycleEvent)
	}
	// NativeEventHandler receives native events whose params carry a
	// matching "componentId".
	NativeEventHandler interface {
		OnNativeEvent(name string, params map[string]any)
	}
)

// componentIDParam is the params key native events use to address a component.
const componentIDParam = "componentId"

// Registrar is the part of the receiver the binder arms.
type Registrar interface {
	RegisterComponentLifecycleListener(events.ComponentLifecycleListener) (events.Subscription, error)
	RegisterNativeEventListener(events.NativeEventListener) (events.Subscription, error)
}

// Binder is the events.ScreenBinder used by the daemon and tests.
type Binder struct {
	reg Registrar
}

// NewBinder returns a binder registering through reg.
func NewBinder(reg Registrar) *Binder {
	return &Binder{reg: reg}
}

// BindScreen routes lifecycle and native events for c to the optional
// handler interfaces it implements. The returned subscription removes both
// underlying registrations.
func (b *Binder) BindScreen(c events.Component) (events.Subscription, error) {
	id := c.ComponentID()
	lifecycle, err := b.reg.RegisterComponentLifecycleListener(func(ev events.LifecycleEvent) {
		if ev.ComponentID == id {
			dispatchLifecycle(c, ev)
		}
	})
	if err != nil {
		return nil, err
	}
	native, err := b.reg.RegisterNativeEventListener(func(name string, params any) {
		h, ok := c.(NativeEventHandler)
		if !ok {
			return
		}
		m, ok := params.(map[string]any)
		if !ok || m[componentIDParam] != id {
			return
		}
		h.OnNativeEvent(name, m)
	})
	if err != nil {
		lifecycle.Remove()
		return nil, err
	}
	return events.NewGroup(lifecycle, native), nil
}

func dispatchLifecycle(c events.Component, ev events.LifecycleEvent) {
	switch ev.Type {
	case events.ComponentWillAppear:
		if h, ok := c.(WillAppearHandler); ok {
			h.ComponentWillAppear(ev)
		}
	case events.ComponentDidAppear:
		if h, ok := c.(DidAppearHandler); ok {
			h.ComponentDidAppear(ev)
		}
	case events.ComponentDidDisappear:
		if h, ok := c.(DidDisappearHandler); ok {
			h.ComponentDidDisappear(ev)
		}
	case events.ComponentDidMount:
		if h, ok := c.(DidMountHandler); ok {
			h.ComponentDidMount(ev)
		}
	case events.ComponentDidUnmount:
		if h, ok := c.(DidUnmountHandler); ok {
			h.ComponentDidUnmount(ev)
		}
	}
}

var _ events.ScreenBinder = (*Binder)(nil)
