package events

// Source is the upstream push capability. Each method arms the source with a
// raw callback for one kind and returns a handle that disarms it.
type Source interface {
	RegisterAppLaunchedListener(func()) (Subscription, error)
	RegisterComponentLifecycleListener(func(LifecycleEvent)) (Subscription, error)
	RegisterCommandCompletedListener(func(CommandCompletedEvent)) (Subscription, error)
	RegisterNativeEventListener(func(NativeEvent)) (Subscription, error)
}

// NativeEventsReceiver is the translation boundary between a Source and
// application listeners.
type NativeEventsReceiver struct {
	src Source
}

// NewNativeEventsReceiver returns a receiver arming src.
func NewNativeEventsReceiver(src Source) *NativeEventsReceiver {
	return &NativeEventsReceiver{src: src}
}

// RegisterAppLaunchedListener calls l with no arguments on every launch.
func (r *NativeEventsReceiver) RegisterAppLaunchedListener(l AppLaunchedListener) (Subscription, error) {
	if l == nil {
		return nil, &RegistrationError{Kind: KindAppLaunched, Err: ErrNilListener}
	}
	return r.wrap(KindAppLaunched)(r.src.RegisterAppLaunchedListener(func() { l() }))
}

// RegisterComponentLifecycleListener passes lifecycle events through unchanged.
func (r *NativeEventsReceiver) RegisterComponentLifecycleListener(l ComponentLifecycleListener) (Subscription, error) {
	if l == nil {
		return nil, &RegistrationError{Kind: KindComponentLifecycle, Err: ErrNilListener}
	}
	return r.wrap(KindComponentLifecycle)(r.src.RegisterComponentLifecycleListener(func(ev LifecycleEvent) { l(ev) }))
}

// RegisterCommandCompletedListener passes completion events through unchanged.
func (r *NativeEventsReceiver) RegisterCommandCompletedListener(l CommandCompletedListener) (Subscription, error) {
	if l == nil {
		return nil, &RegistrationError{Kind: KindCommandCompleted, Err: ErrNilListener}
	}
	return r.wrap(KindCommandCompleted)(r.src.RegisterCommandCompletedListener(func(ev CommandCompletedEvent) { l(ev) }))
}

// RegisterNativeEventListener unpacks each {name, params} envelope into
// l(name, params).
func (r *NativeEventsReceiver) RegisterNativeEventListener(l NativeEventListener) (Subscription, error) {
	if l == nil {
		return nil, &RegistrationError{Kind: KindNativeEvent, Err: ErrNilListener}
	}
	return r.wrap(KindNativeEvent)(r.src.RegisterNativeEventListener(func(ev NativeEvent) { l(ev.Name, ev.Params) }))
}

// wrap turns the source's result into a stable handle, or a RegistrationError.
func (r *NativeEventsReceiver) wrap(kind Kind) func(Subscription, error) (Subscription, error) {
	return func(upstream Subscription, err error) (Subscription, error) {
		if err != nil {
			return nil, &RegistrationError{Kind: kind, Err: err}
		}
		return NewSubscription(func() {
			if upstream != nil {
				upstream.Remove()
			}
		}), nil
	}
}
