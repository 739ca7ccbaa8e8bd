package events

// Component is a screen instance that can be bound to lifecycle events.
type Component interface {
	ComponentID() string
}

// ScreenBinder associates a screen instance with its lifecycle events.
type ScreenBinder interface {
	BindScreen(Component) (Subscription, error)
}

// Registry is the single surface application code subscribes through.
// Native kinds go to the receiver, commands to the observer, and screen
// binding to the binder.
type Registry struct {
	receiver *NativeEventsReceiver
	commands *CommandsObserver
	screens  ScreenBinder
}

// New composes a registry from its collaborators.
func New(receiver *NativeEventsReceiver, commands *CommandsObserver, screens ScreenBinder) *Registry {
	return &Registry{receiver: receiver, commands: commands, screens: screens}
}

// RegisterAppLaunchedListener registers l for app launch notifications.
func (r *Registry) RegisterAppLaunchedListener(l AppLaunchedListener) (Subscription, error) {
	return r.receiver.RegisterAppLaunchedListener(l)
}

// RegisterComponentLifecycleListener registers l for component lifecycle events.
func (r *Registry) RegisterComponentLifecycleListener(l ComponentLifecycleListener) (Subscription, error) {
	return r.receiver.RegisterComponentLifecycleListener(l)
}

// RegisterCommandListener registers l with the local command observer.
func (r *Registry) RegisterCommandListener(l CommandListener) Subscription {
	return r.commands.Register(l)
}

// RegisterCommandCompletedListener registers l for command completion events.
func (r *Registry) RegisterCommandCompletedListener(l CommandCompletedListener) (Subscription, error) {
	return r.receiver.RegisterCommandCompletedListener(l)
}

// RegisterNativeEventListener receives (name, params) for every generic
// upstream event.
func (r *Registry) RegisterNativeEventListener(l NativeEventListener) (Subscription, error) {
	return r.receiver.RegisterNativeEventListener(l)
}

// BindScreen returns whatever the screen binder returns.
func (r *Registry) BindScreen(c Component) (Subscription, error) {
	return r.screens.BindScreen(c)
}

// Subscribe routes any catalog listener to its typed registration method.
func (r *Registry) Subscribe(l Listener) (Subscription, error) {
	switch fn := l.(type) {
	case AppLaunchedListener:
		return r.RegisterAppLaunchedListener(fn)
	case ComponentLifecycleListener:
		return r.RegisterComponentLifecycleListener(fn)
	case CommandListener:
		if fn == nil {
			return nil, &RegistrationError{Kind: KindCommand, Err: ErrNilListener}
		}
		return r.RegisterCommandListener(fn), nil
	case CommandCompletedListener:
		return r.RegisterCommandCompletedListener(fn)
	case NativeEventListener:
		return r.RegisterNativeEventListener(fn)
	default:
		return nil, ErrUnsupportedListener
	}
}

// Commands returns the observer local command producers notify.
func (r *Registry) Commands() *CommandsObserver { return r.commands }
