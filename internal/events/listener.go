package events

// Listener is one of the catalog's callback shapes. The set is closed:
// only the func types declared in this file satisfy it.
type Listener interface {
	Kind() Kind
	isListener()
}

// AppLaunchedListener is called with no arguments when the host app launches.
type AppLaunchedListener func()

// ComponentLifecycleListener receives lifecycle events unchanged.
type ComponentLifecycleListener func(LifecycleEvent)

// CommandListener receives every local command and filters by name itself.
type CommandListener func(name string, params any)

// CommandCompletedListener receives command completion events unchanged.
type CommandCompletedListener func(CommandCompletedEvent)

// NativeEventListener receives the unpacked (name, params) of a native event.
type NativeEventListener func(name string, params any)

func (AppLaunchedListener) Kind() Kind        { return KindAppLaunched }
func (ComponentLifecycleListener) Kind() Kind { return KindComponentLifecycle }
func (CommandListener) Kind() Kind            { return KindCommand }
func (CommandCompletedListener) Kind() Kind   { return KindCommandCompleted }
func (NativeEventListener) Kind() Kind        { return KindNativeEvent }

func (AppLaunchedListener) isListener()        {}
func (ComponentLifecycleListener) isListener() {}
func (CommandListener) isListener()            {}
func (CommandCompletedListener) isListener()   {}
func (NativeEventListener) isListener()        {}
