package events

import "errors"

// fakeSource records the raw callbacks it was armed with so tests can play
// the upstream side directly.
type fakeSource struct {
	appLaunched      []func()
	lifecycle        []func(LifecycleEvent)
	commandCompleted []func(CommandCompletedEvent)
	native           []func(NativeEvent)

	handles []*Handle
	removes int
	err     error
}

func (s *fakeSource) handle() (Subscription, error) {
	if s.err != nil {
		return nil, s.err
	}
	h := NewSubscription(func() { s.removes++ })
	s.handles = append(s.handles, h)
	return h, nil
}

func (s *fakeSource) RegisterAppLaunchedListener(cb func()) (Subscription, error) {
	s.appLaunched = append(s.appLaunched, cb)
	return s.handle()
}

func (s *fakeSource) RegisterComponentLifecycleListener(cb func(LifecycleEvent)) (Subscription, error) {
	s.lifecycle = append(s.lifecycle, cb)
	return s.handle()
}

func (s *fakeSource) RegisterCommandCompletedListener(cb func(CommandCompletedEvent)) (Subscription, error) {
	s.commandCompleted = append(s.commandCompleted, cb)
	return s.handle()
}

func (s *fakeSource) RegisterNativeEventListener(cb func(NativeEvent)) (Subscription, error) {
	s.native = append(s.native, cb)
	return s.handle()
}

var errArm = errors.New("bridge not ready")

type fakeBinder struct {
	got []Component
	sub Subscription
	err error
}

func (b *fakeBinder) BindScreen(c Component) (Subscription, error) {
	b.got = append(b.got, c)
	return b.sub, b.err
}

type screen string

func (s screen) ComponentID() string { return string(s) }

// commandCall is one recorded CommandListener invocation.
type commandCall struct {
	name   string
	params any
}

func recordCommands(calls *[]commandCall) CommandListener {
	return func(name string, params any) {
		*calls = append(*calls, commandCall{name, params})
	}
}
