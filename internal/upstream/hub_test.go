package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostevents/internal/events"
)

func TestHub_EmitsInRegistrationOrder(t *testing.T) {
	h := NewHub()
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		name := name
		_, err := h.RegisterNativeEventListener(func(ev events.NativeEvent) { order = append(order, name+":"+ev.Name) })
		require.NoError(t, err)
	}

	h.EmitNativeEvent(events.NativeEvent{Name: "x"})
	assert.Equal(t, []string{"a:x", "b:x", "c:x"}, order)
}

func TestHub_RemoveDetachesOnlyThatEntry(t *testing.T) {
	h := NewHub()
	calls := map[string]int{}
	cb := func() { calls["shared"]++ }

	first, err := h.RegisterAppLaunchedListener(cb)
	require.NoError(t, err)
	_, err = h.RegisterAppLaunchedListener(cb)
	require.NoError(t, err)

	h.EmitAppLaunched()
	assert.Equal(t, 2, calls["shared"])

	first.Remove()
	first.Remove()
	h.EmitAppLaunched()
	assert.Equal(t, 3, calls["shared"])
	assert.Equal(t, 1, h.Counts()[events.KindAppLaunched])
}

func TestHub_SnapshotDuringEmit(t *testing.T) {
	h := NewHub()
	var late int
	registered := false
	_, err := h.RegisterComponentLifecycleListener(func(events.LifecycleEvent) {
		if registered {
			return
		}
		registered = true
		_, _ = h.RegisterComponentLifecycleListener(func(events.LifecycleEvent) { late++ })
	})
	require.NoError(t, err)

	h.EmitComponentLifecycle(events.LifecycleEvent{Type: events.ComponentDidMount})
	assert.Equal(t, 0, late)
	h.EmitComponentLifecycle(events.LifecycleEvent{Type: events.ComponentDidMount})
	assert.Equal(t, 1, late)
}

func TestHub_PanicIsolated(t *testing.T) {
	var reported []error
	h := NewHub(WithErrorHandler(func(err error) { reported = append(reported, err) }))
	var got []events.CommandCompletedEvent

	_, _ = h.RegisterCommandCompletedListener(func(events.CommandCompletedEvent) { panic("bad listener") })
	_, _ = h.RegisterCommandCompletedListener(func(ev events.CommandCompletedEvent) { got = append(got, ev) })

	ev := events.CommandCompletedEvent{CommandID: "cmd1", CompletionTime: 10}
	assert.NotPanics(t, func() { h.EmitCommandCompleted(ev) })
	assert.Equal(t, []events.CommandCompletedEvent{ev}, got)
	require.Len(t, reported, 1)
	assert.ErrorIs(t, reported[0], events.ErrListenerPanic)
	assert.Contains(t, reported[0].Error(), "cmd1")
}

func TestHub_Close(t *testing.T) {
	h := NewHub()
	calls := 0
	sub, err := h.RegisterNativeEventListener(func(events.NativeEvent) { calls++ })
	require.NoError(t, err)

	h.Close()
	h.Close()
	assert.True(t, h.Closed())

	h.EmitNativeEvent(events.NativeEvent{Name: "after"})
	assert.Equal(t, 0, calls)

	_, err = h.RegisterNativeEventListener(func(events.NativeEvent) {})
	assert.ErrorIs(t, err, ErrClosed)
	assert.True(t, IsUnavailable(err))
	assert.NotPanics(t, sub.Remove)
}

func TestHub_BehindRegistry(t *testing.T) {
	h := NewHub()
	obs := events.NewCommandsObserver()
	r := events.New(events.NewNativeEventsReceiver(h), obs, nil)

	var gotName string
	var gotParams any
	sub, err := r.RegisterNativeEventListener(func(name string, params any) { gotName, gotParams = name, params })
	require.NoError(t, err)
	assert.Equal(t, 1, h.Counts()[events.KindNativeEvent])

	h.EmitNativeEvent(events.NativeEvent{Name: "buttonPressed", Params: map[string]any{"id": "save"}})
	assert.Equal(t, "buttonPressed", gotName)
	assert.Equal(t, map[string]any{"id": "save"}, gotParams)

	sub.Remove()
	assert.Equal(t, 0, h.Counts()[events.KindNativeEvent])

	h.Close()
	_, err = r.RegisterAppLaunchedListener(func() {})
	assert.True(t, events.IsRegistrationError(err))
	assert.ErrorIs(t, err, ErrClosed)
}
