package httpapi

import (
	"fmt"
	"sync"

	"hostevents/internal/events"
	"hostevents/internal/upstream"
	"hostevents/pkg/types"
)

type subscribed struct {
	l events.Listener
	h *events.Handle
}

// mockService implements Service for HTTP tests.
type mockService struct {
	mu sync.Mutex

	postErr error
	cmdErr  error
	subErr  error
	ready   bool
	status  types.StatusResponse

	posted   []types.Notification
	commands []types.CommandRequest
	subs     []subscribed
}

func (m *mockService) Post(n types.Notification) (events.Kind, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.postErr != nil {
		return 0, m.postErr
	}
	k, err := events.ParseKind(n.Kind)
	if err != nil || !k.Native() {
		return 0, fmt.Errorf("%w: %q", upstream.ErrUnknownKind, n.Kind)
	}
	m.posted = append(m.posted, n)
	return k, nil
}

func (m *mockService) NotifyCommand(name string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cmdErr != nil {
		return m.cmdErr
	}
	m.commands = append(m.commands, types.CommandRequest{Name: name, Payload: payload})
	return nil
}

func (m *mockService) Subscribe(l events.Listener) (events.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.subErr != nil {
		return nil, m.subErr
	}
	h := events.NewSubscription(func() {})
	m.subs = append(m.subs, subscribed{l: l, h: h})
	return h, nil
}

func (m *mockService) Status() types.StatusResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *mockService) Ready() bool { return m.ready }

// live returns the listeners whose subscription has not been removed.
func (m *mockService) live() []events.Listener {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []events.Listener
	for _, s := range m.subs {
		if !s.h.Removed() {
			out = append(out, s.l)
		}
	}
	return out
}

func (m *mockService) postedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.posted)
}
