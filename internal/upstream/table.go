package upstream

import "sync"

// table is an ordered set of callbacks owned by the Hub. Entries are
// compared by pointer so the same func may be present more than once.
type table[T any] struct {
	mu      sync.Mutex
	entries []*entry[T]
}

type entry[T any] struct {
	fn T
}

func (t *table[T]) add(fn T) *entry[T] {
	e := &entry[T]{fn: fn}
	t.mu.Lock()
	t.entries = append(t.entries, e)
	t.mu.Unlock()
	return e
}

func (t *table[T]) remove(e *entry[T]) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, cur := range t.entries {
		if cur != e {
			continue
		}
		next := make([]*entry[T], 0, len(t.entries)-1)
		next = append(next, t.entries[:i]...)
		t.entries = append(next, t.entries[i+1:]...)
		return
	}
}

// snapshot returns the callbacks registered so far, in insertion order.
func (t *table[T]) snapshot() []T {
	t.mu.Lock()
	entries := t.entries
	t.mu.Unlock()
	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.fn
	}
	return out
}

func (t *table[T]) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func (t *table[T]) clear() {
	t.mu.Lock()
	t.entries = nil
	t.mu.Unlock()
}
