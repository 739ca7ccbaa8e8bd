package events

import "runtime/debug"

// SafeCall runs fn and converts a panic into a *ListenerError handed to
// onErr. It returns false when fn panicked. A panicking onErr is swallowed
// so that the caller's dispatch loop always continues.
func SafeCall(kind Kind, name string, onErr ErrorHandler, fn func()) (ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ok = false
		le := &ListenerError{Kind: kind, Name: name, Value: r, Stack: debug.Stack()}
		if onErr == nil {
			return
		}
		func() {
			defer func() { _ = recover() }()
			onErr(le)
		}()
	}()
	fn()
	return true
}
