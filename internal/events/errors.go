package events

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNilListener is returned when a registration is attempted with a nil callback.
	ErrNilListener = errors.New("listener cannot be nil")

	// ErrListenerPanic matches every *ListenerError via errors.Is.
	ErrListenerPanic = errors.New("listener panicked")

	// ErrUnsupportedListener is returned by Registry.Subscribe for listener
	// values outside the catalog, such as a nil interface.
	ErrUnsupportedListener = errors.New("unsupported listener")
)

// RegistrationError reports that a listener could not be armed.
type RegistrationError struct {
	Kind Kind
	Err  error
}

func (e *RegistrationError) Error() string {
	return "register " + e.Kind.String() + " listener: " + e.Err.Error()
}

func (e *RegistrationError) Unwrap() error { return e.Err }

// IsRegistrationError reports whether err is or wraps a *RegistrationError.
func IsRegistrationError(err error) bool {
	var re *RegistrationError
	return errors.As(err, &re)
}

// ListenerError describes a listener that panicked during dispatch.
// Name is the command or native event name when the kind carries one.
type ListenerError struct {
	Kind  Kind
	Name  string
	Value any
	Stack []byte
}

func (e *ListenerError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s listener for %q panicked: %v", e.Kind, e.Name, e.Value)
	}
	return fmt.Sprintf("%s listener panicked: %v", e.Kind, e.Value)
}

// Is allows errors.Is to match ListenerError with ErrListenerPanic.
func (e *ListenerError) Is(target error) bool { return target == ErrListenerPanic }

// IsListenerError reports whether err is or wraps a *ListenerError.
func IsListenerError(err error) bool {
	return errors.Is(err, ErrListenerPanic)
}

// ErrorHandler is the host's uncaught-error channel. Dispatch owners hand it
// every listener failure instead of returning it to the notifier.
type ErrorHandler func(error)

// LogErrorHandler writes failures to the global zerolog logger.
func LogErrorHandler(err error) {
	ev := log.Error().Err(err)
	var le *ListenerError
	if errors.As(err, &le) {
		ev = ev.Str("kind", le.Kind.String())
		if le.Name != "" {
			ev = ev.Str("name", le.Name)
		}
		ev = ev.Bytes("stack", le.Stack)
	}
	ev.Msg("listener failed")
}
