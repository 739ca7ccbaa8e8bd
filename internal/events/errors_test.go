package events

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestListenerError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &ListenerError{Kind: KindNativeEvent, Name: "n", Value: "v"})
	if !errors.Is(err, ErrListenerPanic) {
		t.Fatalf("expected errors.Is to match ErrListenerPanic")
	}
	if !IsListenerError(err) {
		t.Fatalf("expected IsListenerError")
	}
	if IsListenerError(errArm) {
		t.Fatalf("plain error reported as listener error")
	}
	if msg := err.Error(); !strings.Contains(msg, `native-event listener for "n" panicked: v`) {
		t.Fatalf("unexpected message: %q", msg)
	}
	if msg := (&ListenerError{Kind: KindAppLaunched, Value: 1}).Error(); msg != "app-launched listener panicked: 1" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestRegistrationError_Message(t *testing.T) {
	err := &RegistrationError{Kind: KindCommandCompleted, Err: errArm}
	if got := err.Error(); got != "register command-completed listener: bridge not ready" {
		t.Fatalf("unexpected message: %q", got)
	}
	if IsRegistrationError(errArm) {
		t.Fatalf("plain error reported as registration error")
	}
}

func TestLogErrorHandler_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = orig }()

	LogErrorHandler(&ListenerError{Kind: KindCommand, Name: "save", Value: "boom", Stack: []byte("stack")})
	out := buf.String()
	for _, want := range []string{`"kind":"command"`, `"name":"save"`, `"message":"listener failed"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in %q", want, out)
		}
	}

	buf.Reset()
	LogErrorHandler(errArm)
	if !strings.Contains(buf.String(), "bridge not ready") {
		t.Fatalf("plain error not logged: %q", buf.String())
	}
}

func TestSafeCall_ReturnsFalseOnPanic(t *testing.T) {
	if !SafeCall(KindCommand, "", nil, func() {}) {
		t.Fatalf("expected ok for non-panicking fn")
	}
	if SafeCall(KindCommand, "", nil, func() { panic("x") }) {
		t.Fatalf("expected false for panicking fn")
	}
}
