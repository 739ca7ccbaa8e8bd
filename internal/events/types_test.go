package events

import "testing"

func TestKind_StringAndParse(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.String(), err)
		}
		if got != k {
			t.Fatalf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParseKind("bogus"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if got := Kind(42).String(); got != "kind(42)" {
		t.Fatalf("unexpected string for unknown kind: %q", got)
	}
}

func TestKind_Native(t *testing.T) {
	cases := map[Kind]bool{
		KindAppLaunched:        true,
		KindComponentLifecycle: true,
		KindCommand:            false,
		KindCommandCompleted:   true,
		KindNativeEvent:        true,
		Kind(0):                false,
	}
	for k, want := range cases {
		if got := k.Native(); got != want {
			t.Fatalf("%v.Native() = %v, want %v", k, got, want)
		}
	}
}

func TestListener_Kinds(t *testing.T) {
	cases := []struct {
		l    Listener
		want Kind
	}{
		{AppLaunchedListener(nil), KindAppLaunched},
		{ComponentLifecycleListener(nil), KindComponentLifecycle},
		{CommandListener(nil), KindCommand},
		{CommandCompletedListener(nil), KindCommandCompleted},
		{NativeEventListener(nil), KindNativeEvent},
	}
	for _, c := range cases {
		if got := c.l.Kind(); got != c.want {
			t.Fatalf("Kind() = %v, want %v", got, c.want)
		}
	}
}
