package events

import "fmt"

// Kind identifies one entry of the event catalog.
type Kind int

const (
	KindAppLaunched Kind = iota + 1
	KindComponentLifecycle
	KindCommand
	KindCommandCompleted
	KindNativeEvent
)

var kindNames = map[Kind]string{
	KindAppLaunched:        "app-launched",
	KindComponentLifecycle: "component-lifecycle",
	KindCommand:            "command",
	KindCommandCompleted:   "command-completed",
	KindNativeEvent:        "native-event",
}

// Kinds returns every catalog entry in declaration order.
func Kinds() []Kind {
	return []Kind{KindAppLaunched, KindComponentLifecycle, KindCommand, KindCommandCompleted, KindNativeEvent}
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Native reports whether events of this kind originate upstream.
func (k Kind) Native() bool {
	return k != KindCommand && k.Valid()
}

// Valid reports whether k is part of the catalog.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a wire name back to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown event kind %q", s)
}

// LifecycleEventType discriminates component lifecycle events.
type LifecycleEventType string

const (
	ComponentWillAppear   LifecycleEventType = "ComponentWillAppear"
	ComponentDidAppear    LifecycleEventType = "ComponentDidAppear"
	ComponentDidDisappear LifecycleEventType = "ComponentDidDisappear"
	ComponentDidMount     LifecycleEventType = "ComponentDidMount"
	ComponentDidUnmount   LifecycleEventType = "ComponentDidUnmount"
)

// LifecycleEvent is delivered to lifecycle listeners exactly as the
// upstream source produced it.
type LifecycleEvent struct {
	Type          LifecycleEventType `json:"type"`
	ComponentID   string             `json:"componentId"`
	ComponentName string             `json:"componentName"`
}

// CommandCompletedEvent reports that a host command finished.
// CompletionTime is in milliseconds since the epoch and may be fractional.
type CommandCompletedEvent struct {
	CommandID      string  `json:"commandId"`
	CompletionTime float64 `json:"completionTime"`
	Params         any     `json:"params"`
}

// NativeEvent is the raw envelope of a generic named upstream event.
// Listeners never see it; they receive (Name, Params).
type NativeEvent struct {
	Name   string `json:"name"`
	Params any    `json:"params"`
}

// Command is a locally initiated command. It never reaches the upstream source.
type Command struct {
	Name    string `json:"name"`
	Payload any    `json:"payload"`
}
