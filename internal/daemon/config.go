package daemon

import (
	"hostevents/internal/events"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultQueueSize = 256
)

// Config encapsulates all tunables for Daemon construction.
type Config struct {
	// QueueSize bounds the number of deliveries waiting on the loop.
	QueueSize int
	// OnListenerError receives every listener failure and every partially
	// decoded notification. Defaults to events.LogErrorHandler.
	OnListenerError events.ErrorHandler
}

func (c Config) withDefaults() Config {
	if c.QueueSize <= 0 {
		c.QueueSize = defaultQueueSize
	}
	if c.OnListenerError == nil {
		c.OnListenerError = events.LogErrorHandler
	}
	return c
}
