package config

import (
	"fmt"
	"strings"

	"hostevents/internal/events"
)

const (
	DefaultAddr               = ":8080"
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "console"
	DefaultQueueSize          = 256
	DefaultMaxBodyBytes       = 1 << 20
	DefaultStreamBuffer       = 64
	DefaultStreamWriteTimeout = 10
	DefaultServer             = "http://127.0.0.1:8080"
)

// Defaults returns cfg with every unspecified field filled in.
func Defaults(cfg Config) Config {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.StreamBuffer == 0 {
		cfg.StreamBuffer = DefaultStreamBuffer
	}
	if cfg.StreamWriteTimeout == 0 {
		cfg.StreamWriteTimeout = DefaultStreamWriteTimeout
	}
	if cfg.Server == "" {
		cfg.Server = DefaultServer
	}
	return cfg
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "", "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json, got %q", c.LogFormat)
	}
	if c.QueueSize < 0 {
		return fmt.Errorf("queue_size must not be negative, got %d", c.QueueSize)
	}
	switch strings.ToLower(c.RequestLog) {
	case "", "off", "error", "info", "debug":
	default:
		return fmt.Errorf("request_log must be off, error, info or debug, got %q", c.RequestLog)
	}
	if c.StreamBuffer < 0 {
		return fmt.Errorf("stream_buffer must not be negative, got %d", c.StreamBuffer)
	}
	if c.StreamWriteTimeout < 0 {
		return fmt.Errorf("stream_write_timeout must not be negative, got %d", c.StreamWriteTimeout)
	}
	for _, k := range c.StreamKinds {
		if _, err := events.ParseKind(strings.TrimSpace(k)); err != nil {
			return fmt.Errorf("stream_kinds: %w", err)
		}
	}
	return nil
}
