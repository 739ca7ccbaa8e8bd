package config

import "testing"

func TestDefaults_FillsZeroValues(t *testing.T) {
	cfg := Defaults(Config{})
	if cfg.Addr != DefaultAddr || cfg.LogLevel != DefaultLogLevel || cfg.LogFormat != DefaultLogFormat {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.QueueSize != DefaultQueueSize || cfg.MaxBodyBytes != DefaultMaxBodyBytes {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.StreamBuffer != DefaultStreamBuffer || cfg.StreamWriteTimeout != DefaultStreamWriteTimeout || cfg.Server != DefaultServer {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.RequestLog != "" {
		t.Fatalf("request_log should stay empty to follow log_level, got %q", cfg.RequestLog)
	}
}

func TestDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Defaults(Config{Addr: ":1", LogLevel: "warn", LogFormat: "json", QueueSize: 4, MaxBodyBytes: 10})
	if cfg.Addr != ":1" || cfg.LogLevel != "warn" || cfg.LogFormat != "json" || cfg.QueueSize != 4 || cfg.MaxBodyBytes != 10 {
		t.Fatalf("explicit values overwritten: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	good := Config{LogFormat: "JSON", StreamKinds: []string{"command", " native-event"}}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := []Config{
		{LogFormat: "xml"},
		{QueueSize: -1},
		{RequestLog: "verbose"},
		{StreamBuffer: -1},
		{StreamWriteTimeout: -5},
		{StreamKinds: []string{"command", "bogus"}},
	}
	for _, c := range bad {
		if err := c.Validate(); err == nil {
			t.Fatalf("expected error for %+v", c)
		}
	}
}
