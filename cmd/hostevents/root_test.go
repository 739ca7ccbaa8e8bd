package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hostevents/internal/config"
)

func TestResolveConfig_Precedence(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "hostevents.yaml")
	if err := os.WriteFile(p, []byte("addr: :7001\nlog_level: debug\nqueue_size: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOSTEVENTS_QUEUE_SIZE", "9")

	cfg, err := resolveConfig(&options{configPath: p, logLevel: "error"})
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Addr != ":7001" {
		t.Fatalf("file value lost: %+v", cfg)
	}
	if cfg.QueueSize != 9 {
		t.Fatalf("env should override file, got %d", cfg.QueueSize)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("flag should override file, got %q", cfg.LogLevel)
	}
	if cfg.LogFormat != config.DefaultLogFormat || cfg.MaxBodyBytes != config.DefaultMaxBodyBytes {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestResolveConfig_DotenvReachesClientAndStreamSettings(t *testing.T) {
	orig := config.SearchDirs
	config.SearchDirs = nil
	defer func() { config.SearchDirs = orig }()

	envFile := filepath.Join(t.TempDir(), ".env")
	body := "HOSTEVENTS_SERVER=http://daemon.local:9000\n" +
		"HOSTEVENTS_REQUEST_LOG=debug\n" +
		"HOSTEVENTS_STREAM_BUFFER=8\n" +
		"HOSTEVENTS_STREAM_WRITE_TIMEOUT=3\n"
	if err := os.WriteFile(envFile, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"HOSTEVENTS_SERVER", "HOSTEVENTS_REQUEST_LOG", "HOSTEVENTS_STREAM_BUFFER", "HOSTEVENTS_STREAM_WRITE_TIMEOUT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := resolveConfig(&options{envFiles: []string{envFile}})
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Server != "http://daemon.local:9000" {
		t.Fatalf("server = %q", cfg.Server)
	}
	if cfg.RequestLog != "debug" || cfg.StreamBuffer != 8 || cfg.StreamWriteTimeout != 3 {
		t.Fatalf("dotenv values lost: %+v", cfg)
	}
}

func TestResolveConfig_ServerFlagOverridesEnv(t *testing.T) {
	orig := config.SearchDirs
	config.SearchDirs = nil
	defer func() { config.SearchDirs = orig }()
	t.Setenv("HOSTEVENTS_SERVER", "http://from-env:1")

	cfg, err := resolveConfig(&options{server: "http://from-flag:2"})
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Server != "http://from-flag:2" {
		t.Fatalf("server = %q, want flag value", cfg.Server)
	}

	cfg, err = resolveConfig(&options{})
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Server != "http://from-env:1" {
		t.Fatalf("server = %q, want env value", cfg.Server)
	}
}

func TestResolveConfig_Errors(t *testing.T) {
	if _, err := resolveConfig(&options{configPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatal("expected error for missing file")
	}
	t.Setenv("HOSTEVENTS_STREAM_KINDS", "bogus")
	orig := config.SearchDirs
	config.SearchDirs = nil
	defer func() { config.SearchDirs = orig }()
	if _, err := resolveConfig(&options{}); err == nil || !strings.Contains(err.Error(), "stream_kinds") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRootCmd_Completion(t *testing.T) {
	orig := config.SearchDirs
	config.SearchDirs = nil
	defer func() { config.SearchDirs = orig }()

	var out bytes.Buffer
	root := buildRootCmd(&out)
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "hostevents") {
		t.Fatalf("completion output missing command name")
	}
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := buildRootCmd(&bytes.Buffer{})
	for _, name := range []string{"serve", "emit", "command", "completion"} {
		if c, _, err := root.Find([]string{name}); err != nil || c.Name() != name {
			t.Fatalf("missing subcommand %s", name)
		}
	}
}

func TestEmitCmd_RejectsBadKindBeforeNetwork(t *testing.T) {
	orig := config.SearchDirs
	config.SearchDirs = nil
	defer func() { config.SearchDirs = orig }()

	root := buildRootCmd(&bytes.Buffer{})
	root.SetArgs([]string{"emit", "bogus", "--server", "http://127.0.0.1:1"})
	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "unknown event kind") {
		t.Fatalf("expected unknown kind error, got %v", err)
	}
}
