package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"hostevents/internal/common/fsutil"
)

// Config holds runtime parameters for the daemon.
// Zero values mean "unspecified" and are replaced by Defaults.
// RequestLog is off|error|info|debug; empty follows LogLevel.
// StreamWriteTimeout is in seconds.
type Config struct {
	Addr               string   `json:"addr" yaml:"addr" toml:"addr" env:"ADDR"`
	LogLevel           string   `json:"log_level" yaml:"log_level" toml:"log_level" env:"LOG_LEVEL"`
	LogFormat          string   `json:"log_format" yaml:"log_format" toml:"log_format" env:"LOG_FORMAT"`
	RequestLog         string   `json:"request_log" yaml:"request_log" toml:"request_log" env:"REQUEST_LOG"`
	QueueSize          int      `json:"queue_size" yaml:"queue_size" toml:"queue_size" env:"QUEUE_SIZE"`
	MaxBodyBytes       int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes" env:"MAX_BODY_BYTES"`
	CORSEnabled        bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled" env:"CORS_ENABLED"`
	CORSOrigins        []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins" env:"CORS_ORIGINS" envSeparator:","`
	StreamKinds        []string `json:"stream_kinds" yaml:"stream_kinds" toml:"stream_kinds" env:"STREAM_KINDS" envSeparator:","`
	StreamBuffer       int      `json:"stream_buffer" yaml:"stream_buffer" toml:"stream_buffer" env:"STREAM_BUFFER"`
	StreamWriteTimeout int      `json:"stream_write_timeout" yaml:"stream_write_timeout" toml:"stream_write_timeout" env:"STREAM_WRITE_TIMEOUT"`

	// Server is the daemon base URL used by client commands.
	Server string `json:"server" yaml:"server" toml:"server" env:"SERVER"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml. A leading '~' is expanded.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	path, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// SearchDirs are the directories Discover looks in, in order.
var SearchDirs = []string{".", "~/.config/hostevents", "/etc/hostevents"}

// Discover returns the first hostevents.{yaml,yml,json,toml} found in
// SearchDirs, or "" when there is none.
func Discover() (string, error) {
	return fsutil.FindFile(SearchDirs, "hostevents", ".yaml", ".yml", ".json", ".toml")
}
