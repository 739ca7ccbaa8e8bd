package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"hostevents/internal/common/fsutil"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "HOSTEVENTS_"

// FromEnv overlays HOSTEVENTS_* variables onto cfg. Variables that are not
// set leave the corresponding field untouched. Existing dotenv files among
// dotenv are loaded first; they never override the real environment.
func FromEnv(cfg Config, dotenv ...string) (Config, error) {
	var files []string
	for _, f := range dotenv {
		if fsutil.PathExists(f) {
			files = append(files, f)
		}
	}
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return cfg, fmt.Errorf("load dotenv: %w", err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
