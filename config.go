// config.go loads engine tuning parameters from an optional TOML file,
// falling back to baked-in defaults so the engine is usable as a library
// with zero configuration.
package checkers

import (
	"time"

	"github.com/BurntSushi/toml"
)

// Config bundles every tunable the engine reads at startup.
type Config struct {
	Weights Weights

	DefaultDepthLimit int           `toml:"default_depth_limit"`
	DefaultTimeLimit  time.Duration `toml:"-"`
	PollInterval      int           `toml:"poll_interval"`

	// DefaultTimeLimitSeconds is the TOML-facing form of DefaultTimeLimit,
	// since TOML has no native duration type.
	DefaultTimeLimitSeconds float64 `toml:"default_time_limit_seconds"`
}

// DefaultConfig returns the baked-in configuration used when no TOML file
// is supplied.
func DefaultConfig() Config {
	return Config{
		Weights:                 DefaultWeights,
		DefaultDepthLimit:       12,
		DefaultTimeLimit:        5 * time.Second,
		DefaultTimeLimitSeconds: 5,
		PollInterval:            65536,
	}
}

// LoadConfig decodes a TOML file at path into a Config, starting from
// DefaultConfig so a file that only overrides a few fields leaves the
// rest at their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	cfg.DefaultTimeLimit = time.Duration(cfg.DefaultTimeLimitSeconds * float64(time.Second))
	return cfg, nil
}

// LoadConfigOrDefault behaves like LoadConfig but logs and falls back to
// DefaultConfig on any error (missing file, malformed TOML) instead of
// failing the caller's process.
func LoadConfigOrDefault(path string) Config {
	cfg, err := LoadConfig(path)
	if err != nil {
		log.Warningf("checkers: could not load config from %q, using defaults: %v", path, err)
		return DefaultConfig()
	}
	return cfg
}
