package cli

import (
	"os"

	"github.com/BurntSushi/toml"
)

// ScheduleConfig holds the annealing schedule parameters shared by the
// optimize and bench commands.
type ScheduleConfig struct {
	StartTemp     float64 `toml:"start_temp"`
	EndTemp       float64 `toml:"end_temp"`
	Steps         int     `toml:"steps"`
	MaxIterations int     `toml:"max_iterations"`
	Passes        int     `toml:"passes"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is one of "file" (default), "null", or "redis".
	Backend   string `toml:"backend"`
	RedisAddr string `toml:"redis_addr"`
}

// Config is the optional TOML configuration file read by the optimize and
// bench commands via their --config flag. Flags passed on the command line always take precedence
// over a value set here; a value set here always takes precedence over the
// hard-coded default in [defaultConfig].
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Cache    CacheConfig    `toml:"cache"`
}

// defaultConfig returns the hard-coded defaults applied when neither a flag
// nor a config file sets a value.
func defaultConfig() Config {
	return Config{
		Schedule: ScheduleConfig{
			StartTemp:     1.0,
			EndTemp:       0.01,
			Steps:         10,
			MaxIterations: 100,
			Passes:        3,
		},
		Cache: CacheConfig{Backend: "file"},
	}
}

// loadConfig reads and merges a TOML config file at path over the defaults.
// A missing path is not an error: the defaults are returned unchanged, since
// --config is optional at every call site.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
