package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds application-wide configuration.
type Config struct {
	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// FollowRedirects controls whether 3xx responses are chased.
	FollowRedirects bool

	// Debug enables debug logging to the state directory.
	Debug bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         30 * time.Second,
		FollowRedirects: true,
	}
}

// LoadConfig resolves the effective configuration: defaults, overlaid
// by the optional config file, overlaid by LAZYCURL_* environment
// variables. getenv is injected so tests can fake the environment.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if path := configFilePath(getenv); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg, getenv)
	return cfg, nil
}

// configFilePath returns $LAZYCURL_CONFIG when set, otherwise the
// default location under the user config directory, or "" when neither
// resolves.
func configFilePath(getenv func(string) string) string {
	if path := getenv("LAZYCURL_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lazycurl", "config.yaml")
}

// fileConfig mirrors the YAML document. Pointers distinguish an absent
// key from an explicit false, and the timeout is a duration string.
type fileConfig struct {
	Timeout         string `yaml:"timeout"`
	FollowRedirects *bool  `yaml:"follow_redirects"`
	Debug           *bool  `yaml:"debug"`
}

// loadConfigFile overlays cfg with the YAML file at path. A missing
// file is fine; an unreadable or malformed one is an error.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in config file %s: %w", fc.Timeout, path, err)
		}
		cfg.Timeout = d
	}
	if fc.FollowRedirects != nil {
		cfg.FollowRedirects = *fc.FollowRedirects
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}

	return nil
}

// applyEnv overlays cfg with environment variables. Unparseable values
// are ignored rather than fatal.
func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("LAZYCURL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := getenv("LAZYCURL_FOLLOW_REDIRECTS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.FollowRedirects = b
		}
	}
	if v := getenv("LAZYCURL_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}
