// Package config loads cyclekeys daemon configuration from a TOML file
// with CYCLEKEYS_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// envPrefix is the prefix for environment overrides.
const envPrefix = "CYCLEKEYS_"

// Config is the daemon configuration.
type Config struct {
	// ProfilePath is the remapping profile to load.
	ProfilePath string `toml:"profile"`

	// WatchProfile enables live reload when the profile file changes.
	WatchProfile bool `toml:"watch_profile"`

	// DryRun routes macro playback to the loopback synthesizer and
	// echoes primitives instead of injecting them.
	DryRun bool `toml:"dry_run"`

	// QueueSize is the macro queue buffer size.
	QueueSize int `toml:"queue_size"`

	// Devices are the input device nodes to read, such as
	// /dev/input/event3.
	Devices []string `toml:"devices"`

	// GrabDevices takes exclusive hold of each device so the original
	// key events are suppressed while remapping runs.
	GrabDevices bool `toml:"grab_devices"`
}

// Default returns the configuration used when no file or overrides are
// present.
func Default() Config {
	return Config{
		WatchProfile: true,
		QueueSize:    64,
	}
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file is fine; defaults plus environment apply.
	case err != nil:
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides fields from CYCLEKEYS_* environment variables.
// Empty values are treated as set.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(envPrefix + "PROFILE"); ok {
		c.ProfilePath = v
	}
	if v, ok := os.LookupEnv(envPrefix + "WATCH_PROFILE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sWATCH_PROFILE %q: %w", envPrefix, v, err)
		}
		c.WatchProfile = b
	}
	if v, ok := os.LookupEnv(envPrefix + "DRY_RUN"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sDRY_RUN %q: %w", envPrefix, v, err)
		}
		c.DryRun = b
	}
	if v, ok := os.LookupEnv(envPrefix + "QUEUE_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sQUEUE_SIZE %q: %w", envPrefix, v, err)
		}
		c.QueueSize = n
	}
	if v, ok := os.LookupEnv(envPrefix + "DEVICES"); ok {
		c.Devices = splitList(v)
	}
	if v, ok := os.LookupEnv(envPrefix + "GRAB_DEVICES"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sGRAB_DEVICES %q: %w", envPrefix, v, err)
		}
		c.GrabDevices = b
	}
	return nil
}

// splitList splits a comma separated environment value, dropping empty
// entries.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be positive, got %d", c.QueueSize)
	}
	return nil
}

// DefaultPath returns the default configuration file location,
// ~/.config/cyclekeys/config.toml on Unix-like systems.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(configDir, "cyclekeys", "config.toml"), nil
}

// DefaultProfilePath returns the default profile file location.
func DefaultProfilePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(configDir, "cyclekeys", "profile.xml"), nil
}
