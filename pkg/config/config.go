/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

// Package config handles tool configuration loading using viper. Defaults
// can be overridden by an optional YAML file and by MTUCTL_* environment
// variables; command-line flags override both.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/netverify/mtuctl/pkg/mtu"
)

// Config holds the tool-wide defaults applied when flags are not given.
type Config struct {
	// MinMTU and MaxMTU are the default validation bounds.
	MinMTU int `mapstructure:"min_mtu"`
	MaxMTU int `mapstructure:"max_mtu"`

	// Protocol is the default protocol tag.
	Protocol string `mapstructure:"protocol"`

	// Timeout bounds platform subprocess calls.
	Timeout time.Duration `mapstructure:"timeout"`

	// Output is the default output format.
	Output string `mapstructure:"output"`

	// LogLevel is the slog level name (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// DefaultPath returns the conventional config file location, or the empty
// string when the user config dir cannot be resolved.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mtuctl", "config.yaml")
}

// Load reads configuration from path. An empty path falls back to
// DefaultPath; a missing file is not an error and yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("mtuctl")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		// Only an explicitly requested file must exist and parse.
		if err := v.ReadInConfig(); err != nil && explicit {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("min_mtu", mtu.IPv4MinimumMTU)
	v.SetDefault("max_mtu", mtu.JumboFrameMTU)
	v.SetDefault("protocol", string(mtu.ProtocolAny))
	v.SetDefault("timeout", "10s")
	v.SetDefault("output", "human")
	v.SetDefault("log_level", "info")
}

// validate mirrors the validator's construction invariants so a broken
// config file fails at startup, not per validation.
func (c *Config) validate() error {
	if c.MinMTU <= 0 || c.MaxMTU <= 0 {
		return fmt.Errorf("mtu bounds must be positive, got [%d, %d]", c.MinMTU, c.MaxMTU)
	}
	if c.MinMTU > c.MaxMTU {
		return fmt.Errorf("min_mtu %d exceeds max_mtu %d", c.MinMTU, c.MaxMTU)
	}
	if _, ok := mtu.ParseProtocol(c.Protocol); !ok {
		return fmt.Errorf("unknown protocol %q", c.Protocol)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
