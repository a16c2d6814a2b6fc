// SPDX-License-Identifier: MIT

// Package config loads the motion CLI configuration with viper.
//
// Sources, lowest to highest precedence: defaults, a TOML file (explicit
// path, or motion.toml in the working directory), MOTION_* environment
// variables (MOTION_LOG_LEVEL for log.level), then bound command flags.
package config

import (
	"math"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/motion/ingest"
)

// DefaultFile is the configuration file picked up from the working directory.
const DefaultFile = "motion.toml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MOTION"

// Config is the fully resolved CLI configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Angles AnglesConfig `mapstructure:"angles"`
	Output OutputConfig `mapstructure:"output"`
	Align  AlignConfig  `mapstructure:"align"`
}

// LogConfig selects log encoding and verbosity.
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// AnglesConfig holds Euler decomposition defaults.
type AnglesConfig struct {
	Sequence string `mapstructure:"sequence"` // e.g. "XYZ", "ZXZ"
	Degrees  bool   `mapstructure:"degrees"`
}

// OutputConfig controls printed numbers and written fixtures.
type OutputConfig struct {
	Format    string `mapstructure:"format"`    // fixture format when writing to stdout
	Precision int    `mapstructure:"precision"` // decimals in printed tables
}

// AlignConfig holds dynamic time warping defaults.
type AlignConfig struct {
	Window  int     `mapstructure:"window"` // -1 disables the band
	Penalty float64 `mapstructure:"penalty"`
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "warn")

	v.SetDefault("angles.sequence", "XYZ")
	v.SetDefault("angles.degrees", false)

	v.SetDefault("output.format", string(ingest.YAML))
	v.SetDefault("output.precision", 4)

	v.SetDefault("align.window", -1)
	v.SetDefault("align.penalty", 0.0)
}

// NewViper returns a viper instance with defaults, env binding and the
// config file at path. An empty path reads DefaultFile when it exists.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if path == "" {
		if _, err := os.Stat(DefaultFile); err != nil {
			return v, nil
		}
		path = DefaultFile
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	return v, nil
}

// Load resolves v into a validated Config.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values viper cannot type-check.
func (c *Config) Validate() error {
	if _, err := ParseSequence(c.Angles.Sequence); err != nil {
		return errors.Wrap(err, "angles.sequence")
	}
	if _, err := ingest.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, "output.format")
	}
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return errors.Newf("output.precision must be in [0, 17], got %d", c.Output.Precision)
	}
	if c.Align.Window < -1 {
		return errors.Newf("align.window must be >= -1, got %d", c.Align.Window)
	}
	if c.Align.Penalty < 0 || math.IsNaN(c.Align.Penalty) {
		return errors.Newf("align.penalty must be non-negative, got %g", c.Align.Penalty)
	}

	return nil
}
