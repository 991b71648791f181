// Package config loads knightdial run settings from defaults, an optional
// YAML file, KNIGHTDIAL_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the resolved driver configuration. Keys match flag names.
type Config struct {
	Start     int  `mapstructure:"start"`
	MinLength int  `mapstructure:"min-length"`
	MaxLength int  `mapstructure:"max-length"`
	Print     bool `mapstructure:"print"`
	Workers   int  `mapstructure:"workers"`
	JSON      bool `mapstructure:"json"`
	Verbose   bool `mapstructure:"verbose"`
}

// Defaults mirror the classic run: start on 1, lengths 1 through 9.
func Defaults() map[string]any {
	return map[string]any{
		"start":      1,
		"min-length": 1,
		"max-length": 9,
		"print":      false,
		"workers":    0,
		"json":       false,
		"verbose":    false,
	}
}

// RegisterFlags defines the flags Load binds. Flag defaults are
// placeholders; Defaults supplies the effective values.
func RegisterFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntP("start", "s", 1, "Start key (0-9)")
	f.Int("min-length", 1, "Shortest number length to enumerate")
	f.IntP("max-length", "n", 9, "Longest number length to enumerate")
	f.BoolP("print", "p", false, "Print every number with its 1-based index")
	f.IntP("workers", "w", 0, "Fan out the first hop to this many workers (0 = serial)")
	f.Bool("json", false, "Output in JSON format")
	f.BoolP("verbose", "v", false, "Enable debug logging on stderr")
}

// Load resolves a Config for cmd. If file is non-empty it is read as YAML
// and a read failure is returned; otherwise no file is consulted.
func Load(cmd *cobra.Command, file string) (Config, error) {
	var c Config
	v := viper.New()

	// 1. Set defaults
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	// 2. Explicit config file
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	// 3. Environment
	v.SetEnvPrefix("knightdial")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	// 4. Flags
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, c.Validate()
}

// Validate checks ranges; the start key itself is not checked because an
// unknown key simply yields no numbers.
func (c Config) Validate() error {
	if c.MinLength < 1 {
		return fmt.Errorf("%w: min-length %d < 1", ErrInvalidConfig, c.MinLength)
	}
	if c.MaxLength < c.MinLength {
		return fmt.Errorf("%w: max-length %d < min-length %d", ErrInvalidConfig, c.MaxLength, c.MinLength)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d < 0", ErrInvalidConfig, c.Workers)
	}

	return nil
}
