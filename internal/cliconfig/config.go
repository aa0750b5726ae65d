package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bft-labs/listsplit/internal/domain"
)

// Stdio is the path value that selects stdin for Input and stdout for Output.
const Stdio = "-"

// Weigher names accepted by the CLI.
const (
	WeigherCount = "count"
	WeigherBytes = "bytes"
	WeigherRunes = "runes"
	WeigherSum   = "sum"
	WeigherGzip  = "gzip"
	WeigherZstd  = "zstd"
)

// Output formats accepted by the CLI.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds CLI configuration for listsplit.
type Config struct {
	Input  string
	Output string

	Weigher   string
	MaxWeight float64
	// MaxSize caps elements per batch. Zero means unbounded.
	MaxSize int

	Format    string
	SkipBlank bool

	Watch    bool
	Debounce time.Duration

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Input:    Stdio,
		Output:   Stdio,
		Weigher:  WeigherBytes,
		MaxSize:  0,
		Format:   FormatJSON,
		Debounce: 100 * time.Millisecond,
		LogLevel: "info",
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.Input == "" {
		c.Input = Stdio
	}
	if c.Output == "" {
		c.Output = Stdio
	}
	if c.Format == "" {
		c.Format = FormatJSON
	}

	switch c.Weigher {
	case WeigherCount, WeigherBytes, WeigherRunes, WeigherSum, WeigherGzip, WeigherZstd:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownWeigher, c.Weigher)
	}
	switch c.Format {
	case FormatJSON, FormatText:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownFormat, c.Format)
	}

	if c.MaxWeight <= 0 {
		return fmt.Errorf("%w: max weight must be positive", domain.ErrInvalidConfig)
	}
	if c.MaxSize < 0 {
		return fmt.Errorf("%w: max size must not be negative", domain.ErrInvalidConfig)
	}
	if c.Watch && c.Input == Stdio {
		return fmt.Errorf("%w: watch requires an input file", domain.ErrInvalidConfig)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive", domain.ErrInvalidConfig)
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value from a pointer if not nil and flag not changed.
// Zero and negative values pass through so Validate can judge them.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int. Any integer is applied.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setInt(flag, &i, dst)
	return nil
}

// setFloatFromString parses a string to float64. Non-positive values are ignored.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setFloat(flag, f, dst)
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
