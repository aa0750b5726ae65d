package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
// Pointer fields distinguish an explicit zero from an absent key.
type FileConfig struct {
	Input     string  `toml:"input"`
	Output    string  `toml:"output"`
	Weigher   string  `toml:"weigher"`
	MaxWeight float64 `toml:"max_weight"`
	MaxSize   *int    `toml:"max_size"`
	Format    string  `toml:"format"`
	SkipBlank *bool   `toml:"skip_blank"`
	Watch     *bool   `toml:"watch"`
	Debounce  string  `toml:"debounce"`
	LogLevel  string  `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.listsplit/config.toml, or "" when the home
// directory cannot be resolved.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".listsplit", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", fc.Input, &cfg.Input)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("weigher", fc.Weigher, &cfg.Weigher)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setFloat("max-weight", fc.MaxWeight, &cfg.MaxWeight)
	s.setInt("max-size", fc.MaxSize, &cfg.MaxSize)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setBool("skip-blank", fc.SkipBlank, &cfg.SkipBlank)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
