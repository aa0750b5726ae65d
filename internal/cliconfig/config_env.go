package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (LISTSPLIT_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("LISTSPLIT_INPUT"), &cfg.Input)
	s.setString("output", os.Getenv("LISTSPLIT_OUTPUT"), &cfg.Output)
	s.setString("weigher", os.Getenv("LISTSPLIT_WEIGHER"), &cfg.Weigher)
	s.setString("format", os.Getenv("LISTSPLIT_FORMAT"), &cfg.Format)
	s.setString("log-level", os.Getenv("LISTSPLIT_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setFloatFromString("max-weight", os.Getenv("LISTSPLIT_MAX_WEIGHT"), &cfg.MaxWeight); err != nil {
		return err
	}
	if err := s.setIntFromString("max-size", os.Getenv("LISTSPLIT_MAX_SIZE"), &cfg.MaxSize); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("LISTSPLIT_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("skip-blank", os.Getenv("LISTSPLIT_SKIP_BLANK"), &cfg.SkipBlank)
	s.setBoolFromString("watch", os.Getenv("LISTSPLIT_WATCH"), &cfg.Watch)

	return nil
}
