package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"LISTSPLIT_INPUT":      "/env/in.txt",
				"LISTSPLIT_OUTPUT":     "/env/out.txt",
				"LISTSPLIT_WEIGHER":    "gzip",
				"LISTSPLIT_MAX_WEIGHT": "1024",
				"LISTSPLIT_MAX_SIZE":   "50",
				"LISTSPLIT_FORMAT":     "text",
				"LISTSPLIT_SKIP_BLANK": "1",
				"LISTSPLIT_WATCH":      "true",
				"LISTSPLIT_DEBOUNCE":   "2s",
				"LISTSPLIT_LOG_LEVEL":  "warn",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Input:     "/env/in.txt",
				Output:    "/env/out.txt",
				Weigher:   "gzip",
				MaxWeight: 1024,
				MaxSize:   50,
				Format:    "text",
				SkipBlank: true,
				Watch:     true,
				Debounce:  2 * time.Second,
				LogLevel:  "warn",
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"LISTSPLIT_WEIGHER":  "runes",
				"LISTSPLIT_MAX_SIZE": "9",
			},
			changed: map[string]bool{"weigher": true},
			initial: Config{Weigher: "count"},
			expected: Config{
				Weigher: "count",
				MaxSize: 9,
			},
		},
		{
			name:     "zero size resets a configured cap",
			envVars:  map[string]string{"LISTSPLIT_MAX_SIZE": "0"},
			changed:  map[string]bool{},
			initial:  Config{MaxSize: 5},
			expected: Config{MaxSize: 0},
		},
		{
			name:     "negative size passes through",
			envVars:  map[string]string{"LISTSPLIT_MAX_SIZE": "-3"},
			changed:  map[string]bool{},
			initial:  Config{MaxSize: 5},
			expected: Config{MaxSize: -3},
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"LISTSPLIT_DEBOUNCE": "not-a-duration",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "returns error for invalid int",
			envVars: map[string]string{
				"LISTSPLIT_MAX_SIZE": "lots",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "returns error for invalid float",
			envVars: map[string]string{
				"LISTSPLIT_MAX_WEIGHT": "heavy",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "handles bool 'false' as false",
			envVars: map[string]string{
				"LISTSPLIT_SKIP_BLANK": "false",
			},
			changed:  map[string]bool{},
			initial:  Config{SkipBlank: true},
			expected: Config{SkipBlank: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{
				"LISTSPLIT_INPUT", "LISTSPLIT_OUTPUT", "LISTSPLIT_WEIGHER", "LISTSPLIT_MAX_WEIGHT",
				"LISTSPLIT_MAX_SIZE", "LISTSPLIT_FORMAT", "LISTSPLIT_SKIP_BLANK", "LISTSPLIT_WATCH",
				"LISTSPLIT_DEBOUNCE", "LISTSPLIT_LOG_LEVEL",
			} {
				t.Setenv(k, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
