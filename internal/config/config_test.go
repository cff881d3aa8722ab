package config

import (
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		wantPanic bool
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "test_value",
			shouldSet: true,
			wantPanic: false,
		},
		{
			name:      "variable not set",
			key:       "TEST_VAR_MISSING",
			shouldSet: false,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				t.Setenv(tt.key, tt.value)
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		set      bool
		def      int
		expected int
	}{
		{name: "valid integer", key: "TEST_INT", value: "42", set: true, def: 7, expected: 42},
		{name: "invalid integer falls back", key: "TEST_INT_BAD", value: "nope", set: true, def: 7, expected: 7},
		{name: "missing falls back", key: "TEST_INT_MISSING", def: 7, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv(tt.key, tt.value)
			}
			if got := getenvInt(tt.key, tt.def); got != tt.expected {
				t.Errorf("getenvInt() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		set      bool
		def      time.Duration
		expected time.Duration
	}{
		{name: "valid duration", key: "TEST_DUR", value: "30s", set: true, def: time.Minute, expected: 30 * time.Second},
		{name: "invalid duration falls back", key: "TEST_DUR_BAD", value: "later", set: true, def: time.Minute, expected: time.Minute},
		{name: "missing falls back", key: "TEST_DUR_MISSING", def: time.Minute, expected: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv(tt.key, tt.value)
			}
			if got := mustDuration(tt.key, tt.def); got != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single", input: "market.local", expected: []string{"market.local"}},
		{name: "multiple with spaces", input: " a.local , b.local ", expected: []string{"a.local", "b.local"}},
		{name: "quoted values", input: `"a.local",'b.local'`, expected: []string{"a.local", "b.local"}},
		{name: "empty segments dropped", input: "a.local,,", expected: []string{"a.local"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAndTrim(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("splitAndTrim(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("splitAndTrim(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLoadMemoryBackend(t *testing.T) {
	t.Setenv("MARKET_STORAGE", "memory")
	t.Setenv("MARKET_LISTEN_PORT", ":9090")

	cfg := Load()

	if cfg.StorageBackend != StorageMemory {
		t.Errorf("StorageBackend = %v, want %v", cfg.StorageBackend, StorageMemory)
	}
	if cfg.ListenPort != ":9090" {
		t.Errorf("ListenPort = %v, want :9090", cfg.ListenPort)
	}
	if cfg.StorageKey != "products" {
		t.Errorf("StorageKey = %v, want products", cfg.StorageKey)
	}
}

func TestLoadUnknownBackendPanics(t *testing.T) {
	t.Setenv("MARKET_STORAGE", "flatfile")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() with unknown backend should have panicked")
		}
	}()
	Load()
}
