package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WordLength != 5 || cfg.MaxAttempts != 8 || cfg.GameCount != 2 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want 24h", cfg.SessionTTL)
	}
	if cfg.ClientOrigin != "http://localhost:5173" {
		t.Errorf("ClientOrigin = %q", cfg.ClientOrigin)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WORD_LENGTH", "6")
	t.Setenv("MAX_ATTEMPTS", "3")
	t.Setenv("GAME_COUNT", "0")
	t.Setenv("DICTIONARY_FILE", "/tmp/words.txt")
	t.Setenv("SESSION_TTL", "90m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WordLength != 6 || cfg.MaxAttempts != 3 || cfg.GameCount != 0 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.DictionaryFile != "/tmp/words.txt" || cfg.SessionTTL != 90*time.Minute {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"short words", map[string]string{"WORD_LENGTH": "2"}},
		{"long words", map[string]string{"WORD_LENGTH": "10"}},
		{"no attempts", map[string]string{"MAX_ATTEMPTS": "0"}},
		{"negative games", map[string]string{"GAME_COUNT": "-1"}},
		{"games over cap", map[string]string{"MAX_GAME_COUNT": "1"}},
		{"fewer attempts than games", map[string]string{"GAME_COUNT": "5", "MAX_ATTEMPTS": "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadAcceptsEdgeBounds(t *testing.T) {
	t.Setenv("WORD_LENGTH", "9")
	t.Setenv("GAME_COUNT", "4")
	t.Setenv("MAX_ATTEMPTS", "4")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WordLength != MaxWordLength || cfg.MaxAttempts != cfg.GameCount {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("MAX_ATTEMPTS", "lots")
	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("Load() err = %v, want parse env error", err)
	}
}
