// Package config loads server settings from the environment.
//
// Variables (defaults in brackets):
//
//	PORT [5175], LOG_LEVEL [info]
//	WORD_LENGTH [5], MAX_ATTEMPTS [8], GAME_COUNT [2]
//	DICTIONARY_FILE [embedded list]
//	SESSION_SECRET [dev_secret_change_me], SESSION_TTL [24h]
//	DAILY_SALT [local_dev_salt]
//	CLIENT_ORIGIN [http://localhost:5173]
//
// Board bounds: WORD_LENGTH in [3, MaxWordLength], MAX_ATTEMPTS >= GAME_COUNT.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/robalobadob/multiwordle/internal/words"
)

// Config holds construction-time settings. Nothing here changes while a
// session is alive.
type Config struct {
	Port     string `env:"PORT"      envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	WordLength     int    `env:"WORD_LENGTH"     envDefault:"5"`
	MaxAttempts    int    `env:"MAX_ATTEMPTS"    envDefault:"8"`
	GameCount      int    `env:"GAME_COUNT"      envDefault:"2"`
	MaxGameCount   int    `env:"MAX_GAME_COUNT"  envDefault:"16"`
	DictionaryFile string `env:"DICTIONARY_FILE"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	SessionTTL    time.Duration `env:"SESSION_TTL"    envDefault:"24h"`
	DailySalt     string        `env:"DAILY_SALT"     envDefault:"local_dev_salt"`

	// ClientOrigin is the browser origin allowed by CORS.
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
}

// MaxWordLength caps WORD_LENGTH for the server's boards.
const MaxWordLength = 9

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate enforces the documented bounds.
func (c Config) Validate() error {
	switch {
	case c.WordLength < words.MinWordLength:
		return fmt.Errorf("%w: WORD_LENGTH must be >= %d, got %d", ErrInvalid, words.MinWordLength, c.WordLength)
	case c.WordLength > MaxWordLength:
		return fmt.Errorf("%w: WORD_LENGTH must be <= %d, got %d", ErrInvalid, MaxWordLength, c.WordLength)
	case c.MaxAttempts <= 0:
		return fmt.Errorf("%w: MAX_ATTEMPTS must be > 0, got %d", ErrInvalid, c.MaxAttempts)
	case c.GameCount < 0:
		return fmt.Errorf("%w: GAME_COUNT must be >= 0, got %d", ErrInvalid, c.GameCount)
	case c.MaxAttempts < c.GameCount:
		// Every board needs at least one attempt of its own.
		return fmt.Errorf("%w: MAX_ATTEMPTS (%d) below GAME_COUNT (%d)", ErrInvalid, c.MaxAttempts, c.GameCount)
	case c.MaxGameCount < c.GameCount:
		return fmt.Errorf("%w: MAX_GAME_COUNT (%d) below GAME_COUNT (%d)", ErrInvalid, c.MaxGameCount, c.GameCount)
	case c.SessionSecret == "":
		return fmt.Errorf("%w: SESSION_SECRET is empty", ErrInvalid)
	}
	return nil
}
