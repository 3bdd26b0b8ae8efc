// internal/game/engine.go
//
// Core game engine for a single board.
// Responsibilities:
//   - Hold the secret word drawn from the shared dictionary.
//   - Validate guesses (game state, length, dictionary membership).
//   - Score guesses with the two-pass tally algorithm (score.go).
//   - Track state transitions: playing → won/lost.
//
// Rejected guesses do not consume an attempt. An Engine is not safe for
// concurrent use; the session serializes access.
package game

import (
	"fmt"
	"unicode/utf8"

	"github.com/robalobadob/multiwordle/internal/words"
)

// Engine holds the state of one game.
type Engine struct {
	dict        *words.Dictionary
	secret      string
	attempts    int
	maxAttempts int
	status      Status
}

// New constructs an engine whose secret is drawn from dict with rng.
func New(dict *words.Dictionary, rng words.Rand, maxAttempts int) (*Engine, error) {
	if dict == nil {
		return nil, words.ErrDictionaryEmpty
	}
	return NewWithSecret(dict, dict.PickRandom(rng), maxAttempts)
}

// NewWithSecret constructs an engine with a fixed secret, which must be a
// dictionary word.
func NewWithSecret(dict *words.Dictionary, secret string, maxAttempts int) (*Engine, error) {
	if dict == nil {
		return nil, words.ErrDictionaryEmpty
	}
	if maxAttempts <= 0 {
		return nil, fmt.Errorf("%w: maxAttempts must be > 0, got %d", ErrInvalidConfig, maxAttempts)
	}
	secret = words.Lower(secret)
	if !dict.Contains(secret) {
		return nil, fmt.Errorf("%w: secret %q is not a dictionary word", ErrInvalidConfig, secret)
	}
	return &Engine{
		dict:        dict,
		secret:      secret,
		maxAttempts: maxAttempts,
	}, nil
}

// Guess validates and scores raw, mutating the engine state on success.
//
// Validation order:
//   - Game must not be finished (ErrGameOver).
//   - Lower-cased guess must have the secret's length (ErrLengthMismatch).
//   - Lower-cased guess must be in the dictionary (ErrUnknownWord).
//
// State transitions:
//   - Exact match → StatusWon.
//   - Otherwise, the maxAttempts-th attempt → StatusLost.
//
// The marks are returned for every accepted guess, including the losing one.
func (e *Engine) Guess(raw string) ([]Mark, error) {
	if e.status.Over() {
		return nil, ErrGameOver
	}
	guess := words.Lower(raw)
	if utf8.RuneCountInString(guess) != utf8.RuneCountInString(e.secret) {
		return nil, ErrLengthMismatch
	}
	if !e.dict.Contains(guess) {
		return nil, ErrUnknownWord
	}

	e.attempts++
	marks := Score(e.secret, guess)

	switch {
	case guess == e.secret:
		e.status = StatusWon
	case e.attempts >= e.maxAttempts:
		e.status = StatusLost
	}
	return marks, nil
}

// Status returns the current lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Attempts returns the number of accepted guesses so far.
func (e *Engine) Attempts() int { return e.attempts }

// MaxAttempts returns the attempt budget.
func (e *Engine) MaxAttempts() int { return e.maxAttempts }

// WordLength returns the number of letters in the secret.
func (e *Engine) WordLength() int { return utf8.RuneCountInString(e.secret) }

// Secret reveals the secret once the game is over.
func (e *Engine) Secret() (string, bool) {
	if !e.status.Over() {
		return "", false
	}
	return e.secret, true
}
