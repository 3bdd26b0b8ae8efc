// internal/game/types.go
//
// Core type definitions for the guess engine.
// Defines:
//   - Mark: per-letter result of a guess (absent/misplaced/correct).
//   - Status: lifecycle of a single game (playing → won/lost).
//   - Sentinel errors for rejected guesses.

package game

import (
	"errors"
	"fmt"
)

// Mark represents the evaluation result for a single letter in a guess.
// The numeric order is part of the contract: Absent < Misplaced < Correct.
type Mark int

const (
	MarkAbsent    Mark = iota // letter does not occur (or all occurrences are used up)
	MarkMisplaced             // letter occurs elsewhere in the secret
	MarkCorrect               // letter is in the right position
)

var markNames = [...]string{"absent", "misplaced", "correct"}

func (m Mark) String() string {
	if m >= 0 && int(m) < len(markNames) {
		return markNames[m]
	}
	return fmt.Sprintf("Mark(%d)", m)
}

// MarshalText encodes a Mark as its lower-case name for JSON payloads.
func (m Mark) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(markNames) {
		return nil, fmt.Errorf("game: invalid mark %d", m)
	}
	return []byte(markNames[m]), nil
}

// Status is the lifecycle state of an Engine.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "playing"
	}
}

// MarshalText encodes a Status as "playing" | "won" | "lost".
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Over reports whether s is terminal.
func (s Status) Over() bool { return s != StatusInProgress }

var (
	ErrGameOver       = errors.New("game finished")
	ErrLengthMismatch = errors.New("guess length does not match")
	ErrUnknownWord    = errors.New("not in word list")
	ErrInvalidConfig  = errors.New("invalid game config")
)
