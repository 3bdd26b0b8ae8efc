package game

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/robalobadob/multiwordle/internal/words"
)

const testWords = "crane\ncrone\nslate\nabbey\nbabes\nkebab\nreach\ngeese\nplumb"

func testDict(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.Load(testWords, 5)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return d
}

func newEngine(t *testing.T, secret string, maxAttempts int) *Engine {
	t.Helper()
	e, err := NewWithSecret(testDict(t), secret, maxAttempts)
	if err != nil {
		t.Fatalf("NewWithSecret: %v", err)
	}
	return e
}

func TestCraneSequence(t *testing.T) {
	e := newEngine(t, "CRANE", 6)

	marks, err := e.Guess("CRONE")
	if err != nil {
		t.Fatalf("Guess(CRONE): %v", err)
	}
	want := []Mark{c, c, a, c, c}
	for i := range want {
		if marks[i] != want[i] {
			t.Fatalf("Guess(CRONE) = %v, want %v", marks, want)
		}
	}
	if e.Status() != StatusInProgress || e.Attempts() != 1 {
		t.Fatalf("after CRONE: status=%v attempts=%d, want playing/1", e.Status(), e.Attempts())
	}

	marks, err = e.Guess("CRANE")
	if err != nil {
		t.Fatalf("Guess(CRANE): %v", err)
	}
	if !AllCorrect(marks) {
		t.Fatalf("Guess(CRANE) = %v, want all correct", marks)
	}
	if e.Status() != StatusWon || e.Attempts() != 2 {
		t.Fatalf("after CRANE: status=%v attempts=%d, want won/2", e.Status(), e.Attempts())
	}
	if s, ok := e.Secret(); !ok || s != "crane" {
		t.Errorf("Secret() = %q, %v; want crane, true", s, ok)
	}
}

func TestWinOnLastAttempt(t *testing.T) {
	e := newEngine(t, "crane", 2)
	if _, err := e.Guess("slate"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Guess("crane"); err != nil {
		t.Fatal(err)
	}
	if e.Status() != StatusWon {
		t.Errorf("status = %v, want won", e.Status())
	}
}

func TestLostOnlyAfterLastAttempt(t *testing.T) {
	const limit = 4
	e := newEngine(t, "crane", limit)
	misses := []string{"slate", "abbey", "babes", "plumb"}
	for i, g := range misses {
		if e.Status() != StatusInProgress {
			t.Fatalf("status = %v before attempt %d, want playing", e.Status(), i+1)
		}
		marks, err := e.Guess(g)
		if err != nil {
			t.Fatalf("Guess(%q): %v", g, err)
		}
		if len(marks) != 5 {
			t.Fatalf("Guess(%q) returned %d marks", g, len(marks))
		}
	}
	if e.Status() != StatusLost {
		t.Fatalf("status = %v after %d misses, want lost", e.Status(), limit)
	}
	if e.Attempts() != limit {
		t.Errorf("attempts = %d, want %d", e.Attempts(), limit)
	}
	if s, ok := e.Secret(); !ok || s != "crane" {
		t.Errorf("Secret() = %q, %v after loss", s, ok)
	}
}

func TestRejectedGuessesAreFree(t *testing.T) {
	e := newEngine(t, "crane", 3)
	tests := []struct {
		guess string
		want  error
	}{
		{"cran", ErrLengthMismatch},
		{"cranes", ErrLengthMismatch},
		{"", ErrLengthMismatch},
		{"zzzzz", ErrUnknownWord},
		{"tiger", ErrUnknownWord},
	}
	for _, tt := range tests {
		marks, err := e.Guess(tt.guess)
		if !errors.Is(err, tt.want) {
			t.Errorf("Guess(%q) err = %v, want %v", tt.guess, err, tt.want)
		}
		if marks != nil {
			t.Errorf("Guess(%q) returned marks on error", tt.guess)
		}
	}
	if e.Attempts() != 0 || e.Status() != StatusInProgress {
		t.Errorf("state changed by rejected guesses: attempts=%d status=%v", e.Attempts(), e.Status())
	}
}

func TestGuessIsNotTrimmed(t *testing.T) {
	e := newEngine(t, "crane", 3)
	for _, g := range []string{" crane", "crane ", "\tcrane", "crane\r", " CRANE"} {
		if _, err := e.Guess(g); !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("Guess(%q) err = %v, want ErrLengthMismatch", g, err)
		}
	}
	if e.Attempts() != 0 || e.Status() != StatusInProgress {
		t.Fatalf("padded guesses changed state: attempts=%d status=%v", e.Attempts(), e.Status())
	}
	// Case still folds.
	if _, err := e.Guess("CRANE"); err != nil || e.Status() != StatusWon {
		t.Errorf("Guess(CRANE) err = %v status = %v, want won", err, e.Status())
	}
}

func TestLengthCheckedBeforeDictionary(t *testing.T) {
	e := newEngine(t, "crane", 3)
	// Neither the right length nor a word: length wins.
	if _, err := e.Guess("qq"); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestGuessAfterGameOver(t *testing.T) {
	e := newEngine(t, "crane", 3)
	if _, err := e.Guess("crane"); err != nil {
		t.Fatal(err)
	}
	// Even an invalid guess reports the terminal state first.
	for _, g := range []string{"crane", "slate", "x"} {
		if _, err := e.Guess(g); !errors.Is(err, ErrGameOver) {
			t.Errorf("Guess(%q) err = %v, want ErrGameOver", g, err)
		}
	}
	if e.Attempts() != 1 {
		t.Errorf("attempts = %d, want 1", e.Attempts())
	}
}

func TestReadOnlyQueriesDoNotMutate(t *testing.T) {
	e := newEngine(t, "crane", 3)
	if _, err := e.Guess("slate"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		_ = e.Status()
		_ = e.Attempts()
		_, _ = e.Secret()
		_ = e.WordLength()
		_ = e.dict.Contains("crane")
	}
	if e.Attempts() != 1 || e.Status() != StatusInProgress {
		t.Errorf("queries mutated state: attempts=%d status=%v", e.Attempts(), e.Status())
	}
	if _, ok := e.Secret(); ok {
		t.Error("secret revealed while in progress")
	}
}

func TestNewPicksFromDictionary(t *testing.T) {
	d := testDict(t)
	rng := rand.New(rand.NewPCG(42, 0))
	for i := 0; i < 10; i++ {
		e, err := New(d, rng, 6)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if e.WordLength() != 5 || e.MaxAttempts() != 6 {
			t.Fatalf("unexpected engine shape: len=%d max=%d", e.WordLength(), e.MaxAttempts())
		}
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	d := testDict(t)
	if _, err := NewWithSecret(d, "crane", 0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("maxAttempts=0 err = %v, want ErrInvalidConfig", err)
	}
	if _, err := NewWithSecret(d, "tiger", 6); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown secret err = %v, want ErrInvalidConfig", err)
	}
	if _, err := New(nil, words.CryptoRand{}, 6); !errors.Is(err, words.ErrDictionaryEmpty) {
		t.Errorf("nil dict err = %v, want ErrDictionaryEmpty", err)
	}
}
