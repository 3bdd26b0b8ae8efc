// internal/session/session.go
//
// Session coordinates several independent game engines that share one
// dictionary and one configuration. A single raw guess is forwarded to every
// engine still in progress; finished engines are skipped silently.
//
// Engines are evaluated in parallel and joined before SubmitGuess returns.
// Each engine owns its own state, so no cross-engine locking is needed; the
// session mutex only serializes whole calls from concurrent callers.

package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/robalobadob/multiwordle/internal/game"
	"github.com/robalobadob/multiwordle/internal/words"
)

// Result is the outcome of one guess on one engine.
// Exactly one of Marks / Err is set.
type Result struct {
	Marks    []game.Mark
	Err      error
	Status   game.Status // engine status after the guess
	Attempts int         // engine attempts after the guess
}

// Session is a set of engines created from one configuration.
type Session struct {
	mu          sync.Mutex
	dict        *words.Dictionary
	gameCount   int
	maxAttempts int
	engines     []*game.Engine
	startedAt   time.Time
}

// New builds gameCount engines, each with its own secret drawn from rng.
// Secrets may repeat across engines.
func New(dict *words.Dictionary, gameCount, maxAttempts int, rng words.Rand) (*Session, error) {
	if dict == nil {
		return nil, words.ErrDictionaryEmpty
	}
	if gameCount < 0 {
		return nil, fmt.Errorf("%w: gameCount must be >= 0, got %d", game.ErrInvalidConfig, gameCount)
	}
	s := &Session{dict: dict, gameCount: gameCount, maxAttempts: maxAttempts}
	if err := s.build(rng); err != nil {
		return nil, err
	}
	return s, nil
}

// NewWithSecrets builds one engine per secret. Used for fixed-answer games.
func NewWithSecrets(dict *words.Dictionary, secrets []string, maxAttempts int) (*Session, error) {
	if dict == nil {
		return nil, words.ErrDictionaryEmpty
	}
	engines := make([]*game.Engine, 0, len(secrets))
	for i, w := range secrets {
		e, err := game.NewWithSecret(dict, w, maxAttempts)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i, err)
		}
		engines = append(engines, e)
	}
	return &Session{
		dict:        dict,
		gameCount:   len(secrets),
		maxAttempts: maxAttempts,
		engines:     engines,
		startedAt:   time.Now(),
	}, nil
}

// build replaces the engines with fresh ones. Callers hold mu or own s.
func (s *Session) build(rng words.Rand) error {
	if s.maxAttempts <= 0 {
		return fmt.Errorf("%w: maxAttempts must be > 0, got %d", game.ErrInvalidConfig, s.maxAttempts)
	}
	engines := make([]*game.Engine, 0, s.gameCount)
	for i := 0; i < s.gameCount; i++ {
		e, err := game.New(s.dict, rng, s.maxAttempts)
		if err != nil {
			return fmt.Errorf("game %d: %w", i, err)
		}
		engines = append(engines, e)
	}
	s.engines = engines
	s.startedAt = time.Now()
	return nil
}

// SubmitGuess forwards raw to every engine still in progress and returns one
// Result per engine that received it, keyed by engine index. It never fails
// as a whole; per-engine rejections are reported in Result.Err.
func (s *Session) SubmitGuess(raw string) map[int]Result {
	out, _ := s.SubmitGuessOver(raw)
	return out
}

// SubmitGuessOver is SubmitGuess plus IsOver, both taken under one lock so a
// concurrent Reset cannot slip in between the guess and the over flag.
func (s *Session) SubmitGuessOver(raw string) (map[int]Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submit(raw), s.over()
}

// submit does the fan-out. Callers hold mu.
func (s *Session) submit(raw string) map[int]Result {
	out := make(map[int]Result, len(s.engines))
	results := make([]Result, len(s.engines))
	active := make([]bool, len(s.engines))

	var wg sync.WaitGroup
	for i, e := range s.engines {
		if e.Status().Over() {
			continue
		}
		active[i] = true
		wg.Add(1)
		go func(i int, e *game.Engine) {
			defer wg.Done()
			marks, err := e.Guess(raw)
			results[i] = Result{Marks: marks, Err: err, Status: e.Status(), Attempts: e.Attempts()}
		}(i, e)
	}
	wg.Wait()

	for i, ok := range active {
		if ok {
			out[i] = results[i]
		}
	}
	return out
}

// IsOver reports whether every engine has finished. A session without
// engines is over.
func (s *Session) IsOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.over()
}

func (s *Session) over() bool {
	for _, e := range s.engines {
		if !e.Status().Over() {
			return false
		}
	}
	return true
}

// Reset discards all engines and draws new secrets with the same config.
func (s *Session) Reset(rng words.Rand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.build(rng)
}

// GameCount returns the number of engines.
func (s *Session) GameCount() int { return s.gameCount }

// MaxAttempts returns the per-engine attempt budget.
func (s *Session) MaxAttempts() int { return s.maxAttempts }

// WordLength returns the dictionary word length.
func (s *Session) WordLength() int { return s.dict.WordLength() }
