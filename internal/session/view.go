package session

import (
	"time"

	"github.com/robalobadob/multiwordle/internal/game"
)

// GameView is a read-only summary of one engine.
type GameView struct {
	Index    int         `json:"index"`
	Status   game.Status `json:"status"`
	Attempts int         `json:"attempts"`
	Secret   string      `json:"secret,omitempty"` // only once the game is over
}

// View is a read-only summary of a session.
type View struct {
	Games       []GameView `json:"games"`
	Over        bool       `json:"over"`
	WordLength  int        `json:"wordLength"`
	MaxAttempts int        `json:"maxAttempts"`
	StartedAt   time.Time  `json:"startedAt"`
}

// Snapshot captures the current state of every engine.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Games:       make([]GameView, len(s.engines)),
		Over:        s.over(),
		WordLength:  s.dict.WordLength(),
		MaxAttempts: s.maxAttempts,
		StartedAt:   s.startedAt,
	}
	for i, e := range s.engines {
		secret, _ := e.Secret()
		v.Games[i] = GameView{Index: i, Status: e.Status(), Attempts: e.Attempts(), Secret: secret}
	}
	return v
}
