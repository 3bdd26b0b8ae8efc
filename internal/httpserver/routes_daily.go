// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes two endpoints under /daily:
//   - GET  /daily      → today's date key and board shape
//   - POST /daily/new  → start a session whose secrets are derived from the
//                        date, so everyone playing today gets the same words
//
// Daily sessions are ordinary sessions afterwards: guesses, snapshots and
// resets go through /sessions/{id}. A reset draws fresh (non-daily) secrets.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/multiwordle/internal/daily"
	"github.com/robalobadob/multiwordle/internal/session"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/new", s.handleDailyNew)
	})
}

type dailyInfoRes struct {
	Date        string `json:"date"`
	Games       int    `json:"games"`
	MaxAttempts int    `json:"maxAttempts"`
	WordLength  int    `json:"wordLength"`
}

// handleDailyInfo describes today's challenge without revealing anything.
func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dailyInfoRes{
		Date:        daily.DateKey(s.opts.Now()),
		Games:       s.opts.GameCount,
		MaxAttempts: s.opts.MaxAttempts,
		WordLength:  s.opts.Dict.WordLength(),
	})
}

// handleDailyNew creates a session seeded from today's date and salt.
// The board shape is fixed by config so every player gets the same puzzle.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	rng := daily.Rand(s.opts.Now(), s.opts.DailySalt)
	sess, err := session.New(s.opts.Dict, s.opts.GameCount, s.opts.MaxAttempts, rng)
	if err != nil {
		writeError(w, http.StatusInternalServerError, errorCode(err))
		return
	}
	s.register(w, r, sess)
}
