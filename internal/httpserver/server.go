// internal/httpserver/server.go
//
// HTTP server wiring for the multi-board game.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Session endpoints: POST /sessions creates a session and returns a
//     bearer token; /sessions/{id}/* require that token.
//   - Daily endpoints: mounted under /daily.
//
// Notes:
//   - The server only moves raw guesses in and feedback out; it does no
//     rendering.
//   - Per-game rejections are reported inside a 200 response, one entry per
//     game, because a guess never fails for the session as a whole.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/multiwordle/internal/game"
	"github.com/robalobadob/multiwordle/internal/session"
	"github.com/robalobadob/multiwordle/internal/store"
	"github.com/robalobadob/multiwordle/internal/words"
)

// shutdownTimeout bounds how long in-flight requests get after cancellation.
const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	Dict         *words.Dictionary
	Store        store.Store
	Rand         words.Rand // secret source for regular sessions; must be safe for concurrent use
	GameCount    int        // default games per session
	MaxGameCount int        // upper bound accepted from clients
	MaxAttempts  int        // default attempts per game
	Secret       []byte     // HS256 key for session tokens
	TokenTTL     time.Duration
	DailySalt    string
	ClientOrigin string // CORS origin; empty means the local dev client
	Now          func() time.Time
}

// Server bundles router, session store and dictionary.
type Server struct {
	r    *chi.Mux
	opts Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.Rand == nil {
		opts.Rand = words.CryptoRand{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // single-origin CORS, answers preflights

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"multiwordle","endpoints":["/health","POST /sessions","POST /sessions/{id}/guess","POST /daily/new"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"words": s.opts.Dict.Len(), "length": s.opts.Dict.WordLength()})
	})

	s.r.Post("/sessions", s.handleCreate)
	s.r.Route("/sessions/{id}", func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/", s.handleGet)
		r.Post("/guess", s.handleGuess)
		r.Post("/reset", s.handleReset)
		r.Delete("/", s.handleDelete)
	})

	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down
// gracefully. A clean shutdown returns nil.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		done <- hs.Shutdown(sctx)
	}()

	if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-done; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors allows one browser origin to call the API with a bearer token.
// Preflight requests are answered here and never reach a route.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Vary", "Origin")
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ----------------------------- sessions ------------------------------------

// createReq is the POST /sessions payload. All fields are optional.
type createReq struct {
	Games       *int     `json:"games"`
	MaxAttempts *int     `json:"maxAttempts"`
	Answers     []string `json:"answers"` // fixed secrets, one per game (testing)
}

type createRes struct {
	SessionID   string `json:"sessionId"`
	Token       string `json:"token"`
	Games       int    `json:"games"`
	MaxAttempts int    `json:"maxAttempts"`
	WordLength  int    `json:"wordLength"`
}

// handleCreate starts a new session and returns its ID and bearer token.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createReq
	// An empty body means "all defaults".
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if len(req.Answers) > 0 {
		if len(req.Answers) > s.opts.MaxGameCount {
			writeError(w, http.StatusBadRequest, "too_many_games")
			return
		}
		n := len(req.Answers)
		req.Games = &n
	}
	games, attempts, ok := s.sessionShape(w, req.Games, req.MaxAttempts)
	if !ok {
		return
	}

	var (
		sess *session.Session
		err  error
	)
	if len(req.Answers) > 0 {
		sess, err = session.NewWithSecrets(s.opts.Dict, req.Answers, attempts)
	} else {
		sess, err = session.New(s.opts.Dict, games, attempts, s.opts.Rand)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, errorCode(err))
		return
	}
	s.register(w, r, sess)
}

// sessionShape applies defaults and bounds to client-supplied sizes.
// Every game needs at least one attempt of its own, so attempts >= games.
func (s *Server) sessionShape(w http.ResponseWriter, games, attempts *int) (int, int, bool) {
	g, a := s.opts.GameCount, s.opts.MaxAttempts
	if games != nil {
		g = *games
	}
	if attempts != nil {
		a = *attempts
	}
	if g < 0 || g > s.opts.MaxGameCount {
		writeError(w, http.StatusBadRequest, "invalid_games")
		return 0, 0, false
	}
	if a <= 0 || a < g {
		writeError(w, http.StatusBadRequest, "invalid_max_attempts")
		return 0, 0, false
	}
	return g, a, true
}

// register stores sess, signs its token and writes the createRes.
func (s *Server) register(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	id, err := s.opts.Store.Create(r.Context(), sess)
	if err != nil {
		log.Error().Err(err).Msg("store session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, err := s.signSessionToken(id)
	if err != nil {
		log.Error().Err(err).Str("sessionId", id).Msg("sign session token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	log.Info().Str("sessionId", id).Int("games", sess.GameCount()).Int("maxAttempts", sess.MaxAttempts()).Msg("session created")
	writeJSON(w, http.StatusCreated, createRes{
		SessionID:   id,
		Token:       tok,
		Games:       sess.GameCount(),
		MaxAttempts: sess.MaxAttempts(),
		WordLength:  sess.WordLength(),
	})
}

// handleGet returns the session snapshot.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).Snapshot())
}

type guessReq struct {
	Guess string `json:"guess"`
}

// gameResult is one entry of guessRes.Results.
type gameResult struct {
	Marks    []game.Mark `json:"marks,omitempty"`
	Error    string      `json:"error,omitempty"`
	Status   game.Status `json:"status"`
	Attempts int         `json:"attempts"`
}

type guessRes struct {
	Results map[int]gameResult `json:"results"` // keyed by game index; finished games are absent
	Over    bool               `json:"over"`
}

// handleGuess forwards one raw guess to every active game of the session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess := sessionFrom(r)

	results, over := sess.SubmitGuessOver(req.Guess)
	out := guessRes{Results: make(map[int]gameResult, len(results)), Over: over}
	for i, res := range results {
		gr := gameResult{Marks: res.Marks, Status: res.Status, Attempts: res.Attempts}
		if res.Err != nil {
			gr.Error = errorCode(res.Err)
		}
		out.Results[i] = gr
	}
	if out.Over {
		log.Info().Str("sessionId", chi.URLParam(r, "id")).Msg("session finished")
	}
	writeJSON(w, http.StatusOK, out)
}

// handleReset draws new secrets for the session, keeping its config.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if err := sess.Reset(s.opts.Rand); err != nil {
		log.Error().Err(err).Str("sessionId", chi.URLParam(r, "id")).Msg("reset session")
		writeError(w, http.StatusInternalServerError, "reset_failed")
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// handleDelete drops the session.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.opts.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ------------------------------- helpers ------------------------------------

// errorCode maps domain errors to stable JSON codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, game.ErrGameOver):
		return "game_over"
	case errors.Is(err, game.ErrLengthMismatch):
		return "length_mismatch"
	case errors.Is(err, game.ErrUnknownWord):
		return "unknown_word"
	case errors.Is(err, game.ErrInvalidConfig):
		return "invalid_config"
	case errors.Is(err, words.ErrDictionaryEmpty):
		return "dictionary_empty"
	case errors.Is(err, store.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
