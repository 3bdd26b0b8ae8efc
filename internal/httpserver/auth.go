// internal/httpserver/auth.go
//
// Session tokens.
// Creating a session returns an HS256 JWT whose "sid" claim is the session
// ID. Every /sessions/{id} route requires that token, so knowing a session ID
// alone is not enough to play someone else's boards.

package httpserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/multiwordle/internal/session"
)

// ctxSessionKey is the context key type for the resolved *session.Session.
type ctxSessionKey struct{}

// signSessionToken creates an HS256 JWT carrying the session ID.
func (s *Server) signSessionToken(id string) (string, error) {
	now := s.opts.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"iat": now.Unix(),
		"exp": now.Add(s.opts.TokenTTL).Unix(),
	})
	return t.SignedString(s.opts.Secret)
}

// parseSessionToken verifies tok and returns its "sid" claim.
func (s *Server) parseSessionToken(tok string) (string, bool) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return s.opts.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.opts.Now),
	)
	if err != nil || !t.Valid {
		return "", false
	}
	sid, _ := claims["sid"].(string)
	return sid, sid != ""
}

// requireSession enforces a token matching {id} and injects the session
// into the request context.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		tok := bearerToken(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		sid, ok := s.parseSessionToken(tok)
		if !ok || sid != id {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		sess, err := s.opts.Store.Get(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusNotFound, errorCode(err))
			return
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the session placed by requireSession.
func sessionFrom(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(ctxSessionKey{}).(*session.Session)
	return sess
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
