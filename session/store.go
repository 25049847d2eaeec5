package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store is a concurrency-safe token holder. The zero value is an empty
// session ready for use.
type Store struct {
	mu    sync.RWMutex
	token string
}

// NewStore returns a store holding token.
func NewStore(token string) *Store {
	return &Store{token: token}
}

// Set replaces the token. An empty token signs the session out.
func (s *Store) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Token returns the current token, or "" when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Clear signs the session out.
func (s *Store) Clear() {
	s.Set("")
}

// Authenticated reports whether a token is present.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// ExpiresAt returns the exp claim of the token when it is a JWT carrying
// one. The signature is not verified; only the server can do that.
func (s *Store) ExpiresAt() (time.Time, bool) {
	return expiry(s.Token())
}

// Expired reports whether the token carries an exp claim that lies before now.
// Tokens without a readable expiry are not considered expired.
func (s *Store) Expired(now time.Time) bool {
	exp, ok := s.ExpiresAt()
	return ok && !now.Before(exp)
}

func expiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
