// Package auth holds the session state shared by every API call.
package auth

import (
	"sync"

	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// TokenSource exposes the current session token to the request pipeline.
type TokenSource interface {
	Token() (string, error)
}

// Session holds the session token and related session facts for the lifetime
// of a client instance. It is created empty and mutated only by a successful
// login. All access goes through one RWMutex: every call reads the token,
// only login writes it. Concurrent logins are not serialized against each
// other beyond the lock; callers should not log in concurrently.
type Session struct {
	mu                sync.RWMutex
	token             string
	orgID             string
	twoFactorRequired bool
}

// NewSession creates an empty, unauthenticated session.
func NewSession() *Session {
	return &Session{}
}

// Token returns the current session token, or psapi.ErrNotAuthenticated when
// no login has succeeded yet.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", psapi.ErrNotAuthenticated
	}

	return s.token, nil
}

// Set overwrites the session with the values returned by a login call.
func (s *Session) Set(token, orgID string, twoFactorRequired bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.orgID = orgID
	s.twoFactorRequired = twoFactorRequired
}

// Clear resets the session to its unauthenticated state.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.orgID = ""
	s.twoFactorRequired = false
}

// Authenticated reports whether a session token is present.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token != ""
}

// OrgID returns the organization id stored by the last login, if any.
func (s *Session) OrgID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.orgID
}

// TwoFactorRequired reports whether the last login answered with a pending
// two-factor challenge.
func (s *Session) TwoFactorRequired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.twoFactorRequired
}
