// Package session owns the authenticated identity and its bearer token: the
// sole source of truth for "who is asking". The store is an explicit object
// with a defined init (restore on startup, set on login) and teardown
// (clear on logout) rather than ambient global state.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/models"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/repositories/state"
)

const keyIdentity = "identity"

// Store keeps the current identity in memory and mirrors it into the local
// state repository so a later run can restore the session.
type Store struct {
	repo state.Repository

	mu    sync.RWMutex
	ident *models.Identity
}

func NewStore(repo state.Repository) *Store {
	return &Store{repo: repo}
}

// Current returns the authenticated identity, or nil when nobody is signed in.
func (s *Store) Current() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ident == nil {
		return nil
	}
	ident := *s.ident
	return &ident
}

// Token returns the bearer token of the current session, or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ident == nil {
		return ""
	}
	return s.ident.Token
}

// Set installs ident as the current session and persists it.
func (s *Store) Set(ctx context.Context, ident *models.Identity) error {
	data, err := json.Marshal(ident)
	if err != nil {
		return fmt.Errorf("encoding identity: %w", err)
	}
	if err := s.repo.Set(ctx, keyIdentity, data); err != nil {
		return err
	}
	s.mu.Lock()
	copied := *ident
	s.ident = &copied
	s.mu.Unlock()
	return nil
}

// Clear removes the identity and token together, in memory and on disk.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.ident = nil
	s.mu.Unlock()
	return nil
}

// Restore loads a previously persisted session. A session whose token has
// already expired is discarded instead of restored, so a stale token is
// never replayed against the collaborator. Returns nil with no error when
// there is nothing to restore.
func (s *Store) Restore(ctx context.Context) (*models.Identity, error) {
	data, err := s.repo.Get(ctx, keyIdentity)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var ident models.Identity
	if err := json.Unmarshal(data, &ident); err != nil {
		// unreadable state: drop it rather than fail startup
		_ = s.repo.Clear(ctx)
		return nil, nil
	}

	if tokenExpired(ident.Token) {
		_ = s.repo.Clear(ctx)
		return nil, nil
	}

	s.mu.Lock()
	s.ident = &ident
	s.mu.Unlock()

	copied := ident
	return &copied, nil
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; the collaborator is the authority on token validity, this only
// avoids replaying a token that is certainly dead.
func tokenExpired(token string) bool {
	if token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
