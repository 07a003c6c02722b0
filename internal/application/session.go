package application

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ericfisherdev/watchlist/internal/domain/model"
	"github.com/ericfisherdev/watchlist/internal/domain/port/driven"
)

// ErrNoSession indicates the token is unknown, expired, or its identity no
// longer exists.
var ErrNoSession = errors.New("no active session")

type sessionEntry struct {
	identityID int64
	expiresAt  time.Time
}

// Sessions is the authentication gate: it issues opaque login tokens and
// re-hydrates the owning identity on every request. Tokens live in process
// memory; restarting the server logs everyone out.
type Sessions struct {
	accounts *Account
	ttl      time.Duration

	mu     sync.Mutex
	active map[string]sessionEntry
	now    func() time.Time
}

// NewSessions creates a session gate with the given token lifetime.
func NewSessions(accounts *Account, ttl time.Duration) *Sessions {
	return &Sessions{
		accounts: accounts,
		ttl:      ttl,
		active:   make(map[string]sessionEntry),
		now:      time.Now,
	}
}

// Login authenticates the credentials and, on success, issues a session token.
// Any credential mismatch yields ErrBadCredentials and no state change.
func (s *Sessions) Login(ctx context.Context, username, password string) (string, error) {
	identity, err := s.accounts.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	s.mu.Lock()
	s.active[token] = sessionEntry{
		identityID: identity.ID,
		expiresAt:  s.now().Add(s.ttl),
	}
	s.mu.Unlock()

	return token, nil
}

// Resolve returns the identity owning the token. Expired tokens and tokens
// whose identity has disappeared are dropped and reported as ErrNoSession.
func (s *Sessions) Resolve(ctx context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	s.mu.Lock()
	entry, ok := s.active[token]
	if ok && s.now().After(entry.expiresAt) {
		delete(s.active, token)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, ErrNoSession
	}

	identity, err := s.accounts.GetByID(ctx, entry.identityID)
	if errors.Is(err, driven.ErrIdentityNotFound) {
		s.Logout(token)
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	return identity, nil
}

// Logout discards the token. Unknown tokens are ignored.
func (s *Sessions) Logout(token string) {
	s.mu.Lock()
	delete(s.active, token)
	s.mu.Unlock()
}

// generateToken returns a cryptographically random 64-hex-char session id.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
