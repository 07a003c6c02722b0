// Package application contains the domain services composed by the driving
// adapters: account credentials, the movie catalog, sessions, and the
// message board.
package application

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ericfisherdev/watchlist/internal/domain/model"
	"github.com/ericfisherdev/watchlist/internal/domain/port/driven"
)

// ErrBadCredentials is returned for any login mismatch. It deliberately does
// not distinguish a wrong username from a wrong password.
var ErrBadCredentials = errors.New("wrong username or password")

// defaultDisplayName is assigned when the admin command creates the identity.
const defaultDisplayName = "Administrator"

// Account manages the single administrative identity and its credentials.
type Account struct {
	identities driven.IdentityStore
}

// NewAccount creates an Account backed by the given identity store.
func NewAccount(identities driven.IdentityStore) *Account {
	return &Account{identities: identities}
}

// HashPassword computes a salted bcrypt digest of the plaintext.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
// The comparison is delegated to bcrypt; no custom equality is performed.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// UpsertAdmin creates the identity with the default display name when none
// exists, or overwrites the existing identity's username and password hash in
// place. Reports whether a new identity was created.
func (a *Account) UpsertAdmin(ctx context.Context, username, password string) (created bool, err error) {
	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}

	identity := &model.Identity{
		DisplayName:  defaultDisplayName,
		Username:     username,
		PasswordHash: hash,
	}

	created, err = a.identities.Upsert(ctx, identity)
	if err != nil {
		return false, fmt.Errorf("upsert admin: %w", err)
	}
	return created, nil
}

// Authenticate verifies the credentials against the single stored identity.
// Any mismatch, including a missing identity, yields ErrBadCredentials.
func (a *Account) Authenticate(ctx context.Context, username, password string) (*model.Identity, error) {
	identity, err := a.identities.Get(ctx)
	if errors.Is(err, driven.ErrIdentityNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if username != identity.Username || !CheckPassword(identity.PasswordHash, password) {
		return nil, ErrBadCredentials
	}

	return identity, nil
}

// GetByID re-hydrates an identity by id. Returns driven.ErrIdentityNotFound
// when the id no longer exists.
func (a *Account) GetByID(ctx context.Context, id int64) (*model.Identity, error) {
	return a.identities.GetByID(ctx, id)
}

// Owner returns the stored identity for display purposes, or
// driven.ErrIdentityNotFound when the admin command has not been run yet.
func (a *Account) Owner(ctx context.Context) (*model.Identity, error) {
	return a.identities.Get(ctx)
}

// UpdateDisplayName validates and applies a new display name for the given
// identity. Only the display name is touched.
func (a *Account) UpdateDisplayName(ctx context.Context, id int64, name string) error {
	if err := model.ValidateDisplayName(name); err != nil {
		return err
	}

	if err := a.identities.UpdateDisplayName(ctx, id, name); err != nil {
		return fmt.Errorf("update display name: %w", err)
	}
	return nil
}
