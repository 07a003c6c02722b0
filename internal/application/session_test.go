package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(t *testing.T) (*Sessions, *mockIdentityStore) {
	t.Helper()

	store := &mockIdentityStore{}
	account := NewAccount(store)
	_, err := account.UpsertAdmin(context.Background(), "test", "123")
	require.NoError(t, err)

	return NewSessions(account, time.Hour), store
}

func TestSessions_LoginAndResolve(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	token, err := gate.Login(ctx, "test", "123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := gate.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "test", identity.Username)
}

func TestSessions_Login_BadCredentials(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	_, err := gate.Login(ctx, "test", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = gate.Login(ctx, "nobody", "123")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestSessions_Logout(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	token, err := gate.Login(ctx, "test", "123")
	require.NoError(t, err)

	gate.Logout(token)

	_, err = gate.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessions_Resolve_UnknownToken(t *testing.T) {
	gate, _ := newTestGate(t)

	_, err := gate.Resolve(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = gate.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessions_Resolve_Expired(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	token, err := gate.Login(ctx, "test", "123")
	require.NoError(t, err)

	// Advance the gate's clock past the TTL.
	gate.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = gate.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessions_Resolve_IdentityGone(t *testing.T) {
	gate, store := newTestGate(t)
	ctx := context.Background()

	token, err := gate.Login(ctx, "test", "123")
	require.NoError(t, err)

	store.identity = nil

	_, err = gate.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession, "session referencing a missing identity must be invalidated")
}

func TestSessions_TokensAreUnique(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	first, err := gate.Login(ctx, "test", "123")
	require.NoError(t, err)
	second, err := gate.Login(ctx, "test", "123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
