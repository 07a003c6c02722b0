package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/watchlist/internal/domain/model"
)

// ErrIdentityNotFound indicates no identity row exists yet (the admin command
// has not been run) or a session references an id that no longer exists.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityStore defines the driven port for the single administrative account.
// The store holds at most one row; Upsert enforces that invariant.
type IdentityStore interface {
	// Get returns the identity row, or ErrIdentityNotFound when none exists.
	Get(ctx context.Context) (*model.Identity, error)
	// GetByID returns the identity with the given id, or ErrIdentityNotFound.
	// Used to re-hydrate the session owner on each request.
	GetByID(ctx context.Context, id int64) (*model.Identity, error)
	// Upsert creates the identity when absent or overwrites username and
	// password hash in place when present. Reports whether a row was created.
	Upsert(ctx context.Context, identity *model.Identity) (created bool, err error)
	// UpdateDisplayName changes only the display name of the given identity.
	UpdateDisplayName(ctx context.Context, id int64, name string) error
}
