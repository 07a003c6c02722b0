package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ericfisherdev/watchlist/internal/domain/model"
	"github.com/ericfisherdev/watchlist/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.IdentityStore = (*IdentityRepo)(nil)

// IdentityRepo is the SQLite implementation of the IdentityStore port
// interface. The identity table holds at most one row; Upsert keeps it so.
type IdentityRepo struct {
	db *DB
}

// NewIdentityRepo creates a new IdentityRepo backed by the given DB.
func NewIdentityRepo(db *DB) *IdentityRepo {
	return &IdentityRepo{db: db}
}

// Get returns the single identity row, or driven.ErrIdentityNotFound when the
// table is empty.
func (r *IdentityRepo) Get(ctx context.Context) (*model.Identity, error) {
	const query = `SELECT id, display_name, username, password_hash FROM identity LIMIT 1`

	identity, err := scanIdentity(r.db.Reader.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, driven.ErrIdentityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get identity: %w", err)
	}

	return identity, nil
}

// GetByID returns the identity with the given id, or driven.ErrIdentityNotFound.
func (r *IdentityRepo) GetByID(ctx context.Context, id int64) (*model.Identity, error) {
	const query = `SELECT id, display_name, username, password_hash FROM identity WHERE id = ?`

	identity, err := scanIdentity(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, driven.ErrIdentityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get identity %d: %w", id, err)
	}

	return identity, nil
}

// Upsert creates the identity row when the table is empty, otherwise
// overwrites the existing row's username and password hash in place. The
// display name is only written on create. The identity's ID is assigned on
// create and reported back on update.
func (r *IdentityRepo) Upsert(ctx context.Context, identity *model.Identity) (bool, error) {
	existing, err := r.Get(ctx)
	if err != nil && !errors.Is(err, driven.ErrIdentityNotFound) {
		return false, fmt.Errorf("upsert identity: %w", err)
	}

	if existing == nil {
		const insert = `INSERT INTO identity (display_name, username, password_hash) VALUES (?, ?, ?)`
		result, err := r.db.Writer.ExecContext(ctx, insert, identity.DisplayName, identity.Username, identity.PasswordHash)
		if err != nil {
			return false, fmt.Errorf("insert identity: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return false, fmt.Errorf("identity insert id: %w", err)
		}
		identity.ID = id

		return true, nil
	}

	const update = `UPDATE identity SET username = ?, password_hash = ? WHERE id = ?`
	if _, err := r.db.Writer.ExecContext(ctx, update, identity.Username, identity.PasswordHash, existing.ID); err != nil {
		return false, fmt.Errorf("update identity: %w", err)
	}
	identity.ID = existing.ID
	identity.DisplayName = existing.DisplayName

	return false, nil
}

// UpdateDisplayName changes only the display name of the given identity.
func (r *IdentityRepo) UpdateDisplayName(ctx context.Context, id int64, name string) error {
	const query = `UPDATE identity SET display_name = ? WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, name, id)
	if err != nil {
		return fmt.Errorf("update display name: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update display name: %w", driven.ErrIdentityNotFound)
	}

	return nil
}

func scanIdentity(s scanner) (*model.Identity, error) {
	var identity model.Identity
	err := s.Scan(&identity.ID, &identity.DisplayName, &identity.Username, &identity.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &identity, nil
}
