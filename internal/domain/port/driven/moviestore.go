// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/watchlist/internal/domain/model"
)

// ErrMovieNotFound indicates the referenced movie entry does not exist.
var ErrMovieNotFound = errors.New("movie not found")

// MovieStore defines the driven port for movie entry persistence.
// GetByID, Update, and Delete return ErrMovieNotFound when no entry with the
// given id exists.
type MovieStore interface {
	// Insert persists a new entry and assigns its id on the passed movie.
	Insert(ctx context.Context, movie *model.Movie) error
	GetByID(ctx context.Context, id int64) (*model.Movie, error)
	// ListAll returns all entries ordered by id ascending (insertion order).
	ListAll(ctx context.Context) ([]model.Movie, error)
	// Update overwrites both title and year of an existing entry in place.
	Update(ctx context.Context, movie model.Movie) error
	Delete(ctx context.Context, id int64) error
}
