package application

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/watchlist/internal/domain/model"
	"github.com/ericfisherdev/watchlist/internal/domain/port/driven"
)

// Catalog manages the ordered collection of movie entries with validated
// create, update, and delete operations.
type Catalog struct {
	movies driven.MovieStore
}

// NewCatalog creates a Catalog backed by the given movie store.
func NewCatalog(movies driven.MovieStore) *Catalog {
	return &Catalog{movies: movies}
}

// List returns all entries in insertion order.
func (c *Catalog) List(ctx context.Context) ([]model.Movie, error) {
	movies, err := c.movies.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return movies, nil
}

// Get returns one entry by id, or driven.ErrMovieNotFound.
func (c *Catalog) Get(ctx context.Context, id int64) (*model.Movie, error) {
	return c.movies.GetByID(ctx, id)
}

// Add validates the fields and persists a new entry. On a validation failure
// nothing is persisted and a *model.ValidationError is returned.
func (c *Catalog) Add(ctx context.Context, title, year string) (*model.Movie, error) {
	movie := model.Movie{Title: title, Year: year}
	if err := movie.Validate(); err != nil {
		return nil, err
	}

	if err := c.movies.Insert(ctx, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// Update validates both fields before issuing the write, so a validation
// failure leaves the stored entry untouched in both fields. Returns
// driven.ErrMovieNotFound when the id does not exist.
func (c *Catalog) Update(ctx context.Context, id int64, title, year string) (*model.Movie, error) {
	movie := model.Movie{ID: id, Title: title, Year: year}
	if err := movie.Validate(); err != nil {
		return nil, err
	}

	if err := c.movies.Update(ctx, movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// Delete removes an entry permanently. Returns driven.ErrMovieNotFound when
// the id does not exist.
func (c *Catalog) Delete(ctx context.Context, id int64) error {
	return c.movies.Delete(ctx, id)
}
