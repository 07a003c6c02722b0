package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/ericfisherdev/watchlist/internal/domain/model"
	"github.com/ericfisherdev/watchlist/internal/domain/port/driven"
)

// sampleMovies are the entries inserted by the forge maintenance command.
var sampleMovies = []model.Movie{
	{Title: "My Neighbor Totoro", Year: "1988"},
	{Title: "Dead Poets Society", Year: "1989"},
	{Title: "A Perfect World", Year: "1993"},
	{Title: "Leon", Year: "1994"},
	{Title: "Mahjong", Year: "1996"},
	{Title: "Swallowtail Butterfly", Year: "1996"},
	{Title: "King of Comedy", Year: "1999"},
	{Title: "Devils on the Doorstep", Year: "1999"},
	{Title: "WALL-E", Year: "2008"},
	{Title: "The Pork of Music", Year: "2012"},
}

// SeedSampleData populates the store for the forge command: it ensures an
// identity row exists (created with the default display name and no
// credentials; the admin command sets those) and appends the ten sample
// movie entries.
func SeedSampleData(ctx context.Context, identities driven.IdentityStore, movies driven.MovieStore) error {
	_, err := identities.Get(ctx)
	if errors.Is(err, driven.ErrIdentityNotFound) {
		identity := &model.Identity{DisplayName: defaultDisplayName}
		if _, err := identities.Upsert(ctx, identity); err != nil {
			return fmt.Errorf("seed identity: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("seed identity: %w", err)
	}

	for _, movie := range sampleMovies {
		m := movie
		if err := movies.Insert(ctx, &m); err != nil {
			return fmt.Errorf("seed movie %q: %w", movie.Title, err)
		}
	}

	return nil
}
