package sqlite

import (
	"context"
	"testing"

	"github.com/ericfisherdev/watchlist/internal/domain/model"
	"github.com/ericfisherdev/watchlist/internal/domain/port/driven"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieRepo_Insert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMovieRepo(db)
	ctx := context.Background()

	movie := &model.Movie{Title: "Leon", Year: "1994"}
	err := repo.Insert(ctx, movie)
	require.NoError(t, err)
	assert.NotZero(t, movie.ID, "insert should assign an id")

	got, err := repo.GetByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leon", got.Title)
	assert.Equal(t, "1994", got.Year)
}

func TestMovieRepo_Insert_DuplicatesAllowed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMovieRepo(db)
	ctx := context.Background()

	first := &model.Movie{Title: "Mahjong", Year: "1996"}
	second := &model.Movie{Title: "Mahjong", Year: "1996"}
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMovieRepo_ListAll_InsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMovieRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &model.Movie{Title: "WALL-E", Year: "2008"}))
	require.NoError(t, repo.Insert(ctx, &model.Movie{Title: "A Perfect World", Year: "1993"}))
	require.NoError(t, repo.Insert(ctx, &model.Movie{Title: "King of Comedy", Year: "1999"}))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Ordered by id ascending, not alphabetically.
	assert.Equal(t, "WALL-E", all[0].Title)
	assert.Equal(t, "A Perfect World", all[1].Title)
	assert.Equal(t, "King of Comedy", all[2].Title)
	assert.Less(t, all[0].ID, all[1].ID)
	assert.Less(t, all[1].ID, all[2].ID)
}

func TestMovieRepo_ListAll_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMovieRepo(db)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMovieRepo_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMovieRepo(db)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, driven.ErrMovieNotFound)
}

func TestMovieRepo_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMovieRepo(db)
	ctx := context.Background()

	movie := &model.Movie{Title: "Swallowtail Butterly", Year: "1995"}
	require.NoError(t, repo.Insert(ctx, movie))

	err := repo.Update(ctx, model.Movie{ID: movie.ID, Title: "Swallowtail Butterfly", Year: "1996"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Swallowtail Butterfly", got.Title)
	assert.Equal(t, "1996", got.Year)
}

func TestMovieRepo_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMovieRepo(db)

	err := repo.Update(context.Background(), model.Movie{ID: 9, Title: "Nothing", Year: "2000"})
	assert.ErrorIs(t, err, driven.ErrMovieNotFound)
}

func TestMovieRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMovieRepo(db)
	ctx := context.Background()

	movie := &model.Movie{Title: "Dead Poets Society", Year: "1989"}
	require.NoError(t, repo.Insert(ctx, movie))

	require.NoError(t, repo.Delete(ctx, movie.ID))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMovieRepo_Delete_Twice(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMovieRepo(db)
	ctx := context.Background()

	movie := &model.Movie{Title: "My Neighbor Totoro", Year: "1988"}
	require.NoError(t, repo.Insert(ctx, movie))

	require.NoError(t, repo.Delete(ctx, movie.ID))
	err := repo.Delete(ctx, movie.ID)
	assert.ErrorIs(t, err, driven.ErrMovieNotFound, "second delete of the same id should report not found")
}
