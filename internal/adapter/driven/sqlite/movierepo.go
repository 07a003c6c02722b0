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
var _ driven.MovieStore = (*MovieRepo)(nil)

// MovieRepo is the SQLite implementation of the MovieStore port interface.
type MovieRepo struct {
	db *DB
}

// NewMovieRepo creates a new MovieRepo backed by the given DB.
func NewMovieRepo(db *DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// Insert persists a new movie entry and assigns the generated id.
func (r *MovieRepo) Insert(ctx context.Context, movie *model.Movie) error {
	const query = `INSERT INTO movies (title, year) VALUES (?, ?)`

	result, err := r.db.Writer.ExecContext(ctx, query, movie.Title, movie.Year)
	if err != nil {
		return fmt.Errorf("insert movie %q: %w", movie.Title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("movie insert id: %w", err)
	}
	movie.ID = id

	return nil
}

// GetByID retrieves a movie entry by id. Returns driven.ErrMovieNotFound when
// no entry with that id exists.
func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	const query = `SELECT id, title, year FROM movies WHERE id = ?`

	var movie model.Movie
	err := r.db.Reader.QueryRowContext(ctx, query, id).Scan(&movie.ID, &movie.Title, &movie.Year)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get movie %d: %w", id, driven.ErrMovieNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", id, err)
	}

	return &movie, nil
}

// ListAll returns all movie entries in insertion order (id ascending).
func (r *MovieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	const query = `SELECT id, title, year FROM movies ORDER BY id`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var movies []model.Movie
	for rows.Next() {
		var movie model.Movie
		if err := rows.Scan(&movie.ID, &movie.Title, &movie.Year); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}

	return movies, nil
}

// Update overwrites both fields of an existing entry in a single statement.
// Returns driven.ErrMovieNotFound when no entry with that id exists.
func (r *MovieRepo) Update(ctx context.Context, movie model.Movie) error {
	const query = `UPDATE movies SET title = ?, year = ? WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, movie.Title, movie.Year, movie.ID)
	if err != nil {
		return fmt.Errorf("update movie %d: %w", movie.ID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update movie %d: %w", movie.ID, driven.ErrMovieNotFound)
	}

	return nil
}

// Delete removes a movie entry permanently. Returns driven.ErrMovieNotFound
// when no entry with that id exists, including a repeated delete.
func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM movies WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete movie %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete movie %d: %w", id, driven.ErrMovieNotFound)
	}

	return nil
}
