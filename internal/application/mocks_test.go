package application

import (
	"context"

	"github.com/ericfisherdev/watchlist/internal/domain/model"
	"github.com/ericfisherdev/watchlist/internal/domain/port/driven"
)

// --- In-memory store fakes shared by the service tests ---

type mockIdentityStore struct {
	identity *model.Identity
	nextID   int64
}

func (m *mockIdentityStore) Get(_ context.Context) (*model.Identity, error) {
	if m.identity == nil {
		return nil, driven.ErrIdentityNotFound
	}
	copied := *m.identity
	return &copied, nil
}

func (m *mockIdentityStore) GetByID(_ context.Context, id int64) (*model.Identity, error) {
	if m.identity == nil || m.identity.ID != id {
		return nil, driven.ErrIdentityNotFound
	}
	copied := *m.identity
	return &copied, nil
}

func (m *mockIdentityStore) Upsert(_ context.Context, identity *model.Identity) (bool, error) {
	if m.identity == nil {
		m.nextID++
		identity.ID = m.nextID
		copied := *identity
		m.identity = &copied
		return true, nil
	}

	m.identity.Username = identity.Username
	m.identity.PasswordHash = identity.PasswordHash
	identity.ID = m.identity.ID
	identity.DisplayName = m.identity.DisplayName
	return false, nil
}

func (m *mockIdentityStore) UpdateDisplayName(_ context.Context, id int64, name string) error {
	if m.identity == nil || m.identity.ID != id {
		return driven.ErrIdentityNotFound
	}
	m.identity.DisplayName = name
	return nil
}

type mockMovieStore struct {
	movies []model.Movie
	nextID int64
}

func (m *mockMovieStore) Insert(_ context.Context, movie *model.Movie) error {
	m.nextID++
	movie.ID = m.nextID
	m.movies = append(m.movies, *movie)
	return nil
}

func (m *mockMovieStore) GetByID(_ context.Context, id int64) (*model.Movie, error) {
	for _, movie := range m.movies {
		if movie.ID == id {
			copied := movie
			return &copied, nil
		}
	}
	return nil, driven.ErrMovieNotFound
}

func (m *mockMovieStore) ListAll(_ context.Context) ([]model.Movie, error) {
	return append([]model.Movie(nil), m.movies...), nil
}

func (m *mockMovieStore) Update(_ context.Context, movie model.Movie) error {
	for i := range m.movies {
		if m.movies[i].ID == movie.ID {
			m.movies[i] = movie
			return nil
		}
	}
	return driven.ErrMovieNotFound
}

func (m *mockMovieStore) Delete(_ context.Context, id int64) error {
	for i := range m.movies {
		if m.movies[i].ID == id {
			m.movies = append(m.movies[:i], m.movies[i+1:]...)
			return nil
		}
	}
	return driven.ErrMovieNotFound
}

type mockMessageStore struct {
	messages []model.Message
	nextID   int64
}

func (m *mockMessageStore) Insert(_ context.Context, message *model.Message) error {
	m.nextID++
	message.ID = m.nextID
	// Prepend so ListAll is newest first, like the SQLite repo.
	m.messages = append([]model.Message{*message}, m.messages...)
	return nil
}

func (m *mockMessageStore) ListAll(_ context.Context) ([]model.Message, error) {
	return append([]model.Message(nil), m.messages...), nil
}
