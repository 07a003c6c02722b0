package driven

import (
	"context"

	"github.com/ericfisherdev/watchlist/internal/domain/model"
)

// MessageStore defines the driven port for message board persistence.
type MessageStore interface {
	// Insert persists a new post and assigns its id on the passed message.
	Insert(ctx context.Context, message *model.Message) error
	// ListAll returns all posts, newest first.
	ListAll(ctx context.Context) ([]model.Message, error)
}
