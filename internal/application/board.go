package application

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/watchlist/internal/domain/model"
	"github.com/ericfisherdev/watchlist/internal/domain/port/driven"
)

// Board manages message board posts. Posting is open to anonymous visitors.
type Board struct {
	messages driven.MessageStore
}

// NewBoard creates a Board backed by the given message store.
func NewBoard(messages driven.MessageStore) *Board {
	return &Board{messages: messages}
}

// List returns all posts, newest first.
func (b *Board) List(ctx context.Context) ([]model.Message, error) {
	messages, err := b.messages.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list board: %w", err)
	}
	return messages, nil
}

// Post validates and persists a new message.
func (b *Board) Post(ctx context.Context, username, content string) (*model.Message, error) {
	message := model.Message{Username: username, Content: content}
	if err := message.Validate(); err != nil {
		return nil, err
	}

	if err := b.messages.Insert(ctx, &message); err != nil {
		return nil, err
	}
	return &message, nil
}
