package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/ericfisherdev/watchlist/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRepo_Insert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepo(db)
	ctx := context.Background()

	message := &model.Message{Username: "visitor", Content: "nice list!"}
	err := repo.Insert(ctx, message)
	require.NoError(t, err)
	assert.NotZero(t, message.ID)
	assert.False(t, message.CreatedAt.IsZero(), "insert should stamp created_at")
}

func TestMessageRepo_Insert_KeepsExplicitTimestamp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepo(db)
	ctx := context.Background()

	stamp := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	message := &model.Message{Username: "visitor", Content: "hello", CreatedAt: stamp}
	require.NoError(t, repo.Insert(ctx, message))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, stamp, all[0].CreatedAt.UTC())
}

func TestMessageRepo_ListAll_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &model.Message{Username: "a", Content: "first"}))
	require.NoError(t, repo.Insert(ctx, &model.Message{Username: "b", Content: "second"}))
	require.NoError(t, repo.Insert(ctx, &model.Message{Username: "c", Content: "third"}))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, "third", all[0].Content)
	assert.Equal(t, "second", all[1].Content)
	assert.Equal(t, "first", all[2].Content)
}

func TestMessageRepo_ListAll_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepo(db)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
