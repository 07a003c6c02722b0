package application

import (
	"context"
	"strings"
	"testing"

	"github.com/ericfisherdev/watchlist/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Post(t *testing.T) {
	board := NewBoard(&mockMessageStore{})
	ctx := context.Background()

	message, err := board.Post(ctx, "visitor", "Loved *Totoro*!")
	require.NoError(t, err)
	assert.NotZero(t, message.ID)

	all, err := board.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Loved *Totoro*!", all[0].Content)
}

func TestBoard_Post_Invalid(t *testing.T) {
	store := &mockMessageStore{}
	board := NewBoard(store)
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		content  string
		field    string
	}{
		{"empty username", "", "hi", "username"},
		{"username too long", strings.Repeat("u", 21), "hi", "username"},
		{"empty content", "visitor", "", "content"},
		{"content too long", "visitor", strings.Repeat("c", 201), "content"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.Post(ctx, tc.username, tc.content)
			var vErr *model.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}

	all, err := board.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBoard_List_NewestFirst(t *testing.T) {
	board := NewBoard(&mockMessageStore{})
	ctx := context.Background()

	_, err := board.Post(ctx, "a", "first")
	require.NoError(t, err)
	_, err = board.Post(ctx, "b", "second")
	require.NoError(t, err)

	all, err := board.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Content)
}
