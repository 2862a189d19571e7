package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jshotsmedia/studio/internal/domain"
)

func TestChatStoreSeededWithWelcome(t *testing.T) {
	s := NewChatStore(openTestDB(t))

	messages, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, domain.RoleAssistant, messages[0].Role)
	assert.Contains(t, messages[0].Text, "Welcome to the J Shots Media Workplace")
}

func TestChatStoreAppendOrder(t *testing.T) {
	s := NewChatStore(openTestDB(t))
	ctx := context.Background()

	_, err := s.Append(ctx, domain.RoleUser, "Do you shoot weddings?")
	require.NoError(t, err)
	_, err = s.Append(ctx, domain.RoleAssistant, "We do! Photography, videography, or both.")
	require.NoError(t, err)

	messages, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, domain.RoleUser, messages[1].Role)
	assert.Equal(t, domain.RoleAssistant, messages[2].Role)
}

func TestBoardStoreAppendAndList(t *testing.T) {
	s := NewBoardStore(openTestDB(t))
	ctx := context.Background()

	first, err := s.Append(ctx, "Director", "Meeting moved to 3pm.")
	require.NoError(t, err)
	assert.Equal(t, "Director", first.Sender)
	assert.False(t, first.Timestamp.IsZero())

	_, err = s.Append(ctx, "Secretary", "Noted, updating the calendar.")
	require.NoError(t, err)

	messages, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Meeting moved to 3pm.", messages[0].Text)
	assert.Equal(t, "Secretary", messages[1].Sender)
}
