package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentdeck/internal/messaging/models"
)

func TestPutThreadParsesBoundaries(t *testing.T) {
	s := NewInMemory()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	s.PutThread(&models.MessageThread{
		ID:       1,
		Subject:  "VP Engineering shortlist",
		Metadata: map[string]any{"workspaceId": int64(4)},
		Messages: []models.Message{
			{ID: 1, SentAt: now, Metadata: map[string]any{"direction": "outbound", "channel": "email"}},
			{ID: 2, SentAt: now, Metadata: map[string]any{"direction": "inbound"}},
			{ID: 3, SentAt: now, Direction: models.DirectionOutbound, Channel: "sms"},
		},
	})

	threads, err := s.ListThreads(context.Background())
	require.NoError(t, err)
	require.Len(t, threads, 1)

	thread := threads[0]
	assert.True(t, thread.Scope.Matches(4, ""))
	assert.False(t, thread.Scope.Matches(9, ""))

	assert.Equal(t, "outbound", thread.Messages[0].Direction)
	assert.Equal(t, "email", thread.Messages[0].Channel)
	assert.Equal(t, "inbound", thread.Messages[1].Direction)
	assert.Equal(t, models.DefaultChannel, thread.Messages[1].Channel, "missing channel falls back to in-app")
	assert.Equal(t, "sms", thread.Messages[2].Channel, "explicit fields win over metadata")
}

func TestListContactNotesNewestFirst(t *testing.T) {
	s := NewInMemory()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	s.PutContactNote(models.ContactNote{ID: 1, WorkspaceID: 1, ContactName: "Old", CreatedAt: now.AddDate(0, 0, -5)})
	s.PutContactNote(models.ContactNote{ID: 2, WorkspaceID: 1, ContactName: "New", CreatedAt: now})
	s.PutContactNote(models.ContactNote{ID: 3, WorkspaceID: 2, ContactName: "Elsewhere", CreatedAt: now})

	notes, err := s.ListContactNotes(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "New", notes[0].ContactName)
	assert.Equal(t, "Old", notes[1].ContactName)
}
