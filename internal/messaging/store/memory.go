// Package store provides outreach messaging persistence for the demo
// environment and tests.
package store

import (
	"context"
	"sort"
	"sync"

	"talentdeck/internal/messaging/models"
	wsmodels "talentdeck/internal/workspace/models"
)

// InMemory stores message threads and contact notes in memory.
type InMemory struct {
	mu      sync.RWMutex
	threads map[int64]*models.MessageThread
	notes   map[int64][]models.ContactNote
}

// NewInMemory creates an in-memory messaging store.
func NewInMemory() *InMemory {
	return &InMemory{
		threads: make(map[int64]*models.MessageThread),
		notes:   make(map[int64][]models.ContactNote),
	}
}

// PutThread inserts or replaces a thread, parsing its scope tag and each
// message's direction/channel metadata at the boundary.
func (s *InMemory) PutThread(t *models.MessageThread) {
	t.Scope = wsmodels.ParseScopeTag(t.Metadata)
	for i := range t.Messages {
		m := &t.Messages[i]
		if m.Direction != "" && m.Channel != "" {
			continue
		}
		direction, channel := models.ParseMessageMeta(m.Metadata)
		if m.Direction == "" {
			m.Direction = direction
		}
		if m.Channel == "" {
			m.Channel = channel
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads[t.ID] = t
}

// PutContactNote attaches a contact note to its workspace.
func (s *InMemory) PutContactNote(n models.ContactNote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[n.WorkspaceID] = append(s.notes[n.WorkspaceID], n)
}

// ListThreads returns every thread, ordered by ID.
func (s *InMemory) ListThreads(_ context.Context) ([]*models.MessageThread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.MessageThread, 0, len(s.threads))
	for _, t := range s.threads {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListContactNotes returns the workspace's contact notes, newest first.
func (s *InMemory) ListContactNotes(_ context.Context, workspaceID int64) ([]models.ContactNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]models.ContactNote(nil), s.notes[workspaceID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
