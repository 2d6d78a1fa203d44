// Package store provides workspace persistence. The in-memory flavor backs
// tests and the demo environment; the sqlite flavor backs single-node
// deployments.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"talentdeck/internal/sentinel"
	"talentdeck/internal/workspace/models"
)

// ErrNotFound is returned when a workspace is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores workspaces and their satellite records in memory.
type InMemory struct {
	mu         sync.RWMutex
	workspaces map[int64]*models.Workspace
	windows    map[int64][]models.AvailabilityWindow
	logs       map[int64][]models.WellbeingLog
	articles   map[int64][]models.KnowledgeArticle
}

// NewInMemory creates an in-memory workspace store.
func NewInMemory() *InMemory {
	return &InMemory{
		workspaces: make(map[int64]*models.Workspace),
		windows:    make(map[int64][]models.AvailabilityWindow),
		logs:       make(map[int64][]models.WellbeingLog),
		articles:   make(map[int64][]models.KnowledgeArticle),
	}
}

// Put inserts or replaces a workspace.
func (s *InMemory) Put(w *models.Workspace) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workspaces[w.ID] = w
}

// PutAvailabilityWindow attaches an availability window to its workspace.
func (s *InMemory) PutAvailabilityWindow(win models.AvailabilityWindow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows[win.WorkspaceID] = append(s.windows[win.WorkspaceID], win)
}

// PutWellbeingLog attaches a wellbeing log to its workspace.
func (s *InMemory) PutWellbeingLog(log models.WellbeingLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[log.WorkspaceID] = append(s.logs[log.WorkspaceID], log)
}

// PutKnowledgeArticle attaches a knowledge article to its workspace.
func (s *InMemory) PutKnowledgeArticle(a models.KnowledgeArticle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles[a.WorkspaceID] = append(s.articles[a.WorkspaceID], a)
}

// FindByID retrieves a workspace by id.
func (s *InMemory) FindByID(_ context.Context, id int64) (*models.Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if w, ok := s.workspaces[id]; ok {
		return w, nil
	}
	return nil, ErrNotFound
}

// FindCurrent returns the most-recently-updated active workspace of an
// eligible type (agency or recruiter).
func (s *InMemory) FindCurrent(ctx context.Context) (*models.Workspace, error) {
	eligible, err := s.ListEligible(ctx)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, ErrNotFound
	}
	return eligible[0], nil
}

// ListEligible returns active agency/recruiter workspaces, most recently
// updated first.
func (s *InMemory) ListEligible(_ context.Context) ([]*models.Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Workspace
	for _, w := range s.workspaces {
		if !w.IsActive {
			continue
		}
		if w.Type != models.TypeAgency && w.Type != models.TypeRecruiter {
			continue
		}
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ListAvailabilityWindows returns the workspace's published windows.
func (s *InMemory) ListAvailabilityWindows(_ context.Context, workspaceID int64) ([]models.AvailabilityWindow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AvailabilityWindow(nil), s.windows[workspaceID]...), nil
}

// ListWellbeingLogs returns logs recorded at or after since, newest first.
func (s *InMemory) ListWellbeingLogs(_ context.Context, workspaceID int64, since time.Time) ([]models.WellbeingLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.WellbeingLog
	for _, l := range s.logs[workspaceID] {
		if l.LoggedAt.Before(since) {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LoggedAt.After(out[j].LoggedAt) })
	return out, nil
}

// ListKnowledgeArticles returns the workspace's articles, newest first.
func (s *InMemory) ListKnowledgeArticles(_ context.Context, workspaceID int64) ([]models.KnowledgeArticle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]models.KnowledgeArticle(nil), s.articles[workspaceID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}
