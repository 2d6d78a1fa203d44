// Package store provides client partnership persistence for the demo
// environment and tests.
package store

import (
	"context"
	"sort"
	"sync"

	"talentdeck/internal/engagement/models"
)

// InMemory stores client engagements and issue-resolution cases in memory.
type InMemory struct {
	mu          sync.RWMutex
	engagements map[int64]*models.ClientEngagement
	cases       map[int64]*models.IssueResolutionCase
}

// NewInMemory creates an in-memory engagement store.
func NewInMemory() *InMemory {
	return &InMemory{
		engagements: make(map[int64]*models.ClientEngagement),
		cases:       make(map[int64]*models.IssueResolutionCase),
	}
}

// PutEngagement inserts or replaces an engagement with all child records.
func (s *InMemory) PutEngagement(e *models.ClientEngagement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engagements[e.ID] = e
}

// PutCase inserts or replaces an issue-resolution case.
func (s *InMemory) PutCase(c *models.IssueResolutionCase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cases[c.ID] = c
}

// ListEngagements returns the workspace's client engagements.
func (s *InMemory) ListEngagements(_ context.Context, workspaceID int64) ([]*models.ClientEngagement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.ClientEngagement
	for _, e := range s.engagements {
		if e.WorkspaceID == workspaceID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListCases returns the workspace's issue-resolution cases, newest first.
func (s *InMemory) ListCases(_ context.Context, workspaceID int64) ([]*models.IssueResolutionCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.IssueResolutionCase
	for _, c := range s.cases {
		if c.WorkspaceID == workspaceID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OpenedAt.After(out[j].OpenedAt) })
	return out, nil
}
