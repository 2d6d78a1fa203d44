// Package store provides prospecting persistence for the demo environment
// and tests.
package store

import (
	"context"
	"sort"
	"sync"

	"talentdeck/internal/prospect/models"
)

// InMemory stores prospect intelligence records in memory.
type InMemory struct {
	mu        sync.RWMutex
	profiles  map[int64]*models.IntelligenceProfile
	searches  map[int64]*models.SearchDefinition
	campaigns map[int64]*models.Campaign
	notes     map[int64][]models.ResearchNote
	tasks     map[int64][]models.ResearchTask
}

// NewInMemory creates an in-memory prospect store.
func NewInMemory() *InMemory {
	return &InMemory{
		profiles:  make(map[int64]*models.IntelligenceProfile),
		searches:  make(map[int64]*models.SearchDefinition),
		campaigns: make(map[int64]*models.Campaign),
		notes:     make(map[int64][]models.ResearchNote),
		tasks:     make(map[int64][]models.ResearchTask),
	}
}

// PutProfile inserts or replaces an intelligence profile.
func (s *InMemory) PutProfile(p *models.IntelligenceProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = p
}

// PutSearch inserts or replaces a saved search.
func (s *InMemory) PutSearch(sd *models.SearchDefinition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches[sd.ID] = sd
}

// PutCampaign inserts or replaces a campaign.
func (s *InMemory) PutCampaign(c *models.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns[c.ID] = c
}

// PutResearchNote attaches a research note to its workspace.
func (s *InMemory) PutResearchNote(n models.ResearchNote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[n.WorkspaceID] = append(s.notes[n.WorkspaceID], n)
}

// PutResearchTask attaches a research task to its workspace.
func (s *InMemory) PutResearchTask(t models.ResearchTask) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.WorkspaceID] = append(s.tasks[t.WorkspaceID], t)
}

// ListProfiles returns the workspace's profiles, most recently aggregated first.
func (s *InMemory) ListProfiles(_ context.Context, workspaceID int64) ([]*models.IntelligenceProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.IntelligenceProfile
	for _, p := range s.profiles {
		if p.WorkspaceID == workspaceID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AggregatedAt.After(out[j].AggregatedAt) })
	return out, nil
}

// ListSearches returns the workspace's saved searches.
func (s *InMemory) ListSearches(_ context.Context, workspaceID int64) ([]*models.SearchDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.SearchDefinition
	for _, sd := range s.searches {
		if sd.WorkspaceID == workspaceID {
			out = append(out, sd)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListCampaigns returns the workspace's campaigns.
func (s *InMemory) ListCampaigns(_ context.Context, workspaceID int64) ([]*models.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Campaign
	for _, c := range s.campaigns {
		if c.WorkspaceID == workspaceID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListResearchNotes returns the workspace's research notes, newest first.
func (s *InMemory) ListResearchNotes(_ context.Context, workspaceID int64) ([]models.ResearchNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]models.ResearchNote(nil), s.notes[workspaceID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ListResearchTasks returns the workspace's research tasks.
func (s *InMemory) ListResearchTasks(_ context.Context, workspaceID int64) ([]models.ResearchTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ResearchTask(nil), s.tasks[workspaceID]...), nil
}
