// Package store provides funnel persistence: applications, projects, and the
// execution pipeline of stages and items.
package store

import (
	"context"
	"sort"
	"sync"

	"talentdeck/internal/pipeline/models"
	"talentdeck/internal/sentinel"
	wsmodels "talentdeck/internal/workspace/models"
)

// ErrNotFound is returned when a record is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores funnel records in memory.
type InMemory struct {
	mu           sync.RWMutex
	applications map[int64]*models.Application
	projects     map[int64]*models.Project
	stages       map[int64]*models.PipelineStage
	items        map[int64]*models.PipelineItem
	nextStageID  int64
}

// NewInMemory creates an in-memory funnel store.
func NewInMemory() *InMemory {
	return &InMemory{
		applications: make(map[int64]*models.Application),
		projects:     make(map[int64]*models.Project),
		stages:       make(map[int64]*models.PipelineStage),
		items:        make(map[int64]*models.PipelineItem),
		nextStageID:  1,
	}
}

// PutApplication inserts or replaces an application, parsing its scope tag
// from metadata so aggregation code never re-derives it.
func (s *InMemory) PutApplication(a *models.Application) {
	a.Scope = wsmodels.ParseScopeTag(a.Metadata)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications[a.ID] = a
}

// PutProject inserts or replaces a project.
func (s *InMemory) PutProject(p *models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[p.ID] = p
}

// PutStage inserts or replaces a pipeline stage.
func (s *InMemory) PutStage(st *models.PipelineStage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.ID >= s.nextStageID {
		s.nextStageID = st.ID + 1
	}
	s.stages[st.ID] = st
}

// PutItem inserts or replaces a pipeline item.
func (s *InMemory) PutItem(it *models.PipelineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[it.ID] = it
}

// ListApplications returns every application, oldest submission first.
func (s *InMemory) ListApplications(_ context.Context) ([]*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Application, 0, len(s.applications))
	for _, a := range s.applications {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].SubmittedAt.Before(out[j].SubmittedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ListProjects returns the workspace's projects.
func (s *InMemory) ListProjects(_ context.Context, workspaceID int64) ([]*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Project
	for _, p := range s.projects {
		if p.WorkspaceID == workspaceID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListStages returns the workspace's stages ordered by position.
func (s *InMemory) ListStages(_ context.Context, workspaceID int64) ([]*models.PipelineStage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listStagesLocked(workspaceID), nil
}

func (s *InMemory) listStagesLocked(workspaceID int64) []*models.PipelineStage {
	var out []*models.PipelineStage
	for _, st := range s.stages {
		if st.WorkspaceID == workspaceID {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// SeedDefaults creates the fixed six-stage set for a workspace that has no
// stages yet. Idempotent: the stage count is re-checked under the write lock
// so concurrent first-time callers cannot double-seed.
func (s *InMemory) SeedDefaults(_ context.Context, workspaceID int64) ([]*models.PipelineStage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.listStagesLocked(workspaceID); len(existing) > 0 {
		return existing, nil
	}

	seeded := make([]*models.PipelineStage, 0, len(models.DefaultStages))
	for _, seed := range models.DefaultStages {
		st := &models.PipelineStage{
			ID:             s.nextStageID,
			WorkspaceID:    workspaceID,
			Name:           seed.Name,
			StageType:      seed.StageType,
			Position:       seed.Position,
			WinProbability: seed.WinProbability,
		}
		s.nextStageID++
		s.stages[st.ID] = st
		seeded = append(seeded, st)
	}
	return seeded, nil
}

// ListItems returns the workspace's pipeline items with all child records.
func (s *InMemory) ListItems(_ context.Context, workspaceID int64) ([]*models.PipelineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.PipelineItem
	for _, it := range s.items {
		if it.WorkspaceID == workspaceID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
