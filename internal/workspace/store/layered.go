package store

import (
	"context"
	"time"

	"talentdeck/internal/workspace/models"
)

// Layered serves workspace identity from sqlite while satellite records
// (members, availability windows, wellbeing logs, knowledge articles) stay in
// the in-memory store. Workspace rows found in sqlite get their members
// attached from the satellite store when present.
type Layered struct {
	core       *SQLite
	satellites *InMemory
}

// NewLayered combines a sqlite core with an in-memory satellite store.
func NewLayered(core *SQLite, satellites *InMemory) *Layered {
	return &Layered{core: core, satellites: satellites}
}

func (l *Layered) FindByID(ctx context.Context, id int64) (*models.Workspace, error) {
	w, err := l.core.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return l.attachMembers(ctx, w), nil
}

func (l *Layered) FindCurrent(ctx context.Context) (*models.Workspace, error) {
	w, err := l.core.FindCurrent(ctx)
	if err != nil {
		return nil, err
	}
	return l.attachMembers(ctx, w), nil
}

func (l *Layered) ListEligible(ctx context.Context) ([]*models.Workspace, error) {
	workspaces, err := l.core.ListEligible(ctx)
	if err != nil {
		return nil, err
	}
	for i, w := range workspaces {
		workspaces[i] = l.attachMembers(ctx, w)
	}
	return workspaces, nil
}

func (l *Layered) ListAvailabilityWindows(ctx context.Context, workspaceID int64) ([]models.AvailabilityWindow, error) {
	return l.satellites.ListAvailabilityWindows(ctx, workspaceID)
}

func (l *Layered) ListWellbeingLogs(ctx context.Context, workspaceID int64, since time.Time) ([]models.WellbeingLog, error) {
	return l.satellites.ListWellbeingLogs(ctx, workspaceID, since)
}

func (l *Layered) ListKnowledgeArticles(ctx context.Context, workspaceID int64) ([]models.KnowledgeArticle, error) {
	return l.satellites.ListKnowledgeArticles(ctx, workspaceID)
}

func (l *Layered) attachMembers(ctx context.Context, w *models.Workspace) *models.Workspace {
	if cached, err := l.satellites.FindByID(ctx, w.ID); err == nil {
		w.Members = cached.Members
	}
	return w
}
