package service

import (
	"context"
	"time"

	engmodels "talentdeck/internal/engagement/models"
	msgmodels "talentdeck/internal/messaging/models"
	pipemodels "talentdeck/internal/pipeline/models"
	promodels "talentdeck/internal/prospect/models"
	wsmodels "talentdeck/internal/workspace/models"
)

// WorkspaceStore exposes workspace lookups and satellite records.
type WorkspaceStore interface {
	FindByID(ctx context.Context, id int64) (*wsmodels.Workspace, error)
	FindCurrent(ctx context.Context) (*wsmodels.Workspace, error)
	ListEligible(ctx context.Context) ([]*wsmodels.Workspace, error)
	ListAvailabilityWindows(ctx context.Context, workspaceID int64) ([]wsmodels.AvailabilityWindow, error)
	ListWellbeingLogs(ctx context.Context, workspaceID int64, since time.Time) ([]wsmodels.WellbeingLog, error)
	ListKnowledgeArticles(ctx context.Context, workspaceID int64) ([]wsmodels.KnowledgeArticle, error)
}

// ApplicationStore lists applications with reviews and parsed scope tags.
type ApplicationStore interface {
	ListApplications(ctx context.Context) ([]*pipemodels.Application, error)
}

// ProjectStore lists a workspace's client projects.
type ProjectStore interface {
	ListProjects(ctx context.Context, workspaceID int64) ([]*pipemodels.Project, error)
}

// StageStore lists pipeline stages and seeds the default set on first access.
type StageStore interface {
	ListStages(ctx context.Context, workspaceID int64) ([]*pipemodels.PipelineStage, error)
	SeedDefaults(ctx context.Context, workspaceID int64) ([]*pipemodels.PipelineStage, error)
}

// ItemStore lists fully populated pipeline items.
type ItemStore interface {
	ListItems(ctx context.Context, workspaceID int64) ([]*pipemodels.PipelineItem, error)
}

// MessagingStore lists outreach threads and client contact notes.
type MessagingStore interface {
	ListThreads(ctx context.Context) ([]*msgmodels.MessageThread, error)
	ListContactNotes(ctx context.Context, workspaceID int64) ([]msgmodels.ContactNote, error)
}

// EngagementStore lists client engagements and issue-resolution cases.
type EngagementStore interface {
	ListEngagements(ctx context.Context, workspaceID int64) ([]*engmodels.ClientEngagement, error)
	ListCases(ctx context.Context, workspaceID int64) ([]*engmodels.IssueResolutionCase, error)
}

// ProspectStore lists prospecting records.
type ProspectStore interface {
	ListProfiles(ctx context.Context, workspaceID int64) ([]*promodels.IntelligenceProfile, error)
	ListSearches(ctx context.Context, workspaceID int64) ([]*promodels.SearchDefinition, error)
	ListCampaigns(ctx context.Context, workspaceID int64) ([]*promodels.Campaign, error)
	ListResearchNotes(ctx context.Context, workspaceID int64) ([]promodels.ResearchNote, error)
	ListResearchTasks(ctx context.Context, workspaceID int64) ([]promodels.ResearchTask, error)
}

// Stores bundles every repository the snapshot build fans out to.
type Stores struct {
	Workspaces   WorkspaceStore
	Applications ApplicationStore
	Projects     ProjectStore
	Stages       StageStore
	Items        ItemStore
	Messaging    MessagingStore
	Engagements  EngagementStore
	Prospects    ProspectStore
}
