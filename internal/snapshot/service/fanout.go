package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	engmodels "talentdeck/internal/engagement/models"
	msgmodels "talentdeck/internal/messaging/models"
	pipemodels "talentdeck/internal/pipeline/models"
	promodels "talentdeck/internal/prospect/models"
	"talentdeck/internal/platform/tracer"
	wsmodels "talentdeck/internal/workspace/models"
	dErrors "talentdeck/pkg/domain-errors"
)

// fetchResult holds repository results from the fan-out.
// Each goroutine writes to its own field, avoiding data races; results are
// assembled only after all goroutines complete.
type fetchResult struct {
	applications []*pipemodels.Application
	projects     []*pipemodels.Project
	stages       []*pipemodels.PipelineStage
	items        []*pipemodels.PipelineItem
	threads      []*msgmodels.MessageThread
	contacts     []msgmodels.ContactNote
	engagements  []*engmodels.ClientEngagement
	cases        []*engmodels.IssueResolutionCase
	profiles     []*promodels.IntelligenceProfile
	searches     []*promodels.SearchDefinition
	campaigns    []*promodels.Campaign
	notes        []promodels.ResearchNote
	tasks        []promodels.ResearchTask
	windows      []wsmodels.AvailabilityWindow
	wellbeing    []wsmodels.WellbeingLog
	articles     []wsmodels.KnowledgeArticle
	workspaces   []*wsmodels.Workspace
}

// fetchAll fans out every repository read that has no data dependency on
// another. Stage loading folds in the one write-path side effect: a workspace
// with zero stages gets the default set seeded before the build proceeds.
func (s *Service) fetchAll(ctx context.Context, workspaceID int64, since time.Time) (*fetchResult, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanSnapshotFanOut,
		tracer.Int64(tracer.AttrWorkspaceID, workspaceID),
	)
	var ferr error
	defer func() { span.End(ferr) }()

	g, ctx := errgroup.WithContext(ctx)
	var result fetchResult

	g.Go(func() error {
		apps, err := s.stores.Applications.ListApplications(ctx)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load applications")
		}
		result.applications = apps
		return nil
	})
	g.Go(func() error {
		projects, err := s.stores.Projects.ListProjects(ctx, workspaceID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load projects")
		}
		result.projects = projects
		return nil
	})
	g.Go(func() error {
		stages, err := s.loadOrSeedStages(ctx, workspaceID)
		if err != nil {
			return err
		}
		result.stages = stages
		return nil
	})
	g.Go(func() error {
		items, err := s.stores.Items.ListItems(ctx, workspaceID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load pipeline items")
		}
		result.items = items
		return nil
	})
	g.Go(func() error {
		threads, err := s.stores.Messaging.ListThreads(ctx)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load message threads")
		}
		result.threads = threads
		return nil
	})
	g.Go(func() error {
		contacts, err := s.stores.Messaging.ListContactNotes(ctx, workspaceID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load contact notes")
		}
		result.contacts = contacts
		return nil
	})
	g.Go(func() error {
		engagements, err := s.stores.Engagements.ListEngagements(ctx, workspaceID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load client engagements")
		}
		result.engagements = engagements
		return nil
	})
	g.Go(func() error {
		cases, err := s.stores.Engagements.ListCases(ctx, workspaceID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load issue cases")
		}
		result.cases = cases
		return nil
	})
	g.Go(func() error {
		profiles, err := s.stores.Prospects.ListProfiles(ctx, workspaceID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load prospect profiles")
		}
		result.profiles = profiles
		return nil
	})
	g.Go(func() error {
		searches, err := s.stores.Prospects.ListSearches(ctx, workspaceID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load saved searches")
		}
		result.searches = searches
		return nil
	})
	g.Go(func() error {
		campaigns, err := s.stores.Prospects.ListCampaigns(ctx, workspaceID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load campaigns")
		}
		result.campaigns = campaigns
		return nil
	})
	g.Go(func() error {
		notes, err := s.stores.Prospects.ListResearchNotes(ctx, workspaceID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load research notes")
		}
		result.notes = notes
		return nil
	})
	g.Go(func() error {
		tasks, err := s.stores.Prospects.ListResearchTasks(ctx, workspaceID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load research tasks")
		}
		result.tasks = tasks
		return nil
	})
	g.Go(func() error {
		windows, err := s.stores.Workspaces.ListAvailabilityWindows(ctx, workspaceID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load availability windows")
		}
		result.windows = windows
		return nil
	})
	g.Go(func() error {
		logs, err := s.stores.Workspaces.ListWellbeingLogs(ctx, workspaceID, since)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load wellbeing logs")
		}
		result.wellbeing = logs
		return nil
	})
	g.Go(func() error {
		articles, err := s.stores.Workspaces.ListKnowledgeArticles(ctx, workspaceID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load knowledge articles")
		}
		result.articles = articles
		return nil
	})
	g.Go(func() error {
		workspaces, err := s.stores.Workspaces.ListEligible(ctx)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list workspaces")
		}
		result.workspaces = workspaces
		return nil
	})

	if ferr = g.Wait(); ferr != nil {
		return nil, ferr
	}
	return &result, nil
}

// loadOrSeedStages returns the workspace's stages, seeding the default set
// exactly once for a workspace that has none. The store re-checks the count
// inside its critical section, so concurrent first-time callers are safe.
func (s *Service) loadOrSeedStages(ctx context.Context, workspaceID int64) ([]*pipemodels.PipelineStage, error) {
	stages, err := s.stores.Stages.ListStages(ctx, workspaceID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load pipeline stages")
	}
	if len(stages) > 0 {
		return stages, nil
	}

	_, span := s.tracer.Start(ctx, tracer.SpanStageSeed,
		tracer.Int64(tracer.AttrWorkspaceID, workspaceID),
	)
	stages, err = s.stores.Stages.SeedDefaults(ctx, workspaceID)
	span.End(err)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to seed default stages")
	}
	s.logger.InfoContext(ctx, "seeded default pipeline stages",
		"workspace_id", workspaceID,
		"stages", len(stages),
	)
	return stages, nil
}
