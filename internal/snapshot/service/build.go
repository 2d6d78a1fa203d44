package service

import (
	"context"
	"sort"
	"time"

	engmodels "talentdeck/internal/engagement/models"
	pipemodels "talentdeck/internal/pipeline/models"
	"talentdeck/internal/platform/tracer"
	"talentdeck/internal/snapshot/models"
	wsmodels "talentdeck/internal/workspace/models"
)

const fallbackReason = "No workspace-scoped applications found; showing network-wide activity instead."

// buildSnapshot runs one full snapshot computation: fan-out, scoping, and
// single-threaded composition over the fetched DTOs.
func (s *Service) buildSnapshot(ctx context.Context, workspace *wsmodels.Workspace, lookbackDays int) (*models.DashboardSnapshot, error) {
	start := s.now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanSnapshotBuild,
		tracer.Int64(tracer.AttrWorkspaceID, workspace.ID),
		tracer.Int64(tracer.AttrLookbackDays, int64(lookbackDays)),
	)
	var buildErr error
	defer func() { span.End(buildErr) }()

	since := start.AddDate(0, 0, -lookbackDays)
	data, err := s.fetchAll(ctx, workspace.ID, since)
	if err != nil {
		buildErr = err
		return nil, err
	}

	// Applications scope to the workspace only through explicit soft tags.
	// When none carry a matching tag the dashboard falls back to
	// network-wide data rather than rendering an empty report.
	scoped := make([]*pipemodels.Application, 0, len(data.applications))
	for _, a := range data.applications {
		if a.Scope.Scoped() && a.Scope.Matches(workspace.ID, workspace.Slug) {
			scoped = append(scoped, a)
		}
	}
	hasScopedData := len(scoped) > 0
	apps := scoped
	reason := ""
	if !hasScopedData {
		apps = data.applications
		reason = fallbackReason
		span.SetAttributes(tracer.Bool(tracer.AttrFallback, true))
		if s.metrics != nil {
			s.metrics.IncrementFallback()
		}
	}

	threads := scopeThreads(data.threads, workspace)

	pipelineSummary := buildPipelineSummary(apps, start)
	mandatePortfolio := buildMandatePortfolio(apps, data.projects, start)
	outreach := buildOutreach(threads, since)
	passOn := buildPassOnNetwork(apps)
	execution := buildExecution(data.stages, data.items, start)
	wellbeing := buildWellbeing(data.wellbeing, data.windows, apps, workspace, start)

	snapshot := &models.DashboardSnapshot{
		WorkspaceSummary:      buildWorkspaceSummary(workspace, pipelineSummary, passOn, wellbeing),
		PipelineSummary:       pipelineSummary,
		PipelineExecution:     execution,
		CandidateSpotlight:    buildSpotlight(data.stages, data.items),
		MandatePortfolio:      mandatePortfolio,
		OutreachPerformance:   outreach,
		PassOnNetwork:         passOn,
		ClientPartnerships:    buildPartnerships(data.engagements, data.cases, pipelineSummary, since, start),
		ActivityTimeline:      buildActivityTimeline(apps),
		Calendar:              buildCalendar(data.engagements, data.items, start),
		Insights:              buildInsights(pipelineSummary, mandatePortfolio, outreach, lookbackDays, start),
		CalendarOrchestration: buildCalendarOrchestration(data.windows, data.engagements, data.items, workspace, data.contacts, start),
		KnowledgeBase:         buildKnowledgeBase(data.articles),
		Wellbeing:             wellbeing,
		ProspectIntelligence:  buildProspectIntelligence(data.profiles, data.searches, data.campaigns, data.notes, data.tasks, start),
		Meta: models.Meta{
			GeneratedAt:            start,
			LookbackDays:           lookbackDays,
			HasWorkspaceScopedData: hasScopedData,
			FallbackReason:         reason,
			Workspaces:             workspaceOptions(data.workspaces),
		},
	}

	if s.metrics != nil {
		s.metrics.IncrementBuilds()
		s.metrics.ObserveBuild(start)
	}
	s.logger.InfoContext(ctx, "built dashboard snapshot",
		"workspace_id", workspace.ID,
		"lookback_days", lookbackDays,
		"applications", pipelineSummary.Totals.Applications,
		"workspace_scoped", hasScopedData,
	)
	return snapshot, nil
}

func workspaceOptions(workspaces []*wsmodels.Workspace) []models.WorkspaceOption {
	out := make([]models.WorkspaceOption, 0, len(workspaces))
	for _, w := range workspaces {
		out = append(out, models.WorkspaceOption{ID: w.ID, Name: w.Name, Slug: w.Slug})
	}
	return out
}

// buildWorkspaceSummary grades workspace health from funnel and wellbeing
// outcomes and awards achievement badges.
func buildWorkspaceSummary(
	workspace *wsmodels.Workspace,
	summary models.PipelineSummary,
	passOn models.PassOnNetwork,
	wellbeing models.Wellbeing,
) models.WorkspaceSummary {
	health := models.HealthQuiet
	switch {
	case summary.Totals.Placements > 0 && wellbeing.BurnoutRisk == models.BurnoutLow:
		health = models.HealthThriving
	case summary.Totals.Applications > 0:
		health = models.HealthSteady
	}

	badges := []string{}
	if summary.Totals.Placements > 0 {
		badges = append(badges, "first-placement")
	}
	if summary.Totals.Applications >= 10 {
		badges = append(badges, "pipeline-builder")
	}
	if passOn.TotalCandidates >= 3 {
		badges = append(badges, "network-connector")
	}

	return models.WorkspaceSummary{
		ID:              workspace.ID,
		Name:            workspace.Name,
		Slug:            workspace.Slug,
		Type:            workspace.Type,
		Timezone:        workspace.Timezone,
		DefaultCurrency: workspace.DefaultCurrency,
		ActiveMembers:   len(workspace.ActiveMembers()),
		Health:          health,
		Badges:          badges,
	}
}

func buildKnowledgeBase(articles []wsmodels.KnowledgeArticle) models.KnowledgeBase {
	kb := models.KnowledgeBase{
		Recent:     []models.ArticleRef{},
		Categories: map[string]int{},
	}
	for i, a := range articles {
		if i < 6 {
			kb.Recent = append(kb.Recent, models.ArticleRef{
				ID:        a.ID,
				Title:     a.Title,
				Category:  a.Category,
				UpdatedAt: a.UpdatedAt,
			})
		}
		kb.Categories[a.Category]++
	}
	return kb
}

// buildCalendar merges upcoming engagement schedule events and pipeline
// interviews into one chronological list.
func buildCalendar(engagements []*engmodels.ClientEngagement, items []*pipemodels.PipelineItem, now time.Time) models.Calendar {
	events := []models.CalendarEvent{}
	for _, e := range engagements {
		for _, ev := range e.ScheduleEvents {
			if ev.ScheduledAt.Before(now) {
				continue
			}
			events = append(events, models.CalendarEvent{
				Title:       ev.Title,
				EventType:   ev.EventType,
				ClientName:  e.ClientName,
				ScheduledAt: ev.ScheduledAt,
			})
		}
	}
	for _, it := range items {
		for _, iv := range it.Interviews {
			if iv.Status == pipemodels.InterviewCancelled || iv.ScheduledAt.Before(now) {
				continue
			}
			events = append(events, models.CalendarEvent{
				Title:       it.CandidateName + " interview",
				EventType:   "interview",
				ScheduledAt: iv.ScheduledAt,
			})
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ScheduledAt.Before(events[j].ScheduledAt) })
	return models.Calendar{UpcomingEvents: events}
}
