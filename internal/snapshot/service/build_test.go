package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engmodels "talentdeck/internal/engagement/models"
	pipemodels "talentdeck/internal/pipeline/models"
	"talentdeck/internal/snapshot/models"
	wsmodels "talentdeck/internal/workspace/models"
)

func TestBuildWorkspaceSummary(t *testing.T) {
	ws := &wsmodels.Workspace{ID: 1, Name: "Skyline Search", Slug: "skyline-search", Type: wsmodels.TypeAgency}

	t.Run("placements with low burnout grade thriving", func(t *testing.T) {
		summary := buildWorkspaceSummary(ws,
			models.PipelineSummary{Totals: models.PipelineTotals{Applications: 5, Placements: 1}},
			models.PassOnNetwork{},
			models.Wellbeing{BurnoutRisk: models.BurnoutLow},
		)
		assert.Equal(t, models.HealthThriving, summary.Health)
		assert.Contains(t, summary.Badges, "first-placement")
	})

	t.Run("placements under burnout pressure grade steady", func(t *testing.T) {
		summary := buildWorkspaceSummary(ws,
			models.PipelineSummary{Totals: models.PipelineTotals{Applications: 5, Placements: 1}},
			models.PassOnNetwork{},
			models.Wellbeing{BurnoutRisk: models.BurnoutHigh},
		)
		assert.Equal(t, models.HealthSteady, summary.Health)
	})

	t.Run("empty funnel grades quiet", func(t *testing.T) {
		summary := buildWorkspaceSummary(ws, models.PipelineSummary{}, models.PassOnNetwork{}, models.Wellbeing{})
		assert.Equal(t, models.HealthQuiet, summary.Health)
		assert.Empty(t, summary.Badges)
	})

	t.Run("badges reward volume and referrals", func(t *testing.T) {
		summary := buildWorkspaceSummary(ws,
			models.PipelineSummary{Totals: models.PipelineTotals{Applications: 12}},
			models.PassOnNetwork{TotalCandidates: 3},
			models.Wellbeing{},
		)
		assert.ElementsMatch(t, []string{"pipeline-builder", "network-connector"}, summary.Badges)
	})
}

func TestBuildKnowledgeBase(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	var articles []wsmodels.KnowledgeArticle
	for i := 0; i < 8; i++ {
		category := "playbooks"
		if i%2 == 0 {
			category = "templates"
		}
		articles = append(articles, wsmodels.KnowledgeArticle{
			ID:        int64(i + 1),
			Title:     fmt.Sprintf("Article %d", i+1),
			Category:  category,
			UpdatedAt: now.AddDate(0, 0, -i),
		})
	}

	kb := buildKnowledgeBase(articles)
	assert.Len(t, kb.Recent, 6, "recent list caps at six")
	assert.Equal(t, map[string]int{"templates": 4, "playbooks": 4}, kb.Categories, "categories count all articles")
}

func TestBuildCalendar(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	engagements := []*engmodels.ClientEngagement{
		{ClientName: "Northwind", ScheduleEvents: []engmodels.ScheduleEvent{
			{Title: "QBR", EventType: "review", ScheduledAt: now.AddDate(0, 0, 3)},
			{Title: "Kickoff", EventType: "kickoff", ScheduledAt: now.AddDate(0, 0, -1)},
		}},
	}
	it := &pipemodels.PipelineItem{
		CandidateName: "Amara",
		Interviews: []pipemodels.Interview{
			{Kind: "technical", ScheduledAt: now.AddDate(0, 0, 1), Status: pipemodels.InterviewScheduled},
			{Kind: "culture", ScheduledAt: now.AddDate(0, 0, 2), Status: pipemodels.InterviewCancelled},
		},
	}

	calendar := buildCalendar(engagements, []*pipemodels.PipelineItem{it}, now)
	require.Len(t, calendar.UpcomingEvents, 2, "past and cancelled events drop out")
	assert.Equal(t, "Amara interview", calendar.UpcomingEvents[0].Title)
	assert.Equal(t, "QBR", calendar.UpcomingEvents[1].Title)
}
