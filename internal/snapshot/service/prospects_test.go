package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	promodels "talentdeck/internal/prospect/models"
)

func profile(id int64, name string, aggregatedAt time.Time) *promodels.IntelligenceProfile {
	return &promodels.IntelligenceProfile{
		ID:            id,
		CandidateID:   id + 200,
		CandidateName: name,
		AggregatedAt:  aggregatedAt,
	}
}

func TestBuildProspectOverview(t *testing.T) {
	p1 := profile(1, "Amara", time.Time{})
	p1.RelocationReadiness = "open"
	p1.CompensationTarget = ptr(95000.0)
	p1.Motivators = []string{"equity", "remote"}
	p1.ExclusivityConflict = true

	p2 := profile(2, "Bela", time.Time{})
	p2.RelocationReadiness = "open"
	p2.CompensationTarget = ptr(110000.505)
	p2.Motivators = []string{"equity", "leadership", ""}

	p3 := profile(3, "Chika", time.Time{})
	p3.RelocationReadiness = "settled"
	p3.Motivators = []string{"remote"}

	overview := buildProspectOverview([]*promodels.IntelligenceProfile{p1, p2, p3})

	assert.Equal(t, 3, overview.TotalProfiles)
	assert.Equal(t, map[string]int{"open": 2, "settled": 1}, overview.RelocationReadiness)
	require.NotNil(t, overview.AvgCompensationTarget)
	assert.Equal(t, 102500.25, *overview.AvgCompensationTarget)
	assert.Equal(t, 1, overview.ExclusivityConflicts)

	// Count descending, ties alphabetical; blanks ignored.
	require.Len(t, overview.TopMotivators, 3)
	assert.Equal(t, "equity", overview.TopMotivators[0].Motivator)
	assert.Equal(t, 2, overview.TopMotivators[0].Count)
	assert.Equal(t, "remote", overview.TopMotivators[1].Motivator)
	assert.Equal(t, "leadership", overview.TopMotivators[2].Motivator)
}

func TestBuildTalentCards(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	var profiles []*promodels.IntelligenceProfile
	for i := 0; i < 8; i++ {
		profiles = append(profiles, profile(int64(i+1), fmt.Sprintf("Prospect %d", i+1), now.AddDate(0, 0, -i)))
	}
	for i := 0; i < 6; i++ {
		profiles[0].Signals = append(profiles[0].Signals, promodels.IntelligenceSignal{
			ID:          int64(i + 1),
			Kind:        "job-change",
			IntentLevel: promodels.IntentMedium,
			OccurredAt:  now.AddDate(0, 0, -i),
		})
	}

	cards := buildTalentCards(profiles)
	require.Len(t, cards, 6, "cards cap at six profiles")
	assert.Equal(t, "Prospect 1", cards[0].CandidateName, "most recently aggregated first")

	require.Len(t, cards[0].Signals, 4, "signals cap at four per card")
	assert.Equal(t, int64(1), cards[0].Signals[0].ID, "newest signal first")
}

func TestBuildCockpit(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	search := &promodels.SearchDefinition{
		ID:       1,
		Name:     "CTO search",
		Industry: "fintech",
		Alerts: []promodels.SearchAlert{
			{NewMatches: 3, TriggeredAt: now.AddDate(0, 0, -5)},
			{NewMatches: 2, TriggeredAt: now.AddDate(0, 0, -1)},
		},
	}
	quiet := &promodels.SearchDefinition{ID: 2, Name: "VP Sales", Industry: "fintech"}

	noisy := profile(1, "Amara", now)
	for i := 0; i < 22; i++ {
		noisy.Signals = append(noisy.Signals, promodels.IntelligenceSignal{
			Kind:       "profile-update",
			OccurredAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}

	cockpit := buildCockpit([]*promodels.SearchDefinition{search, quiet}, []*promodels.IntelligenceProfile{noisy})

	require.Len(t, cockpit.Searches, 2)
	assert.Equal(t, 2, cockpit.Searches[0].AlertCount)
	assert.Equal(t, 5, cockpit.Searches[0].NewMatches)
	require.NotNil(t, cockpit.Searches[0].LastAlertAt)
	assert.Equal(t, now.AddDate(0, 0, -1), *cockpit.Searches[0].LastAlertAt)
	assert.Nil(t, cockpit.Searches[1].LastAlertAt)

	assert.Equal(t, map[string]int{"fintech": 2}, cockpit.IndustryCoverage)

	require.Len(t, cockpit.SignalStream, 20, "stream caps at twenty entries")
	assert.Equal(t, now, cockpit.SignalStream[0].OccurredAt, "stream sorts newest first")
}

func TestBuildCampaignStudio(t *testing.T) {
	campaign := &promodels.Campaign{
		ID:     1,
		Name:   "Q1 CTO outreach",
		Status: "running",
		Steps: []promodels.CampaignStep{
			{Position: 1, Channel: "email", Sent: 40, Responses: 9, ResponseRate: ptr(0.225), ConversionRate: ptr(0.05)},
			{Position: 2, Channel: "call", Sent: 25, Responses: 6, ResponseRate: ptr(24.0)},
		},
	}

	studio := buildCampaignStudio([]*promodels.Campaign{campaign})
	require.Len(t, studio.Campaigns, 1)
	steps := studio.Campaigns[0].Steps
	require.Len(t, steps, 2)

	// Fractions rescale to percentages, percentages pass through.
	require.NotNil(t, steps[0].ResponseRate)
	assert.Equal(t, 22.5, *steps[0].ResponseRate)
	require.NotNil(t, steps[0].ConversionRate)
	assert.Equal(t, 5.0, *steps[0].ConversionRate)
	require.NotNil(t, steps[1].ResponseRate)
	assert.Equal(t, 24.0, *steps[1].ResponseRate)
	assert.Nil(t, steps[1].ConversionRate)
}

func TestBuildResearchBoard(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	notes := []promodels.ResearchNote{
		{Author: "Dana", Restricted: true, CreatedAt: now.AddDate(0, 0, -1)},
		{Author: "Eli", RetentionReviewAt: ptr(now.AddDate(0, 0, -3)), CreatedAt: now.AddDate(0, 0, -40)},
		{Author: "Fay", RetentionReviewAt: ptr(now.AddDate(0, 0, 10)), CreatedAt: now.AddDate(0, 0, -2)},
	}
	tasks := []promodels.ResearchTask{
		{Title: "Map fintech CTOs", Status: "in_progress"},
		{Title: "Archive old shortlists", Status: "done"},
		{Title: "Verify references", Status: "open"},
		{Title: "Dropped", Status: "cancelled"},
	}

	board := buildResearchBoard(notes, tasks, now)

	assert.Equal(t, 3, board.NoteCount)
	assert.Equal(t, 1, board.RestrictedNotes)
	assert.Equal(t, 1, board.RetentionReviews, "future retention reviews are not due yet")
	assert.Equal(t, 4, board.TaskCount)
	assert.Equal(t, 2, board.OpenTasks)

	require.Len(t, board.ComplianceLog, 2)
	assert.Equal(t, "restricted-note", board.ComplianceLog[0].Kind, "compliance log sorts newest first")
	assert.Equal(t, "retention-review", board.ComplianceLog[1].Kind)
}
