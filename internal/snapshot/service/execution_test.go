package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pipemodels "talentdeck/internal/pipeline/models"
)

func item(id, stageID int64, score *float64, now time.Time) *pipemodels.PipelineItem {
	return &pipemodels.PipelineItem{
		ID:             id,
		StageID:        stageID,
		CandidateID:    id + 500,
		CandidateName:  fmt.Sprintf("Candidate %d", id),
		Status:         "active",
		Score:          score,
		StageEnteredAt: now.AddDate(0, 0, -4),
		UpdatedAt:      now.Add(-time.Duration(id) * time.Hour),
	}
}

func TestDominantRisk(t *testing.T) {
	assert.Equal(t, "", dominantRisk(map[string]int{}))
	assert.Equal(t, pipemodels.RiskMedium, dominantRisk(map[string]int{
		pipemodels.RiskLow:    1,
		pipemodels.RiskMedium: 3,
	}))
	// Ties resolve toward the higher severity.
	assert.Equal(t, pipemodels.RiskHigh, dominantRisk(map[string]int{
		pipemodels.RiskLow:    2,
		pipemodels.RiskMedium: 2,
		pipemodels.RiskHigh:   2,
	}))
}

func TestBuildStageColumn(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	stage := &pipemodels.PipelineStage{ID: 1, Name: "Interviewing", StageType: "interview", Position: 3, WinProbability: 55}

	t.Run("averages sentiment risk and stage age", func(t *testing.T) {
		warm := item(1, 1, ptr(80.0), now)
		warm.Metadata = map[string]any{"sentiment": "warm", "risk": "low"}
		warm.Notes = []pipemodels.ItemNote{{ID: 1, Body: "strong intro"}}
		guarded := item(2, 1, ptr(60.0), now)
		guarded.Metadata = map[string]any{"sentiment": "guarded", "risk": "high"}
		guarded.StageEnteredAt = now.AddDate(0, 0, -8)
		guarded.Attachments = []pipemodels.ItemAttachment{{ID: 1, FileName: "cv.pdf"}}

		column := buildStageColumn(stage, []*pipemodels.PipelineItem{warm, guarded}, now)

		require.NotNil(t, column.AvgScore)
		assert.Equal(t, 70.0, *column.AvgScore)
		require.NotNil(t, column.AvgDaysInStage)
		assert.Equal(t, 6.0, *column.AvgDaysInStage)
		// (0.6 + -0.3) / 2
		assert.Equal(t, 0.15, column.AvgSentiment)
		assert.Equal(t, 1, column.NotesCount)
		assert.Equal(t, 1, column.AttachmentsCount)
		assert.Equal(t, map[string]int{"low": 1, "high": 1}, column.RiskDistribution)
		assert.Equal(t, pipemodels.RiskHigh, column.DominantRisk)
	})

	t.Run("board orders by score with unscored items last and caps at eight", func(t *testing.T) {
		var stageItems []*pipemodels.PipelineItem
		stageItems = append(stageItems, item(100, 1, nil, now))
		for i := 0; i < 9; i++ {
			stageItems = append(stageItems, item(int64(i+1), 1, ptr(float64(50+i)), now))
		}

		column := buildStageColumn(stage, stageItems, now)
		require.Len(t, column.Items, 8)
		assert.Equal(t, int64(9), column.Items[0].ItemID)
		require.NotNil(t, column.Items[0].Score)
		assert.Equal(t, 58.0, *column.Items[0].Score)
		for _, boardItem := range column.Items {
			assert.NotEqual(t, int64(100), boardItem.ItemID, "unscored item drops off a full board")
		}
	})

	t.Run("empty column keeps nil averages", func(t *testing.T) {
		column := buildStageColumn(stage, nil, now)
		assert.Nil(t, column.AvgScore)
		assert.Nil(t, column.AvgDaysInStage)
		assert.Equal(t, 0.0, column.AvgSentiment)
		assert.Empty(t, column.Items)
	})
}

func TestBuildInterviewCoordination(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	it1 := item(1, 1, nil, now)
	it1.Interviews = []pipemodels.Interview{
		{ID: 1, Kind: "interview", ScheduledAt: now.AddDate(0, 0, 2), Timezone: "Europe/London", Status: pipemodels.InterviewScheduled},
		{ID: 2, Kind: "interview", ScheduledAt: now.AddDate(0, 0, -3), Timezone: "Europe/London", Status: pipemodels.InterviewCompleted},
		{ID: 3, Kind: "debrief", ScheduledAt: now.AddDate(0, 0, 1), Timezone: "America/New_York", Status: pipemodels.InterviewCancelled},
	}
	it2 := item(2, 1, nil, now)
	it2.Interviews = []pipemodels.Interview{
		{ID: 4, Kind: "presentation", ScheduledAt: now.AddDate(0, 0, -20), Timezone: "America/Chicago", Status: pipemodels.InterviewCompleted},
		{ID: 5, Kind: "interview", ScheduledAt: now.Add(2 * time.Hour), Timezone: "Europe/London", Status: pipemodels.InterviewScheduled},
	}

	coordination := buildInterviewCoordination([]*pipemodels.PipelineItem{it1, it2}, now)

	assert.Equal(t, 1, coordination.CompletedThisWeek, "completions outside the week window do not count")
	assert.Equal(t, map[string]int{"Europe/London": 3, "America/Chicago": 1}, coordination.Timezones,
		"cancelled interviews are skipped entirely")
	require.Len(t, coordination.Upcoming, 2)
	assert.Equal(t, int64(5), coordination.Upcoming[0].InterviewID, "upcoming sorts soonest first")
	assert.Equal(t, int64(1), coordination.Upcoming[1].InterviewID)
}

func TestBuildCandidateVault(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("recency order readiness index and alerts", func(t *testing.T) {
		fresh := item(1, 1, nil, now)
		fresh.Metadata = map[string]any{"readiness": 0.8, "wellbeing": "steady"}
		stale := item(2, 1, nil, now)
		stale.Metadata = map[string]any{"readiness": 0.4, "wellbeing": "overwhelmed"}

		vault := buildCandidateVault([]*pipemodels.PipelineItem{stale, fresh})

		require.Len(t, vault.Items, 2)
		assert.Equal(t, int64(1), vault.Items[0].ItemID, "most recently updated first")
		require.NotNil(t, vault.ReadinessIndex)
		assert.Equal(t, 0.6, *vault.ReadinessIndex)
		require.Len(t, vault.WellbeingAlerts, 1)
		assert.Equal(t, "overwhelmed", vault.WellbeingAlerts[0].Flag)
	})

	t.Run("items cap at twelve but alerts do not", func(t *testing.T) {
		var items []*pipemodels.PipelineItem
		for i := 0; i < 15; i++ {
			it := item(int64(i+1), 1, nil, now)
			it.Metadata = map[string]any{"wellbeing": "stressed"}
			items = append(items, it)
		}

		vault := buildCandidateVault(items)
		assert.Len(t, vault.Items, 12)
		assert.Len(t, vault.WellbeingAlerts, 15)
	})
}

func TestBuildPassOnExchange(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	rated := item(1, 1, nil, now)
	rated.EstimatedValue = ptr(20000.0)
	rated.PassOnShares = []pipemodels.PassOnShare{
		{ID: 1, TargetWorkspace: "beacon", Rate: ptr(12.5), SharedAt: now.AddDate(0, 0, -2), Status: "shared"},
	}
	flat := item(2, 1, nil, now)
	flat.PassOnShares = []pipemodels.PassOnShare{
		{ID: 2, TargetWorkspace: "harbor", FlatAmount: ptr(750.26), Status: "accepted"},
	}
	bare := item(3, 1, nil, now)
	bare.PassOnShares = []pipemodels.PassOnShare{
		{ID: 3, TargetWorkspace: "apex", Rate: ptr(10.0), Status: "shared"},
	}

	exchange := buildPassOnExchange([]*pipemodels.PipelineItem{rated, flat, bare})
	require.Len(t, exchange.Shares, 3)
	assert.Equal(t, 2500.0, exchange.Shares[0].ProjectedRevenue)
	assert.Equal(t, 750.26, exchange.Shares[1].ProjectedRevenue)
	assert.Equal(t, 0.0, exchange.Shares[2].ProjectedRevenue, "rate without estimated value projects nothing")
	assert.Equal(t, 3250.26, exchange.ProjectedRevenue)
}

func TestBuildSpotlight(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	stages := []*pipemodels.PipelineStage{
		{ID: 1, Name: "Screening"},
		{ID: 2, Name: "Interviewing"},
	}

	var items []*pipemodels.PipelineItem
	for i := 0; i < 7; i++ {
		items = append(items, item(int64(i+1), int64(i%2+1), ptr(float64(40+i*5)), now))
	}

	spotlight := buildSpotlight(stages, items)
	require.Len(t, spotlight, 5)
	require.NotNil(t, spotlight[0].Score)
	assert.Equal(t, 70.0, *spotlight[0].Score)
	assert.Equal(t, "Screening", spotlight[0].StageName)
	require.NotNil(t, spotlight[4].Score)
	assert.Equal(t, 50.0, *spotlight[4].Score)
}
