package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pipemodels "talentdeck/internal/pipeline/models"
	"talentdeck/internal/snapshot/models"
)

func summaryFixture() models.PipelineSummary {
	return models.PipelineSummary{
		Totals: models.PipelineTotals{Applications: 10, ActivePipeline: 6, Placements: 1},
		StageBreakdown: map[string]models.StageMetrics{
			pipemodels.BucketProspecting:  {Count: 3, Value: 30000},
			pipemodels.BucketScreening:    {Count: 2, Value: 20000},
			pipemodels.BucketInterviewing: {Count: 1, Value: 15000},
			pipemodels.BucketOffering:     {Count: 2, Value: 40000},
			pipemodels.BucketPlacement:    {Count: 1, Value: 25000},
			pipemodels.BucketClosed:       {Count: 1, Value: 0},
		},
		AgingBuckets: map[string]int{models.AgingStale: 0},
	}
}

func TestBuildInsights(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("targets scale with active mandates and lookback", func(t *testing.T) {
		mandates := models.MandatePortfolio{ActiveMandates: 3}
		outreach := models.OutreachPerformance{TotalOutbound: 20}

		insights := buildInsights(summaryFixture(), mandates, outreach, 30, now)

		analysis := insights.GapAnalysis
		assert.Equal(t, 130000.0, analysis.PipelineValue)
		assert.Equal(t, 450000.0, analysis.PipelineValueTarget)
		// 1 placement + round(2 offers * 0.65)
		assert.Equal(t, 2, analysis.ForecastedPlacements)
		assert.Equal(t, 3, analysis.PlacementTarget)
		// round(30/7*50) = 214
		assert.Equal(t, 214, analysis.ActivityTarget)
		assert.Equal(t, 20, analysis.Touchpoints)
	})

	t.Run("only metrics below target produce gaps", func(t *testing.T) {
		mandates := models.MandatePortfolio{ActiveMandates: 0}
		outreach := models.OutreachPerformance{TotalOutbound: 500}

		insights := buildInsights(summaryFixture(), mandates, outreach, 7, now)

		metrics := make([]string, 0, len(insights.Gaps))
		for _, g := range insights.Gaps {
			metrics = append(metrics, g.Metric)
		}
		// Forecast 2 >= placement target 1 and touchpoints 500 >= 50.
		assert.Equal(t, []string{"pipelineValue"}, metrics)
		require.Len(t, insights.RecommendedActions, 1)
		assert.Contains(t, insights.RecommendedActions[0], "Pipeline value is 20000 below target")
	})

	t.Run("value target never drops below current pipeline value", func(t *testing.T) {
		summary := summaryFixture()
		breakdown := summary.StageBreakdown
		metrics := breakdown[pipemodels.BucketOffering]
		metrics.Value = 400000
		breakdown[pipemodels.BucketOffering] = metrics

		insights := buildInsights(summary, models.MandatePortfolio{ActiveMandates: 1}, models.OutreachPerformance{}, 30, now)
		assert.Equal(t, 490000.0, insights.GapAnalysis.PipelineValue)
		assert.Equal(t, 490000.0, insights.GapAnalysis.PipelineValueTarget)
	})

	t.Run("activity target has a floor", func(t *testing.T) {
		insights := buildInsights(summaryFixture(), models.MandatePortfolio{}, models.OutreachPerformance{TotalOutbound: 45}, 5, now)
		assert.Equal(t, 40, insights.GapAnalysis.ActivityTarget)
		for _, g := range insights.Gaps {
			assert.NotEqual(t, "touchpoints", g.Metric)
		}
	})

	t.Run("stale candidates prompt a review action", func(t *testing.T) {
		summary := summaryFixture()
		summary.AgingBuckets[models.AgingStale] = 4

		insights := buildInsights(summary, models.MandatePortfolio{ActiveMandates: 1}, models.OutreachPerformance{}, 30, now)
		assert.Contains(t, insights.RecommendedActions, "4 candidates have been in the pipeline for over 30 days; review them for next steps or closure.")
	})

	t.Run("weekly review schedules seven days out", func(t *testing.T) {
		insights := buildInsights(summaryFixture(), models.MandatePortfolio{}, models.OutreachPerformance{}, 30, now)
		assert.Equal(t, now.AddDate(0, 0, 7), insights.WeeklyReview.NextReviewAt)
		assert.Equal(t, weeklyReviewTopics, insights.WeeklyReview.Topics)
	})
}
