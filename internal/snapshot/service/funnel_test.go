package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pipemodels "talentdeck/internal/pipeline/models"
	"talentdeck/internal/snapshot/models"
)

func ptr[T any](v T) *T { return &v }

func app(id int64, status string, submittedDaysAgo int, now time.Time) *pipemodels.Application {
	return &pipemodels.Application{
		ID:            id,
		ApplicantID:   id + 1000,
		ApplicantName: "Applicant",
		Status:        status,
		SubmittedAt:   now.AddDate(0, 0, -submittedDaysAgo),
		UpdatedAt:     now.AddDate(0, 0, -1),
	}
}

func TestBuildPipelineSummary(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("bucket counts sum to total applications", func(t *testing.T) {
		apps := []*pipemodels.Application{
			app(1, pipemodels.StatusSourced, 3, now),
			app(2, pipemodels.StatusScreening, 10, now),
			app(3, pipemodels.StatusInterview, 20, now),
			app(4, pipemodels.StatusOffer, 40, now),
			app(5, pipemodels.StatusPlaced, 50, now),
			app(6, pipemodels.StatusRejected, 60, now),
			app(7, "mystery-status", 2, now),
		}

		summary := buildPipelineSummary(apps, now)

		assert.Equal(t, 7, summary.Totals.Applications)
		sum := 0
		for _, bucket := range pipemodels.BucketOrder {
			sum += summary.StageBreakdown[bucket].Count
		}
		assert.Equal(t, summary.Totals.Applications, sum)
		assert.Equal(t, 2, summary.StageBreakdown[pipemodels.BucketProspecting].Count,
			"unknown statuses default to prospecting")
		assert.Equal(t, 1, summary.Totals.Placements)
		assert.Equal(t, 5, summary.Totals.ActivePipeline)
	})

	t.Run("stage values sum rate expectations", func(t *testing.T) {
		a := app(1, pipemodels.StatusInterview, 5, now)
		a.RateExpectation = ptr(800.56)
		b := app(2, pipemodels.StatusInterview, 5, now)
		b.RateExpectation = ptr(700.0)

		summary := buildPipelineSummary([]*pipemodels.Application{a, b}, now)
		assert.Equal(t, 1500.56, summary.StageBreakdown[pipemodels.BucketInterviewing].Value)
		assert.Equal(t, 100.0, summary.StageBreakdown[pipemodels.BucketInterviewing].Percentage)
	})

	t.Run("empty dataset yields zeroed buckets", func(t *testing.T) {
		summary := buildPipelineSummary(nil, now)
		assert.Equal(t, 0, summary.Totals.Applications)
		for _, bucket := range pipemodels.BucketOrder {
			metrics, ok := summary.StageBreakdown[bucket]
			require.True(t, ok, "every bucket must be present")
			assert.Equal(t, 0, metrics.Count)
			assert.Equal(t, 0.0, metrics.Percentage)
		}
		assert.Nil(t, summary.VelocityDays)
	})
}

func TestBuildAgingBuckets(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	apps := []*pipemodels.Application{
		app(1, pipemodels.StatusSourced, 2, now),
		app(2, pipemodels.StatusScreening, 10, now),
		app(3, pipemodels.StatusInterview, 20, now),
		app(4, pipemodels.StatusOffer, 45, now),
		app(5, pipemodels.StatusPlaced, 90, now), // terminal, excluded
	}
	apps = append(apps, &pipemodels.Application{ID: 6, Status: pipemodels.StatusSourced}) // no submittedAt

	buckets := buildAgingBuckets(apps, now)

	assert.Equal(t, 1, buckets[models.AgingWeek])
	assert.Equal(t, 1, buckets[models.AgingFortnight])
	assert.Equal(t, 1, buckets[models.AgingMonth])
	assert.Equal(t, 1, buckets[models.AgingStale])

	counted := 0
	for _, n := range buckets {
		counted += n
	}
	assert.Equal(t, 4, counted, "each non-terminal application with a submission time lands in exactly one bucket")
}

func TestBuildConversionFunnel(t *testing.T) {
	t.Run("screening falls back to total when prospecting is empty", func(t *testing.T) {
		counts := map[string]int{
			pipemodels.BucketProspecting:  0,
			pipemodels.BucketScreening:    2,
			pipemodels.BucketInterviewing: 1,
			pipemodels.BucketOffering:     0,
			pipemodels.BucketPlacement:    0,
		}
		funnel := buildConversionFunnel(counts, 4)
		assert.Equal(t, 50.0, funnel.ScreeningRate)
		assert.Equal(t, 50.0, funnel.InterviewRate)
	})

	t.Run("downstream denominators fall back to one", func(t *testing.T) {
		counts := map[string]int{
			pipemodels.BucketScreening: 0,
			pipemodels.BucketPlacement: 2,
		}
		funnel := buildConversionFunnel(counts, 2)
		assert.Equal(t, 200.0, funnel.PlacementRate)
	})
}

func TestComputeVelocity(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	fast := app(1, pipemodels.StatusPlaced, 10, now)
	fast.DecisionAt = ptr(fast.SubmittedAt.AddDate(0, 0, 4))
	slow := app(2, pipemodels.StatusRejected, 20, now)
	slow.DecisionAt = ptr(slow.SubmittedAt.AddDate(0, 0, 8))
	backwards := app(3, pipemodels.StatusRejected, 5, now)
	backwards.DecisionAt = ptr(backwards.SubmittedAt.AddDate(0, 0, -1))
	pending := app(4, pipemodels.StatusInterview, 5, now)

	velocity := computeVelocity([]*pipemodels.Application{fast, slow, backwards, pending})
	require.NotNil(t, velocity)
	assert.Equal(t, 6.0, *velocity)

	assert.Nil(t, computeVelocity([]*pipemodels.Application{pending}))
}

func TestBuildActivityTimeline(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	a := app(1, pipemodels.StatusInterview, 10, now)
	a.Reviews = []pipemodels.ApplicationReview{
		{ID: 1, ApplicationID: 1, Stage: "screening", Decision: "advance", DecidedAt: ptr(now.AddDate(0, 0, -5))},
		{ID: 2, ApplicationID: 1, Stage: "interview", Decision: "hold"},
	}

	events := buildActivityTimeline([]*pipemodels.Application{a})
	require.Len(t, events, 2, "reviews without a decision timestamp are skipped")
	assert.Equal(t, models.ActivityStatusUpdate, events[0].Type)
	assert.Contains(t, events[0].Detail, pipemodels.StatusInterview)
	assert.Equal(t, models.ActivityReviewDecision, events[1].Type)
	assert.Equal(t, "screening review: advance", events[1].Detail)
	assert.True(t, events[0].OccurredAt.After(events[1].OccurredAt), "newest first")

	var many []*pipemodels.Application
	for i := int64(0); i < 20; i++ {
		many = append(many, app(i, pipemodels.StatusSourced, int(i), now))
	}
	assert.Len(t, buildActivityTimeline(many), 15)
}
