package service

import (
	"fmt"
	"sort"
	"time"

	pipemodels "talentdeck/internal/pipeline/models"
	"talentdeck/internal/snapshot/models"
	"talentdeck/pkg/numeric"
)

// buildPipelineSummary computes the application funnel: stage bucketing,
// conversion rates, decision velocity, and aging buckets. Every application
// lands in exactly one of the six buckets.
func buildPipelineSummary(apps []*pipemodels.Application, now time.Time) models.PipelineSummary {
	breakdown := make(map[string]models.StageMetrics, len(pipemodels.BucketOrder))
	counts := make(map[string]int, len(pipemodels.BucketOrder))
	values := make(map[string]float64, len(pipemodels.BucketOrder))
	for _, bucket := range pipemodels.BucketOrder {
		counts[bucket] = 0
		values[bucket] = 0
	}

	total := len(apps)
	activePipeline := 0
	for _, a := range apps {
		bucket := a.Bucket()
		counts[bucket]++
		if a.RateExpectation != nil {
			values[bucket] += *a.RateExpectation
		}
		if !a.IsTerminal() {
			activePipeline++
		}
	}

	for _, bucket := range pipemodels.BucketOrder {
		percentage := 0.0
		if total > 0 {
			percentage = numeric.Round(float64(counts[bucket])/float64(total)*100, 1)
		}
		breakdown[bucket] = models.StageMetrics{
			Count:      counts[bucket],
			Value:      numeric.Round(values[bucket], 2),
			Percentage: percentage,
		}
	}

	return models.PipelineSummary{
		Totals: models.PipelineTotals{
			Applications:   total,
			ActivePipeline: activePipeline,
			Placements:     counts[pipemodels.BucketPlacement],
		},
		StageBreakdown:   breakdown,
		ConversionFunnel: buildConversionFunnel(counts, total),
		VelocityDays:     computeVelocity(apps),
		AgingBuckets:     buildAgingBuckets(apps, now),
	}
}

// buildConversionFunnel derives stage-to-stage rates as percentages with the
// fixed fallback denominators: an empty prospecting bucket falls back to the
// total application count, downstream denominators fall back to 1.
func buildConversionFunnel(counts map[string]int, total int) models.ConversionFunnel {
	screeningDenom := counts[pipemodels.BucketProspecting]
	if screeningDenom == 0 {
		screeningDenom = total
	}
	screeningRate := 0.0
	if screeningDenom > 0 {
		screeningRate = float64(counts[pipemodels.BucketScreening]) / float64(screeningDenom) * 100
	}
	return models.ConversionFunnel{
		ScreeningRate: numeric.Round(screeningRate, 1),
		InterviewRate: numeric.Round(ratioOrOne(counts[pipemodels.BucketInterviewing], counts[pipemodels.BucketScreening])*100, 1),
		OfferRate:     numeric.Round(ratioOrOne(counts[pipemodels.BucketOffering], counts[pipemodels.BucketInterviewing])*100, 1),
		PlacementRate: numeric.Round(ratioOrOne(counts[pipemodels.BucketPlacement], counts[pipemodels.BucketOffering])*100, 1),
	}
}

func ratioOrOne(numerator, denominator int) float64 {
	if denominator == 0 {
		denominator = 1
	}
	return float64(numerator) / float64(denominator)
}

// computeVelocity averages decision turnaround in days over applications that
// have both timestamps with a non-negative turnaround. Nil when no samples.
func computeVelocity(apps []*pipemodels.Application) *float64 {
	var samples []float64
	for _, a := range apps {
		if a.DecisionAt == nil || a.SubmittedAt.IsZero() {
			continue
		}
		days := a.DecisionAt.Sub(a.SubmittedAt).Hours() / 24
		if days < 0 {
			continue
		}
		samples = append(samples, days)
	}
	mean, ok := numeric.Mean(samples)
	if !ok {
		return nil
	}
	rounded := numeric.Round(mean, 1)
	return &rounded
}

// buildAgingBuckets partitions non-terminal applications with a valid
// submission time by elapsed days.
func buildAgingBuckets(apps []*pipemodels.Application, now time.Time) map[string]int {
	buckets := map[string]int{
		models.AgingWeek:      0,
		models.AgingFortnight: 0,
		models.AgingMonth:     0,
		models.AgingStale:     0,
	}
	for _, a := range apps {
		if a.IsTerminal() || a.SubmittedAt.IsZero() {
			continue
		}
		days := now.Sub(a.SubmittedAt).Hours() / 24
		switch {
		case days <= 7:
			buckets[models.AgingWeek]++
		case days <= 14:
			buckets[models.AgingFortnight]++
		case days <= 30:
			buckets[models.AgingMonth]++
		default:
			buckets[models.AgingStale]++
		}
	}
	return buckets
}

// buildActivityTimeline merges application status updates with review
// decisions, newest first, capped at 15 entries.
func buildActivityTimeline(apps []*pipemodels.Application) []models.ActivityEvent {
	events := []models.ActivityEvent{}
	for _, a := range apps {
		if !a.UpdatedAt.IsZero() {
			events = append(events, models.ActivityEvent{
				Type:          models.ActivityStatusUpdate,
				ApplicantName: a.ApplicantName,
				Detail:        fmt.Sprintf("status changed to %s", a.Status),
				OccurredAt:    a.UpdatedAt,
			})
		}
		for _, r := range a.Reviews {
			if r.DecidedAt == nil {
				continue
			}
			events = append(events, models.ActivityEvent{
				Type:          models.ActivityReviewDecision,
				ApplicantName: a.ApplicantName,
				Detail:        fmt.Sprintf("%s review: %s", r.Stage, r.Decision),
				OccurredAt:    *r.DecidedAt,
			})
		}
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].OccurredAt.After(events[j].OccurredAt) })
	if len(events) > 15 {
		events = events[:15]
	}
	return events
}
