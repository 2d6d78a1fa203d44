package service

import (
	"fmt"
	"math"
	"time"

	pipemodels "talentdeck/internal/pipeline/models"
	"talentdeck/internal/snapshot/models"
	"talentdeck/pkg/numeric"
)

const (
	mandateValueTarget = 150000.0
	offerCloseRate     = 0.65
	weeklyTouchTarget  = 50
	minActivityTarget  = 40
)

var weeklyReviewTopics = []string{
	"Review stalled candidates and unblock next steps",
	"Reconcile mandate priorities against client expectations",
	"Plan next week's outreach and follow-up cadence",
}

// buildInsights computes targets from the funnel, mandate, and outreach
// sections, reports the gaps below target, and proposes actions.
func buildInsights(
	pipeline models.PipelineSummary,
	mandates models.MandatePortfolio,
	outreach models.OutreachPerformance,
	lookbackDays int,
	now time.Time,
) models.Insights {
	pipelineValue := 0.0
	for _, metrics := range pipeline.StageBreakdown {
		pipelineValue += metrics.Value
	}
	pipelineValue = numeric.Round(pipelineValue, 2)

	valueTarget := math.Max(mandateValueTarget, float64(mandates.ActiveMandates)*mandateValueTarget)
	valueTarget = math.Max(valueTarget, pipelineValue)

	offers := pipeline.StageBreakdown[pipemodels.BucketOffering].Count
	forecast := pipeline.Totals.Placements + int(math.Round(float64(offers)*offerCloseRate))

	placementTarget := mandates.ActiveMandates
	if ceil := int(math.Ceil(float64(mandates.ActiveMandates) * 0.75)); ceil > placementTarget {
		placementTarget = ceil
	}
	if placementTarget < 1 {
		placementTarget = 1
	}

	activityTarget := int(math.Round(float64(lookbackDays) / 7 * weeklyTouchTarget))
	if activityTarget < minActivityTarget {
		activityTarget = minActivityTarget
	}
	touchpoints := outreach.TotalOutbound

	analysis := models.GapAnalysis{
		PipelineValue:        pipelineValue,
		PipelineValueTarget:  valueTarget,
		Placements:           pipeline.Totals.Placements,
		ForecastedPlacements: forecast,
		PlacementTarget:      placementTarget,
		Touchpoints:          touchpoints,
		ActivityTarget:       activityTarget,
	}

	gaps := []models.Gap{}
	if pipelineValue < valueTarget {
		gaps = append(gaps, models.Gap{Metric: "pipelineValue", Current: pipelineValue, Target: valueTarget})
	}
	if forecast < placementTarget {
		gaps = append(gaps, models.Gap{Metric: "forecastedPlacements", Current: float64(forecast), Target: float64(placementTarget)})
	}
	if touchpoints < activityTarget {
		gaps = append(gaps, models.Gap{Metric: "touchpoints", Current: float64(touchpoints), Target: float64(activityTarget)})
	}

	actions := []string{}
	if pipelineValue < valueTarget {
		actions = append(actions, fmt.Sprintf(
			"Pipeline value is %.0f below target; prioritize sourcing for your %d active mandates.",
			valueTarget-pipelineValue, mandates.ActiveMandates))
	}
	if forecast < placementTarget {
		actions = append(actions, fmt.Sprintf(
			"Forecast of %d placements trails the target of %d; advance interviewing candidates toward offer.",
			forecast, placementTarget))
	}
	if touchpoints < activityTarget {
		actions = append(actions, fmt.Sprintf(
			"Only %d outbound touchpoints in the last %d days against a target of %d; schedule follow-ups.",
			touchpoints, lookbackDays, activityTarget))
	}
	if stale := pipeline.AgingBuckets[models.AgingStale]; stale > 0 {
		actions = append(actions, fmt.Sprintf(
			"%d candidates have been in the pipeline for over 30 days; review them for next steps or closure.", stale))
	}

	return models.Insights{
		GapAnalysis:        analysis,
		Gaps:               gaps,
		RecommendedActions: actions,
		WeeklyReview: models.WeeklyReview{
			Topics:       weeklyReviewTopics,
			NextReviewAt: now.AddDate(0, 0, 7),
		},
	}
}
