package service

import (
	"time"

	pipemodels "talentdeck/internal/pipeline/models"
	"talentdeck/internal/snapshot/models"
	"talentdeck/pkg/numeric"
)

// buildMandatePortfolio joins project-targeted applications onto loaded
// projects and derives per-mandate funnel standing plus portfolio totals.
func buildMandatePortfolio(apps []*pipemodels.Application, projects []*pipemodels.Project, now time.Time) models.MandatePortfolio {
	byProject := make(map[int64][]*pipemodels.Application)
	for _, a := range apps {
		if a.TargetType != pipemodels.TargetProject {
			continue
		}
		byProject[a.TargetID] = append(byProject[a.TargetID], a)
	}

	portfolio := models.MandatePortfolio{Mandates: []models.MandateSummary{}}
	var agingSamples []float64

	for _, p := range projects {
		projectApps := byProject[p.ID]

		stageCounts := make(map[string]int, len(pipemodels.BucketOrder))
		for _, bucket := range pipemodels.BucketOrder {
			stageCounts[bucket] = 0
		}
		openRoles := 0
		value := 0.0
		var lastActivity *time.Time
		for _, a := range projectApps {
			stageCounts[a.Bucket()]++
			if !a.IsTerminal() {
				openRoles++
			}
			if a.RateExpectation != nil {
				value += *a.RateExpectation
			}
			activity := a.LastActivityAt()
			if lastActivity == nil || activity.After(*lastActivity) {
				lastActivity = &activity
			}
		}

		placements := stageCounts[pipemodels.BucketPlacement]
		offers := stageCounts[pipemodels.BucketOffering]
		if offers == 0 {
			offers = 1
		}
		fillProbability := numeric.Clamp(float64(placements)/float64(offers), 0, 1) * 100

		portfolio.Mandates = append(portfolio.Mandates, models.MandateSummary{
			ProjectID:       p.ID,
			Name:            p.Name,
			ClientName:      p.ClientName,
			Status:          p.Status,
			StageCounts:     stageCounts,
			OpenRoles:       openRoles,
			Value:           numeric.Round(value, 2),
			LastActivityAt:  lastActivity,
			FillProbability: numeric.Round(fillProbability, 1),
		})

		if p.Status != pipemodels.ProjectArchived && p.Status != pipemodels.ProjectClosed {
			portfolio.ActiveMandates++
		}
		if p.Status == pipemodels.ProjectPaused {
			portfolio.PausedMandates++
		}
		portfolio.TotalPipelineValue += value
		if lastActivity != nil {
			agingSamples = append(agingSamples, now.Sub(*lastActivity).Hours()/24)
		} else {
			agingSamples = append(agingSamples, 0)
		}
	}

	portfolio.TotalPipelineValue = numeric.Round(portfolio.TotalPipelineValue, 2)
	if mean, ok := numeric.Mean(agingSamples); ok {
		portfolio.AvgMandateAgingDays = numeric.Round(mean, 1)
	}
	return portfolio
}
