package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pipemodels "talentdeck/internal/pipeline/models"
)

func projectApp(id, projectID int64, status string, rate float64, now time.Time) *pipemodels.Application {
	a := app(id, status, 10, now)
	a.TargetType = pipemodels.TargetProject
	a.TargetID = projectID
	a.RateExpectation = ptr(rate)
	return a
}

func TestBuildMandatePortfolio(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("fill probability is placements over offers as a percentage", func(t *testing.T) {
		apps := []*pipemodels.Application{
			projectApp(1, 10, pipemodels.StatusPlaced, 900, now),
			projectApp(2, 10, pipemodels.StatusPlaced, 900, now),
			projectApp(3, 10, pipemodels.StatusOffer, 900, now),
			projectApp(4, 10, pipemodels.StatusOffer, 900, now),
			projectApp(5, 10, pipemodels.StatusOffer, 900, now),
			projectApp(6, 10, pipemodels.StatusOffer, 900, now),
		}
		projects := []*pipemodels.Project{
			{ID: 10, WorkspaceID: 1, Name: "Mandate", ClientName: "Client", Status: "active"},
		}

		portfolio := buildMandatePortfolio(apps, projects, now)
		require.Len(t, portfolio.Mandates, 1)
		assert.Equal(t, 50.0, portfolio.Mandates[0].FillProbability)
	})

	t.Run("fill probability caps at 100 with the offer fallback denominator", func(t *testing.T) {
		apps := []*pipemodels.Application{
			projectApp(1, 10, pipemodels.StatusPlaced, 900, now),
			projectApp(2, 10, pipemodels.StatusPlaced, 900, now),
		}
		projects := []*pipemodels.Project{
			{ID: 10, Name: "Mandate", ClientName: "Client", Status: "active"},
		}

		portfolio := buildMandatePortfolio(apps, projects, now)
		require.Len(t, portfolio.Mandates, 1)
		assert.Equal(t, 100.0, portfolio.Mandates[0].FillProbability)
	})

	t.Run("portfolio totals and status counts", func(t *testing.T) {
		apps := []*pipemodels.Application{
			projectApp(1, 10, pipemodels.StatusInterview, 800.50, now),
			projectApp(2, 10, pipemodels.StatusScreening, 700.25, now),
			projectApp(3, 11, pipemodels.StatusSourced, 900, now),
		}
		// Company-targeted applications never join a mandate.
		stray := app(4, pipemodels.StatusInterview, 5, now)
		stray.TargetType = pipemodels.TargetCompany
		apps = append(apps, stray)

		projects := []*pipemodels.Project{
			{ID: 10, Name: "Active", ClientName: "Client A", Status: "active"},
			{ID: 11, Name: "Paused", ClientName: "Client B", Status: pipemodels.ProjectPaused},
			{ID: 12, Name: "Closed", ClientName: "Client C", Status: pipemodels.ProjectClosed},
		}

		portfolio := buildMandatePortfolio(apps, projects, now)
		assert.Len(t, portfolio.Mandates, 3)
		assert.Equal(t, 2, portfolio.ActiveMandates, "closed mandates are not active")
		assert.Equal(t, 1, portfolio.PausedMandates)
		assert.Equal(t, 2400.75, portfolio.TotalPipelineValue)

		byID := map[int64]int{}
		for _, m := range portfolio.Mandates {
			byID[m.ProjectID] = m.OpenRoles
		}
		assert.Equal(t, 2, byID[10])
		assert.Equal(t, 0, byID[12], "mandate with no applications reports zero open roles")
	})

	t.Run("aging averages elapsed days since last activity", func(t *testing.T) {
		a := projectApp(1, 10, pipemodels.StatusInterview, 0, now)
		a.UpdatedAt = now.AddDate(0, 0, -4)
		a.SubmittedAt = now.AddDate(0, 0, -30)

		projects := []*pipemodels.Project{
			{ID: 10, Name: "Busy", Status: "active"},
			{ID: 11, Name: "Idle", Status: "active"},
		}

		portfolio := buildMandatePortfolio([]*pipemodels.Application{a}, projects, now)
		// One mandate 4 days stale, one with no activity counted as 0.
		assert.Equal(t, 2.0, portfolio.AvgMandateAgingDays)
	})
}
