package service

import (
	"math"
	"time"

	pipemodels "talentdeck/internal/pipeline/models"
	"talentdeck/internal/snapshot/models"
	wsmodels "talentdeck/internal/workspace/models"
	"talentdeck/pkg/numeric"
)

var reflectionPrompts = []string{
	"Which candidate conversation energized you most this week?",
	"What is one commitment you can drop or delegate next week?",
	"When did you last take a full day away from the pipeline?",
}

// buildWellbeing scores burnout risk from self-reported logs, current
// workload, and scheduled downtime.
func buildWellbeing(
	logs []wsmodels.WellbeingLog,
	windows []wsmodels.AvailabilityWindow,
	apps []*pipemodels.Application,
	workspace *wsmodels.Workspace,
	now time.Time,
) models.Wellbeing {
	wellbeing := models.Wellbeing{
		Reminders:         []string{},
		ReflectionPrompts: reflectionPrompts,
	}

	var energy, stress []float64
	var latest *wsmodels.WellbeingLog
	for i := range logs {
		log := &logs[i]
		energy = append(energy, log.EnergyLevel)
		stress = append(stress, log.StressLevel)
		if latest == nil || log.LoggedAt.After(latest.LoggedAt) {
			latest = log
		}
	}
	if mean, ok := numeric.Mean(energy); ok {
		avg := numeric.Round(mean, 1)
		wellbeing.AvgEnergy = &avg
	}
	if mean, ok := numeric.Mean(stress); ok {
		avg := numeric.Round(mean, 1)
		wellbeing.AvgStress = &avg
	}

	switch {
	case latest != nil && latest.Score != nil:
		score := *latest.Score
		wellbeing.Score = &score
	case latest != nil:
		score := numeric.Clamp(math.Round(*wellbeing.AvgEnergy*10-*wellbeing.AvgStress*6+55), 0, 100)
		wellbeing.Score = &score
	}

	openLoad := 0
	for _, a := range apps {
		if !a.IsTerminal() {
			openLoad++
		}
	}
	members := len(workspace.ActiveMembers())
	if members < 1 {
		members = 1
	}
	wellbeing.WorkloadPerMember = numeric.Round(float64(openLoad)/float64(members), 1)

	for _, w := range windows {
		if w.WindowType == wsmodels.WindowDowntime || w.WindowType == wsmodels.WindowFocus {
			wellbeing.DowntimeBlocks++
		}
	}

	avgStress := 0.0
	if wellbeing.AvgStress != nil {
		avgStress = *wellbeing.AvgStress
	}
	switch {
	case avgStress >= 7 || wellbeing.WorkloadPerMember > 15 || wellbeing.DowntimeBlocks < 2:
		wellbeing.BurnoutRisk = models.BurnoutHigh
	case avgStress >= 5 || wellbeing.WorkloadPerMember > 12:
		wellbeing.BurnoutRisk = models.BurnoutMedium
	default:
		wellbeing.BurnoutRisk = models.BurnoutLow
	}

	if avgStress >= 7 {
		wellbeing.Reminders = append(wellbeing.Reminders, "Stress has been running high; block recovery time before taking new mandates.")
	}
	if wellbeing.DowntimeBlocks < 2 {
		wellbeing.Reminders = append(wellbeing.Reminders, "Fewer than two downtime blocks are scheduled; protect at least two each week.")
	}
	if wellbeing.WorkloadPerMember > 12 {
		wellbeing.Reminders = append(wellbeing.Reminders, "Open pipeline per member is heavy; consider redistributing candidates or pausing sourcing.")
	}
	if len(logs) == 0 {
		wellbeing.Reminders = append(wellbeing.Reminders, "No wellbeing check-ins in this window; log one to keep the tracker useful.")
	}

	return wellbeing
}
