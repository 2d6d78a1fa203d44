package service

import (
	"fmt"
	"sort"
	"time"

	promodels "talentdeck/internal/prospect/models"
	"talentdeck/internal/snapshot/models"
	"talentdeck/pkg/numeric"
)

const (
	talentCardLimit    = 6
	cardSignalLimit    = 4
	signalStreamLimit  = 20
	topMotivatorsLimit = 5
)

// buildProspectIntelligence assembles the prospecting section: profile
// overview, ranked talent cards, the search cockpit, campaign studio, and the
// research board.
func buildProspectIntelligence(
	profiles []*promodels.IntelligenceProfile,
	searches []*promodels.SearchDefinition,
	campaigns []*promodels.Campaign,
	notes []promodels.ResearchNote,
	tasks []promodels.ResearchTask,
	now time.Time,
) models.ProspectIntelligence {
	return models.ProspectIntelligence{
		Overview:       buildProspectOverview(profiles),
		TalentCards:    buildTalentCards(profiles),
		Cockpit:        buildCockpit(searches, profiles),
		CampaignStudio: buildCampaignStudio(campaigns),
		Research:       buildResearchBoard(notes, tasks, now),
	}
}

func buildProspectOverview(profiles []*promodels.IntelligenceProfile) models.ProspectOverview {
	overview := models.ProspectOverview{
		TotalProfiles:       len(profiles),
		RelocationReadiness: map[string]int{},
		TopMotivators:       []models.MotivatorCount{},
	}

	var compensation []float64
	motivators := map[string]int{}
	for _, p := range profiles {
		if p.RelocationReadiness != "" {
			overview.RelocationReadiness[p.RelocationReadiness]++
		}
		if p.CompensationTarget != nil {
			compensation = append(compensation, *p.CompensationTarget)
		}
		if p.ExclusivityConflict {
			overview.ExclusivityConflicts++
		}
		for _, m := range p.Motivators {
			if m != "" {
				motivators[m]++
			}
		}
	}

	if mean, ok := numeric.Mean(compensation); ok {
		avg := numeric.Round(mean, 2)
		overview.AvgCompensationTarget = &avg
	}

	for m, count := range motivators {
		overview.TopMotivators = append(overview.TopMotivators, models.MotivatorCount{Motivator: m, Count: count})
	}
	sort.SliceStable(overview.TopMotivators, func(i, j int) bool {
		a, b := overview.TopMotivators[i], overview.TopMotivators[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Motivator < b.Motivator
	})
	if len(overview.TopMotivators) > topMotivatorsLimit {
		overview.TopMotivators = overview.TopMotivators[:topMotivatorsLimit]
	}
	return overview
}

// buildTalentCards ranks the six most recently aggregated profiles, each with
// its four most recent signals.
func buildTalentCards(profiles []*promodels.IntelligenceProfile) []models.TalentCard {
	sorted := append([]*promodels.IntelligenceProfile(nil), profiles...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].AggregatedAt.After(sorted[j].AggregatedAt) })
	if len(sorted) > talentCardLimit {
		sorted = sorted[:talentCardLimit]
	}

	cards := make([]models.TalentCard, 0, len(sorted))
	for _, p := range sorted {
		signals := append([]promodels.IntelligenceSignal(nil), p.Signals...)
		sort.SliceStable(signals, func(i, j int) bool { return signals[i].OccurredAt.After(signals[j].OccurredAt) })
		if len(signals) > cardSignalLimit {
			signals = signals[:cardSignalLimit]
		}

		card := models.TalentCard{
			ProfileID:           p.ID,
			CandidateName:       p.CandidateName,
			Headline:            p.Headline,
			RelocationReadiness: p.RelocationReadiness,
			CompensationTarget:  p.CompensationTarget,
			AggregatedAt:        p.AggregatedAt,
			Signals:             make([]models.SignalCard, 0, len(signals)),
		}
		for _, sig := range signals {
			card.Signals = append(card.Signals, models.SignalCard{
				Kind:        sig.Kind,
				IntentLevel: sig.IntentLevel,
				Summary:     sig.Summary,
				OccurredAt:  sig.OccurredAt,
			})
		}
		cards = append(cards, card)
	}
	return cards
}

func buildCockpit(searches []*promodels.SearchDefinition, profiles []*promodels.IntelligenceProfile) models.Cockpit {
	cockpit := models.Cockpit{
		Searches:         make([]models.SearchSummary, 0, len(searches)),
		IndustryCoverage: map[string]int{},
		SignalStream:     []models.StreamEntry{},
	}

	for _, search := range searches {
		summary := models.SearchSummary{
			SearchID: search.ID,
			Name:     search.Name,
			Industry: search.Industry,
		}
		for i := range search.Alerts {
			alert := search.Alerts[i]
			summary.AlertCount++
			summary.NewMatches += alert.NewMatches
			if summary.LastAlertAt == nil || alert.TriggeredAt.After(*summary.LastAlertAt) {
				at := alert.TriggeredAt
				summary.LastAlertAt = &at
			}
		}
		cockpit.Searches = append(cockpit.Searches, summary)
		if search.Industry != "" {
			cockpit.IndustryCoverage[search.Industry]++
		}
	}

	for _, p := range profiles {
		for _, sig := range p.Signals {
			cockpit.SignalStream = append(cockpit.SignalStream, models.StreamEntry{
				CandidateName: p.CandidateName,
				Kind:          sig.Kind,
				IntentLevel:   sig.IntentLevel,
				OccurredAt:    sig.OccurredAt,
			})
		}
	}
	sort.SliceStable(cockpit.SignalStream, func(i, j int) bool {
		return cockpit.SignalStream[i].OccurredAt.After(cockpit.SignalStream[j].OccurredAt)
	})
	if len(cockpit.SignalStream) > signalStreamLimit {
		cockpit.SignalStream = cockpit.SignalStream[:signalStreamLimit]
	}
	return cockpit
}

func buildCampaignStudio(campaigns []*promodels.Campaign) models.CampaignStudio {
	studio := models.CampaignStudio{Campaigns: make([]models.CampaignReport, 0, len(campaigns))}
	for _, c := range campaigns {
		report := models.CampaignReport{
			CampaignID: c.ID,
			Name:       c.Name,
			Status:     c.Status,
			Steps:      make([]models.StepReport, 0, len(c.Steps)),
		}
		for _, step := range c.Steps {
			report.Steps = append(report.Steps, models.StepReport{
				Position:       step.Position,
				Channel:        step.Channel,
				Sent:           step.Sent,
				Responses:      step.Responses,
				ResponseRate:   normalizeRate(step.ResponseRate),
				ConversionRate: normalizeRate(step.ConversionRate),
			})
		}
		studio.Campaigns = append(studio.Campaigns, report)
	}
	return studio
}

// normalizeRate converts a rate to a percentage: values at or below 1 are
// treated as fractions and rescaled.
func normalizeRate(rate *float64) *float64 {
	if rate == nil {
		return nil
	}
	v := *rate
	if v <= 1 {
		v *= 100
	}
	v = numeric.Round(v, 1)
	return &v
}

func buildResearchBoard(notes []promodels.ResearchNote, tasks []promodels.ResearchTask, now time.Time) models.ResearchBoard {
	board := models.ResearchBoard{
		NoteCount:     len(notes),
		TaskCount:     len(tasks),
		ComplianceLog: []models.ComplianceEvent{},
	}

	for _, note := range notes {
		if note.Restricted {
			board.RestrictedNotes++
			board.ComplianceLog = append(board.ComplianceLog, models.ComplianceEvent{
				Kind:       "restricted-note",
				Detail:     fmt.Sprintf("Restricted note by %s requires limited access", note.Author),
				OccurredAt: note.CreatedAt,
			})
		}
		if note.RetentionReviewAt != nil && !note.RetentionReviewAt.After(now) {
			board.RetentionReviews++
			board.ComplianceLog = append(board.ComplianceLog, models.ComplianceEvent{
				Kind:       "retention-review",
				Detail:     fmt.Sprintf("Note by %s is due for retention review", note.Author),
				OccurredAt: *note.RetentionReviewAt,
			})
		}
	}

	for _, task := range tasks {
		if task.Status != "done" && task.Status != "cancelled" {
			board.OpenTasks++
		}
	}

	sort.SliceStable(board.ComplianceLog, func(i, j int) bool {
		return board.ComplianceLog[i].OccurredAt.After(board.ComplianceLog[j].OccurredAt)
	})
	return board
}
