package service

import (
	"sort"
	"time"

	pipemodels "talentdeck/internal/pipeline/models"
	"talentdeck/internal/snapshot/models"
	"talentdeck/pkg/numeric"
)

// sentimentScores maps qualitative sentiment labels to numeric scores.
// Unmapped labels score 0.
var sentimentScores = map[string]float64{
	"delighted":  1,
	"positive":   1,
	"excited":    1,
	"optimistic": 0.6,
	"warm":       0.6,
	"neutral":    0,
	"steady":     0,
	"caution":    -0.3,
	"mixed":      -0.3,
	"guarded":    -0.3,
	"risk":       -0.8,
	"concern":    -0.8,
	"negative":   -0.8,
	"fatigue":    -0.8,
}

func sentimentScore(label string) float64 {
	return sentimentScores[label]
}

// Wellbeing flags that do not raise an alert.
var calmWellbeingFlags = map[string]struct{}{
	"":       {},
	"steady": {},
	"good":   {},
	"ok":     {},
}

// buildExecution assembles the kanban board, heatmap, interview
// coordination, candidate-experience vault, and pass-on exchange from the
// workspace's stages and items.
func buildExecution(stages []*pipemodels.PipelineStage, items []*pipemodels.PipelineItem, now time.Time) models.PipelineExecution {
	byStage := make(map[int64][]*pipemodels.PipelineItem)
	for _, it := range items {
		byStage[it.StageID] = append(byStage[it.StageID], it)
	}

	board := make([]models.StageColumn, 0, len(stages))
	heatmap := make([]models.StageHeat, 0, len(stages))
	for _, stage := range stages {
		column := buildStageColumn(stage, byStage[stage.ID], now)
		board = append(board, column)
		heatmap = append(heatmap, models.StageHeat{
			StageID:      stage.ID,
			Name:         stage.Name,
			DominantRisk: column.DominantRisk,
			AvgSentiment: column.AvgSentiment,
			ItemCount:    column.ItemCount,
		})
	}

	return models.PipelineExecution{
		Board:                 board,
		Heatmap:               heatmap,
		InterviewCoordination: buildInterviewCoordination(items, now),
		CandidateVault:        buildCandidateVault(items),
		PassOnExchange:        buildPassOnExchange(items),
	}
}

func buildStageColumn(stage *pipemodels.PipelineStage, stageItems []*pipemodels.PipelineItem, now time.Time) models.StageColumn {
	column := models.StageColumn{
		StageID:          stage.ID,
		Name:             stage.Name,
		StageType:        stage.StageType,
		Position:         stage.Position,
		WinProbability:   stage.WinProbability,
		ItemCount:        len(stageItems),
		RiskDistribution: map[string]int{},
		Items:            []models.BoardItem{},
	}

	var scores, days, sentiments []float64
	for _, it := range stageItems {
		insights := it.Insights()
		if it.Score != nil {
			scores = append(scores, *it.Score)
		}
		if !it.StageEnteredAt.IsZero() {
			days = append(days, now.Sub(it.StageEnteredAt).Hours()/24)
		}
		column.NotesCount += len(it.Notes)
		column.AttachmentsCount += len(it.Attachments)
		if insights.Risk != "" {
			column.RiskDistribution[insights.Risk]++
		}
		sentiments = append(sentiments, sentimentScore(insights.Sentiment))
	}

	if mean, ok := numeric.Mean(scores); ok {
		avg := numeric.Round(mean, 1)
		column.AvgScore = &avg
	}
	if mean, ok := numeric.Mean(days); ok {
		avg := numeric.Round(mean, 1)
		column.AvgDaysInStage = &avg
	}
	if mean, ok := numeric.Mean(sentiments); ok {
		column.AvgSentiment = numeric.Round(mean, 2)
	}
	column.DominantRisk = dominantRisk(column.RiskDistribution)
	column.Items = topBoardItems(stageItems, now, 8)
	return column
}

// dominantRisk picks the risk bucket with the highest count; ties resolve by
// severity, high over medium over low.
func dominantRisk(distribution map[string]int) string {
	dominant := ""
	best := 0
	for _, risk := range []string{pipemodels.RiskHigh, pipemodels.RiskMedium, pipemodels.RiskLow} {
		if count := distribution[risk]; count > best {
			dominant = risk
			best = count
		}
	}
	return dominant
}

// topBoardItems returns up to limit items sorted by score descending;
// unscored items sort last.
func topBoardItems(stageItems []*pipemodels.PipelineItem, now time.Time, limit int) []models.BoardItem {
	sorted := append([]*pipemodels.PipelineItem(nil), stageItems...)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := sorted[i].Score, sorted[j].Score
		switch {
		case si == nil && sj == nil:
			return sorted[i].ID < sorted[j].ID
		case si == nil:
			return false
		case sj == nil:
			return true
		default:
			return *si > *sj
		}
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]models.BoardItem, 0, len(sorted))
	for _, it := range sorted {
		insights := it.Insights()
		daysInStage := 0.0
		if !it.StageEnteredAt.IsZero() {
			daysInStage = numeric.Round(now.Sub(it.StageEnteredAt).Hours()/24, 1)
		}
		out = append(out, models.BoardItem{
			ItemID:         it.ID,
			CandidateName:  it.CandidateName,
			Score:          it.Score,
			DaysInStage:    daysInStage,
			NextStep:       it.NextStep,
			EstimatedValue: it.EstimatedValue,
			Risk:           insights.Risk,
			Sentiment:      insights.Sentiment,
			Blockers:       insights.Blockers,
		})
	}
	return out
}

// buildInterviewCoordination lists the next 12 non-cancelled interviews and
// summarizes the past week's completions and timezone spread.
func buildInterviewCoordination(items []*pipemodels.PipelineItem, now time.Time) models.InterviewCoordination {
	coordination := models.InterviewCoordination{
		Upcoming:  []models.UpcomingInterview{},
		Timezones: map[string]int{},
	}

	weekAgo := now.AddDate(0, 0, -7)
	for _, it := range items {
		for _, iv := range it.Interviews {
			if iv.Status == pipemodels.InterviewCancelled {
				continue
			}
			if iv.Timezone != "" {
				coordination.Timezones[iv.Timezone]++
			}
			if iv.Status == pipemodels.InterviewCompleted && !iv.ScheduledAt.Before(weekAgo) && !iv.ScheduledAt.After(now) {
				coordination.CompletedThisWeek++
			}
			if iv.ScheduledAt.After(now) {
				coordination.Upcoming = append(coordination.Upcoming, models.UpcomingInterview{
					InterviewID:   iv.ID,
					CandidateName: it.CandidateName,
					Kind:          iv.Kind,
					ScheduledAt:   iv.ScheduledAt,
					Timezone:      iv.Timezone,
				})
			}
		}
	}

	sort.SliceStable(coordination.Upcoming, func(i, j int) bool {
		return coordination.Upcoming[i].ScheduledAt.Before(coordination.Upcoming[j].ScheduledAt)
	})
	if len(coordination.Upcoming) > 12 {
		coordination.Upcoming = coordination.Upcoming[:12]
	}
	return coordination
}

// buildCandidateVault surfaces the 12 most recently touched items with a
// readiness index and wellbeing alerts for flagged candidates.
func buildCandidateVault(items []*pipemodels.PipelineItem) models.CandidateVault {
	vault := models.CandidateVault{
		Items:           []models.VaultItem{},
		WellbeingAlerts: []models.WellbeingAlert{},
	}

	sorted := append([]*pipemodels.PipelineItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt) })

	var readiness []float64
	for _, it := range sorted {
		insights := it.Insights()
		if insights.Readiness != nil {
			readiness = append(readiness, *insights.Readiness)
		}
		if _, calm := calmWellbeingFlags[insights.WellbeingFlag]; !calm {
			vault.WellbeingAlerts = append(vault.WellbeingAlerts, models.WellbeingAlert{
				ItemID:        it.ID,
				CandidateName: it.CandidateName,
				Flag:          insights.WellbeingFlag,
			})
		}
		if len(vault.Items) < 12 {
			vault.Items = append(vault.Items, models.VaultItem{
				ItemID:        it.ID,
				CandidateName: it.CandidateName,
				UpdatedAt:     it.UpdatedAt,
				Readiness:     insights.Readiness,
				Sentiment:     insights.Sentiment,
				NextStep:      it.NextStep,
			})
		}
	}

	if mean, ok := numeric.Mean(readiness); ok {
		idx := numeric.Round(mean, 2)
		vault.ReadinessIndex = &idx
	}
	return vault
}

// buildPassOnExchange projects referral revenue: a percentage rate applies
// against the item's estimated value, otherwise the flat amount is used.
func buildPassOnExchange(items []*pipemodels.PipelineItem) models.PassOnExchange {
	exchange := models.PassOnExchange{Shares: []models.ExchangeShare{}}
	for _, it := range items {
		for _, share := range it.PassOnShares {
			projected := 0.0
			switch {
			case share.Rate != nil && it.EstimatedValue != nil:
				projected = *it.EstimatedValue * (*share.Rate / 100)
			case share.FlatAmount != nil:
				projected = *share.FlatAmount
			}
			projected = numeric.Round(projected, 2)
			exchange.Shares = append(exchange.Shares, models.ExchangeShare{
				ItemID:           it.ID,
				CandidateName:    it.CandidateName,
				TargetWorkspace:  share.TargetWorkspace,
				SharedAt:         share.SharedAt,
				Status:           share.Status,
				ProjectedRevenue: projected,
			})
			exchange.ProjectedRevenue += projected
		}
	}
	exchange.ProjectedRevenue = numeric.Round(exchange.ProjectedRevenue, 2)
	return exchange
}

// buildSpotlight picks the top five items by score across all stages.
func buildSpotlight(stages []*pipemodels.PipelineStage, items []*pipemodels.PipelineItem) []models.SpotlightCandidate {
	stageNames := make(map[int64]string, len(stages))
	for _, st := range stages {
		stageNames[st.ID] = st.Name
	}

	sorted := append([]*pipemodels.PipelineItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := sorted[i].Score, sorted[j].Score
		switch {
		case si == nil && sj == nil:
			return sorted[i].ID < sorted[j].ID
		case si == nil:
			return false
		case sj == nil:
			return true
		default:
			return *si > *sj
		}
	})
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	spotlight := make([]models.SpotlightCandidate, 0, len(sorted))
	for _, it := range sorted {
		insights := it.Insights()
		spotlight = append(spotlight, models.SpotlightCandidate{
			ItemID:        it.ID,
			CandidateName: it.CandidateName,
			StageName:     stageNames[it.StageID],
			Score:         it.Score,
			Risk:          insights.Risk,
			Readiness:     insights.Readiness,
			NextStep:      it.NextStep,
		})
	}
	return spotlight
}
