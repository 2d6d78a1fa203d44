package service

import (
	"sort"
	"time"

	engmodels "talentdeck/internal/engagement/models"
	pipemodels "talentdeck/internal/pipeline/models"
	"talentdeck/internal/snapshot/models"
	"talentdeck/pkg/numeric"
)

// buildPartnerships computes the independent client-insight sub-reports over
// engagement and issue-resolution data.
func buildPartnerships(
	engagements []*engmodels.ClientEngagement,
	cases []*engmodels.IssueResolutionCase,
	pipeline models.PipelineSummary,
	since, now time.Time,
) models.ClientPartnerships {
	return models.ClientPartnerships{
		TotalClients:       len(engagements),
		Contracts:          buildContractReport(engagements, now),
		Performance:        buildPerformanceReport(engagements, pipeline),
		Availability:       buildPartnershipCalendar(engagements, now),
		Excellence:         buildExcellence(engagements),
		Portals:            buildPortalReport(engagements, since),
		MandatePerformance: buildMandatePerformance(engagements),
		CommercialOps:      buildCommercialOps(engagements, now),
		IssueResolution:    buildIssueResolution(cases),
	}
}

func buildContractReport(engagements []*engmodels.ClientEngagement, now time.Time) models.ContractReport {
	report := models.ContractReport{
		ByStatus: map[string]int{},
		Renewals: []models.RetainerRenewal{},
	}
	for _, eng := range engagements {
		if eng.ContractStatus != "" {
			report.ByStatus[eng.ContractStatus]++
		}
		if eng.RetainerAmount == nil {
			continue
		}
		report.RetainerClients++
		report.TotalRetainer += *eng.RetainerAmount
		if eng.RetainerRenewsAt != nil && eng.RetainerRenewsAt.After(now) {
			report.Renewals = append(report.Renewals, models.RetainerRenewal{
				ClientName: eng.ClientName,
				Amount:     *eng.RetainerAmount,
				RenewsAt:   *eng.RetainerRenewsAt,
			})
		}
	}
	report.TotalRetainer = numeric.Round(report.TotalRetainer, 2)
	sort.SliceStable(report.Renewals, func(i, j int) bool {
		return report.Renewals[i].RenewsAt.Before(report.Renewals[j].RenewsAt)
	})
	return report
}

// buildPerformanceReport prefers the funnel counters mandates record in their
// metadata; when no mandate reports any, it derives the funnel from the
// workspace's stage breakdown.
func buildPerformanceReport(engagements []*engmodels.ClientEngagement, pipeline models.PipelineSummary) models.PerformanceReport {
	var report models.PerformanceReport
	for _, eng := range engagements {
		for _, mandate := range eng.Mandates {
			report.Submissions += metadataCount(mandate.Metadata, "submissions")
			report.Interviews += metadataCount(mandate.Metadata, "interviews")
			report.Offers += metadataCount(mandate.Metadata, "offers")
			report.Placements += metadataCount(mandate.Metadata, "placements")
		}
	}
	if report.Submissions == 0 && report.Interviews == 0 && report.Offers == 0 && report.Placements == 0 {
		report.Submissions = pipeline.Totals.Applications
		report.Interviews = pipeline.StageBreakdown[pipemodels.BucketInterviewing].Count
		report.Offers = pipeline.StageBreakdown[pipemodels.BucketOffering].Count
		report.Placements = pipeline.StageBreakdown[pipemodels.BucketPlacement].Count
	}
	report.SubmitToInterview = funnelRate(report.Interviews, report.Submissions)
	report.InterviewToOffer = funnelRate(report.Offers, report.Interviews)
	report.OfferToPlacement = funnelRate(report.Placements, report.Offers)
	return report
}

func metadataCount(md map[string]any, key string) int {
	if md == nil {
		return 0
	}
	if f, ok := numeric.Parse(md[key]); ok && f > 0 {
		return int(f)
	}
	return 0
}

func funnelRate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return numeric.Round(float64(numerator)/float64(denominator)*100, 1)
}

func buildPartnershipCalendar(engagements []*engmodels.ClientEngagement, now time.Time) models.PartnershipCalendar {
	calendar := models.PartnershipCalendar{EventsByType: map[string]int{}}
	var next *models.CalendarEvent
	for _, eng := range engagements {
		for _, ev := range eng.ScheduleEvents {
			if !ev.ScheduledAt.After(now) {
				continue
			}
			calendar.UpcomingEvents++
			calendar.EventsByType[ev.EventType]++
			if next == nil || ev.ScheduledAt.Before(next.ScheduledAt) {
				next = &models.CalendarEvent{
					Title:       ev.Title,
					EventType:   ev.EventType,
					ClientName:  eng.ClientName,
					ScheduledAt: ev.ScheduledAt,
				}
			}
		}
	}
	calendar.NextEvent = next
	return calendar
}

// buildExcellence grades each engagement off its milestones: any at-risk
// milestone marks the client at risk, a fully completed set marks it
// completed, anything else is on track.
func buildExcellence(engagements []*engmodels.ClientEngagement) []models.ClientHealth {
	out := make([]models.ClientHealth, 0, len(engagements))
	for _, eng := range engagements {
		health := models.ClientHealth{
			ClientName:      eng.ClientName,
			MilestonesTotal: len(eng.Milestones),
		}
		for _, m := range eng.Milestones {
			switch m.Status {
			case engmodels.MilestoneAtRisk:
				health.MilestonesAtRisk++
			case engmodels.MilestoneCompleted:
				health.MilestonesCompleted++
			}
		}
		switch {
		case health.MilestonesAtRisk > 0:
			health.Health = models.ClientAtRisk
		case health.MilestonesTotal > 0 && health.MilestonesCompleted == health.MilestonesTotal:
			health.Health = models.ClientCompleted
		default:
			health.Health = models.ClientOnTrack
		}
		out = append(out, health)
	}
	return out
}

func buildPortalReport(engagements []*engmodels.ClientEngagement, since time.Time) models.PortalReport {
	var report models.PortalReport
	for _, eng := range engagements {
		for _, portal := range eng.Portals {
			report.TotalPortals++
			report.ActiveUsers += portal.ActiveUsers
			report.InviteCount += portal.InviteCount
			for _, entry := range portal.AuditLogs {
				if !entry.OccurredAt.Before(since) {
					report.RecentActions++
				}
			}
		}
	}
	if report.InviteCount > 0 {
		report.AdoptionRate = numeric.Round(float64(report.ActiveUsers)/float64(report.InviteCount)*100, 1)
	}
	return report
}

func buildMandatePerformance(engagements []*engmodels.ClientEngagement) models.MandatePerformanceReport {
	report := models.MandatePerformanceReport{ByStatus: map[string]int{}}
	var diversity, quality []float64
	for _, eng := range engagements {
		for _, mandate := range eng.Mandates {
			report.TotalMandates++
			if mandate.Status != "" {
				report.ByStatus[mandate.Status]++
			}
			if mandate.DiversityScore != nil {
				diversity = append(diversity, *mandate.DiversityScore)
			}
			if mandate.QualityScore != nil {
				quality = append(quality, *mandate.QualityScore)
			}
		}
	}
	if mean, ok := numeric.Mean(diversity); ok {
		avg := numeric.Round(mean, 1)
		report.AvgDiversityScore = &avg
	}
	if mean, ok := numeric.Mean(quality); ok {
		avg := numeric.Round(mean, 1)
		report.AvgQualityScore = &avg
	}
	return report
}

func buildCommercialOps(engagements []*engmodels.ClientEngagement, now time.Time) models.CommercialOps {
	ops := models.CommercialOps{RenewalSchedule: []models.RetainerRenewal{}}
	for _, eng := range engagements {
		for _, inv := range eng.Invoices {
			switch inv.Status {
			case engmodels.InvoiceOutstanding:
				ops.OutstandingTotal += inv.Amount
			case engmodels.InvoiceOverdue:
				ops.OverdueTotal += inv.Amount
			case engmodels.InvoicePaid:
				ops.PaidTotal += inv.Amount
			}
		}
		for _, split := range eng.CommissionSplits {
			if split.Amount != nil {
				ops.CommissionTotal += *split.Amount
			}
		}
		if eng.RetainerAmount != nil && eng.RetainerRenewsAt != nil && eng.RetainerRenewsAt.After(now) {
			ops.RenewalSchedule = append(ops.RenewalSchedule, models.RetainerRenewal{
				ClientName: eng.ClientName,
				Amount:     *eng.RetainerAmount,
				RenewsAt:   *eng.RetainerRenewsAt,
			})
		}
	}
	ops.OutstandingTotal = numeric.Round(ops.OutstandingTotal, 2)
	ops.OverdueTotal = numeric.Round(ops.OverdueTotal, 2)
	ops.PaidTotal = numeric.Round(ops.PaidTotal, 2)
	ops.CommissionTotal = numeric.Round(ops.CommissionTotal, 2)
	sort.SliceStable(ops.RenewalSchedule, func(i, j int) bool {
		return ops.RenewalSchedule[i].RenewsAt.Before(ops.RenewalSchedule[j].RenewsAt)
	})
	return ops
}

func buildIssueResolution(cases []*engmodels.IssueResolutionCase) models.IssueResolutionReport {
	report := models.IssueResolutionReport{PlaybookUsage: map[string]int{}}
	var resolutionHours []float64
	for _, c := range cases {
		switch c.Status {
		case engmodels.CaseOpen:
			report.OpenCases++
		case engmodels.CaseAwaitingClient:
			report.AwaitingClient++
		case engmodels.CaseResolved:
			report.ResolvedCases++
		}
		if c.Status == engmodels.CaseResolved && c.ResolvedAt != nil && c.ResolvedAt.After(c.OpenedAt) {
			resolutionHours = append(resolutionHours, c.ResolvedAt.Sub(c.OpenedAt).Hours())
		}
		if c.PlaybookUsed != "" {
			report.PlaybookUsage[c.PlaybookUsed]++
		}
	}
	if mean, ok := numeric.Mean(resolutionHours); ok {
		avg := numeric.Round(mean, 1)
		report.AvgResolutionHours = &avg
	}
	return report
}
