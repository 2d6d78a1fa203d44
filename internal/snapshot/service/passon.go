package service

import (
	"regexp"
	"strings"
	"time"

	pipemodels "talentdeck/internal/pipeline/models"
	"talentdeck/internal/snapshot/models"
	"talentdeck/pkg/numeric"
)

var awaitingPattern = regexp.MustCompile(`(?i)awaiting`)

// buildPassOnNetwork tracks closed-lost applicants referred onward for a
// revenue share. Referral details live in application metadata and degrade to
// neutral defaults when malformed.
func buildPassOnNetwork(apps []*pipemodels.Application) models.PassOnNetwork {
	network := models.PassOnNetwork{Referrals: []models.PassOnReferral{}}

	for _, a := range apps {
		if a.Status != pipemodels.StatusRejected && a.Status != pipemodels.StatusWithdrawn {
			continue
		}
		// Referrals require a resolvable candidate profile.
		if a.ApplicantID == 0 || strings.TrimSpace(a.ApplicantName) == "" {
			continue
		}

		referral := models.PassOnReferral{ApplicantName: a.ApplicantName}
		if md := a.Metadata; md != nil {
			if target, ok := md["passOnTarget"].(string); ok {
				referral.Target = target
			}
			if next, ok := md["passOnNextStep"].(string); ok {
				referral.NextStep = next
			}
			if raw, ok := md["passOnSharedAt"].(string); ok {
				if ts, err := time.Parse(time.RFC3339, raw); err == nil {
					referral.SharedAt = &ts
				}
			}
			referral.RevenueShare = numeric.ParseOr(md["revenueShare"], 0)
		}

		network.TotalCandidates++
		if strings.TrimSpace(referral.NextStep) == "" || awaitingPattern.MatchString(referral.NextStep) {
			network.OpenReferrals++
		}
		network.ProjectedRevenueShare += referral.RevenueShare
		network.Referrals = append(network.Referrals, referral)
	}

	network.ProjectedRevenueShare = numeric.Round(network.ProjectedRevenueShare, 2)
	return network
}
