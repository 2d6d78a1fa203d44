package models

import "time"

// PipelineSummary is the application funnel section.
type PipelineSummary struct {
	Totals           PipelineTotals          `json:"totals"`
	StageBreakdown   map[string]StageMetrics `json:"stageBreakdown"`
	ConversionFunnel ConversionFunnel        `json:"conversionFunnel"`
	VelocityDays     *float64                `json:"velocityDays"`
	AgingBuckets     map[string]int          `json:"agingBuckets"`
}

// PipelineTotals are headline funnel counters.
type PipelineTotals struct {
	Applications   int `json:"applications"`
	ActivePipeline int `json:"activePipeline"`
	Placements     int `json:"placements"`
}

// StageMetrics describes one of the six stage buckets.
type StageMetrics struct {
	Count      int     `json:"count"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// ConversionFunnel holds stage-to-stage conversion rates as percentages.
type ConversionFunnel struct {
	ScreeningRate float64 `json:"screeningRate"`
	InterviewRate float64 `json:"interviewRate"`
	OfferRate     float64 `json:"offerRate"`
	PlacementRate float64 `json:"placementRate"`
}

// Aging bucket labels, partitioning non-terminal applications by elapsed days.
const (
	AgingWeek    = "0-7"
	AgingFortnight = "8-14"
	AgingMonth   = "15-30"
	AgingStale   = "30+"
)

// MandatePortfolio is the client-mandate section.
type MandatePortfolio struct {
	Mandates            []MandateSummary `json:"mandates"`
	ActiveMandates      int              `json:"activeMandates"`
	PausedMandates      int              `json:"pausedMandates"`
	TotalPipelineValue  float64          `json:"totalPipelineValue"`
	AvgMandateAgingDays float64          `json:"avgMandateAgingDays"`
}

// MandateSummary is one project's funnel standing.
type MandateSummary struct {
	ProjectID       int64          `json:"projectId"`
	Name            string         `json:"name"`
	ClientName      string         `json:"clientName"`
	Status          string         `json:"status"`
	StageCounts     map[string]int `json:"stageCounts"`
	OpenRoles       int            `json:"openRoles"`
	Value           float64        `json:"value"`
	LastActivityAt  *time.Time     `json:"lastActivityAt"`
	FillProbability float64        `json:"fillProbability"`
}

// OutreachPerformance is the messaging analytics section.
type OutreachPerformance struct {
	CampaignCount    int                       `json:"campaignCount"`
	TotalMessages    int                       `json:"totalMessages"`
	TotalOutbound    int                       `json:"totalOutbound"`
	TotalInbound     int                       `json:"totalInbound"`
	AvgResponseHours *float64                  `json:"avgResponseHours"`
	ResponseRate     float64                   `json:"responseRate"`
	AvgTouchpoints   float64                   `json:"avgTouchpoints"`
	Channels         map[string]ChannelMetrics `json:"channels"`
	Campaigns        []CampaignActivity        `json:"campaigns"`
}

// ChannelMetrics are per-channel send/response counters.
type ChannelMetrics struct {
	Sent      int `json:"sent"`
	Responses int `json:"responses"`
}

// Campaign activity statuses.
const (
	CampaignActive   = "active"
	CampaignAwaiting = "awaiting response"
)

// CampaignActivity is one recently active thread.
type CampaignActivity struct {
	ThreadID      int64     `json:"threadId"`
	Subject       string    `json:"subject"`
	MessageCount  int       `json:"messageCount"`
	LastMessageAt time.Time `json:"lastMessageAt"`
	Status        string    `json:"status"`
}

// PassOnNetwork is the referral tracking section for closed-lost applicants.
type PassOnNetwork struct {
	TotalCandidates       int              `json:"totalCandidates"`
	OpenReferrals         int              `json:"openReferrals"`
	ProjectedRevenueShare float64          `json:"projectedRevenueShare"`
	Referrals             []PassOnReferral `json:"referrals"`
}

// PassOnReferral is one referred candidate.
type PassOnReferral struct {
	ApplicantName string     `json:"applicantName"`
	Target        string     `json:"target"`
	NextStep      string     `json:"nextStep"`
	SharedAt      *time.Time `json:"sharedAt"`
	RevenueShare  float64    `json:"revenueShare"`
}
