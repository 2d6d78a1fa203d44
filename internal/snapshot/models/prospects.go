package models

import "time"

// ProspectIntelligence is the prospecting section: profile overview, talent
// cards, search cockpit, campaign studio, and research collaboration.
type ProspectIntelligence struct {
	Overview       ProspectOverview `json:"overview"`
	TalentCards    []TalentCard     `json:"talentCards"`
	Cockpit        Cockpit          `json:"cockpit"`
	CampaignStudio CampaignStudio   `json:"campaignStudio"`
	Research       ResearchBoard    `json:"research"`
}

// ProspectOverview aggregates profile-level signals.
type ProspectOverview struct {
	TotalProfiles         int              `json:"totalProfiles"`
	RelocationReadiness   map[string]int   `json:"relocationReadiness"`
	AvgCompensationTarget *float64         `json:"avgCompensationTarget"`
	ExclusivityConflicts  int              `json:"exclusivityConflicts"`
	TopMotivators         []MotivatorCount `json:"topMotivators"`
}

// MotivatorCount is one motivator ranked by frequency.
type MotivatorCount struct {
	Motivator string `json:"motivator"`
	Count     int    `json:"count"`
}

// TalentCard is one ranked prospect with its most recent signals.
type TalentCard struct {
	ProfileID           int64        `json:"profileId"`
	CandidateName       string       `json:"candidateName"`
	Headline            string       `json:"headline,omitempty"`
	RelocationReadiness string       `json:"relocationReadiness,omitempty"`
	CompensationTarget  *float64     `json:"compensationTarget"`
	AggregatedAt        time.Time    `json:"aggregatedAt"`
	Signals             []SignalCard `json:"signals"`
}

// SignalCard is one market signal on a talent card or the signal stream.
type SignalCard struct {
	Kind        string    `json:"kind"`
	IntentLevel string    `json:"intentLevel"`
	Summary     string    `json:"summary,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// Cockpit is the prospecting search/alert console.
type Cockpit struct {
	Searches         []SearchSummary `json:"searches"`
	IndustryCoverage map[string]int  `json:"industryCoverage"`
	SignalStream     []StreamEntry   `json:"signalStream"`
}

// SearchSummary is one saved search with alert state.
type SearchSummary struct {
	SearchID    int64      `json:"searchId"`
	Name        string     `json:"name"`
	Industry    string     `json:"industry,omitempty"`
	AlertCount  int        `json:"alertCount"`
	NewMatches  int        `json:"newMatches"`
	LastAlertAt *time.Time `json:"lastAlertAt"`
}

// StreamEntry is a signal with its profile context, sorted by recency.
type StreamEntry struct {
	CandidateName string    `json:"candidateName"`
	Kind          string    `json:"kind"`
	IntentLevel   string    `json:"intentLevel"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// CampaignStudio reports per-campaign channel performance.
type CampaignStudio struct {
	Campaigns []CampaignReport `json:"campaigns"`
}

// CampaignReport is one campaign with normalized step metrics.
type CampaignReport struct {
	CampaignID int64        `json:"campaignId"`
	Name       string       `json:"name"`
	Status     string       `json:"status"`
	Steps      []StepReport `json:"steps"`
}

// StepReport is one campaign step; rates are percentages (values at or below
// 1 in the source are treated as fractions and rescaled).
type StepReport struct {
	Position       int      `json:"position"`
	Channel        string   `json:"channel"`
	Sent           int      `json:"sent"`
	Responses      int      `json:"responses"`
	ResponseRate   *float64 `json:"responseRate"`
	ConversionRate *float64 `json:"conversionRate"`
}

// ResearchBoard is the research collaboration summary with compliance
// guardrails.
type ResearchBoard struct {
	NoteCount        int               `json:"noteCount"`
	TaskCount        int               `json:"taskCount"`
	OpenTasks        int               `json:"openTasks"`
	RestrictedNotes  int               `json:"restrictedNotes"`
	RetentionReviews int               `json:"retentionReviews"`
	ComplianceLog    []ComplianceEvent `json:"complianceLog"`
}

// ComplianceEvent is one guardrail event on the research board.
type ComplianceEvent struct {
	Kind       string    `json:"kind"`
	Detail     string    `json:"detail"`
	OccurredAt time.Time `json:"occurredAt"`
}
