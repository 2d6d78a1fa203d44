// Package models defines prospecting entities: aggregated candidate
// intelligence profiles and signals, saved searches with alerts, outreach
// campaigns, and research collaboration notes and tasks.
package models

import "time"

// Signal intent levels.
const (
	IntentHigh     = "high"
	IntentMedium   = "medium"
	IntentLow      = "low"
	IntentPassive  = "passive"
	IntentActive   = "active"
	IntentExplicit = "explicit"
)

// IntelligenceProfile is an aggregated view of one prospect.
type IntelligenceProfile struct {
	ID                  int64
	WorkspaceID         int64
	CandidateID         int64
	CandidateName       string
	Headline            string
	RelocationReadiness string
	CompensationTarget  *float64
	Motivators          []string
	ExclusivityConflict bool
	AggregatedAt        time.Time
	Signals             []IntelligenceSignal
}

// IntelligenceSignal is one observed market signal about a prospect.
type IntelligenceSignal struct {
	ID          int64
	ProfileID   int64
	Kind        string
	IntentLevel string
	Summary     string
	OccurredAt  time.Time
}

// SearchDefinition is a saved prospect search.
type SearchDefinition struct {
	ID          int64
	WorkspaceID int64
	Name        string
	Industry    string
	Criteria    map[string]any
	CreatedAt   time.Time
	Alerts      []SearchAlert
}

// SearchAlert is a triggered notification on a saved search.
type SearchAlert struct {
	ID          int64
	SearchID    int64
	NewMatches  int
	Status      string
	TriggeredAt time.Time
}

// Campaign is a multi-step prospect outreach sequence.
type Campaign struct {
	ID          int64
	WorkspaceID int64
	Name        string
	Status      string
	StartedAt   time.Time
	Steps       []CampaignStep
}

// CampaignStep is one channel touch in a campaign. Response and conversion
// rates may arrive either as fractions (0..1) or as percentages; the studio
// normalizes them.
type CampaignStep struct {
	ID             int64
	CampaignID     int64
	Position       int
	Channel        string
	Sent           int
	Responses      int
	ResponseRate   *float64
	ConversionRate *float64
}

// ResearchNote is a collaborative research annotation. Restricted notes and
// notes pending retention review feed the compliance guardrails.
type ResearchNote struct {
	ID                int64
	WorkspaceID       int64
	Author            string
	Body              string
	Restricted        bool
	RetentionReviewAt *time.Time
	CreatedAt         time.Time
}

// ResearchTask is a follow-up task on the research board.
type ResearchTask struct {
	ID          int64
	WorkspaceID int64
	Title       string
	Status      string
	Assignee    string
	DueAt       *time.Time
	CreatedAt   time.Time
}
