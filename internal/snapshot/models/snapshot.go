// Package models defines the computed dashboard snapshot: one consistent,
// cached payload per (workspace, lookback window) pair. Snapshots are
// immutable after construction; builders return fresh values and never mutate
// repository DTOs.
package models

import "time"

// DashboardSnapshot is the aggregate output of one snapshot build.
type DashboardSnapshot struct {
	WorkspaceSummary      WorkspaceSummary      `json:"workspaceSummary"`
	PipelineSummary       PipelineSummary       `json:"pipelineSummary"`
	PipelineExecution     PipelineExecution     `json:"pipelineExecution"`
	CandidateSpotlight    []SpotlightCandidate  `json:"candidateSpotlight"`
	MandatePortfolio      MandatePortfolio      `json:"mandatePortfolio"`
	OutreachPerformance   OutreachPerformance   `json:"outreachPerformance"`
	PassOnNetwork         PassOnNetwork         `json:"passOnNetwork"`
	ClientPartnerships    ClientPartnerships    `json:"clientPartnerships"`
	ActivityTimeline      []ActivityEvent       `json:"activityTimeline"`
	Calendar              Calendar              `json:"calendar"`
	Insights              Insights              `json:"insights"`
	CalendarOrchestration CalendarOrchestration `json:"calendarOrchestration"`
	KnowledgeBase         KnowledgeBase         `json:"knowledgeBase"`
	Wellbeing             Wellbeing             `json:"wellbeing"`
	ProspectIntelligence  ProspectIntelligence  `json:"prospectIntelligence"`
	Meta                  Meta                  `json:"meta"`
}

// Workspace health grades.
const (
	HealthThriving = "thriving"
	HealthSteady   = "steady"
	HealthQuiet    = "quiet"
)

// WorkspaceSummary identifies the resolved workspace with derived health and
// achievement badges.
type WorkspaceSummary struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Type            string   `json:"type"`
	Timezone        string   `json:"timezone"`
	DefaultCurrency string   `json:"defaultCurrency"`
	ActiveMembers   int      `json:"activeMembers"`
	Health          string   `json:"health"`
	Badges          []string `json:"badges"`
}

// Meta carries generation context: lookback, fallback state, and the list of
// workspaces the caller could switch to.
type Meta struct {
	GeneratedAt            time.Time         `json:"generatedAt"`
	LookbackDays           int               `json:"lookbackDays"`
	HasWorkspaceScopedData bool              `json:"hasWorkspaceScopedData"`
	FallbackReason         string            `json:"fallbackReason,omitempty"`
	Workspaces             []WorkspaceOption `json:"workspaces"`
}

// WorkspaceOption is one selectable workspace in the dashboard switcher.
type WorkspaceOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ActivityEvent is one entry on the recent-activity feed.
type ActivityEvent struct {
	Type          string    `json:"type"`
	ApplicantName string    `json:"applicantName"`
	Detail        string    `json:"detail"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// Activity event types.
const (
	ActivityStatusUpdate   = "status-update"
	ActivityReviewDecision = "review-decision"
)

// KnowledgeBase summarizes the workspace's internal playbooks.
type KnowledgeBase struct {
	Recent     []ArticleRef   `json:"recent"`
	Categories map[string]int `json:"categories"`
}

// ArticleRef points at one knowledge article.
type ArticleRef struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Calendar lists upcoming client-facing events inside the planning horizon.
type Calendar struct {
	UpcomingEvents []CalendarEvent `json:"upcomingEvents"`
}

// CalendarEvent is one upcoming event, merged from engagement schedules and
// pipeline interviews.
type CalendarEvent struct {
	Title       string    `json:"title"`
	EventType   string    `json:"eventType"`
	ClientName  string    `json:"clientName,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt"`
}
