// Package models defines the client partnership aggregate: engagements with
// their mandates, milestones, portals, invoices, commission splits, and
// schedule events, plus the issue-resolution desk.
package models

import "time"

// Contract statuses.
const (
	ContractActive   = "active"
	ContractPaused   = "paused"
	ContractExpired  = "expired"
	ContractRetainer = "retainer"
)

// ClientEngagement is one client relationship owned by a workspace.
type ClientEngagement struct {
	ID               int64
	WorkspaceID      int64
	ClientName       string
	ContactName      string
	ContactEmail     string
	ContractStatus   string
	RetainerAmount   *float64
	RetainerRenewsAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Mandates         []Mandate
	Milestones       []Milestone
	Portals          []Portal
	Invoices         []Invoice
	CommissionSplits []CommissionSplit
	ScheduleEvents   []ScheduleEvent
}

// Mandate is a hiring engagement under a client contract. The funnel counters
// are metadata-first: explicit values win, otherwise the performance report
// derives them from workspace applications.
type Mandate struct {
	ID             int64
	EngagementID   int64
	ProjectID      int64
	Title          string
	Status         string
	DiversityScore *float64
	QualityScore   *float64
	Metadata       map[string]any
}

// Milestone statuses.
const (
	MilestoneOnTrack   = "on_track"
	MilestoneAtRisk    = "at_risk"
	MilestoneCompleted = "completed"
)

// Milestone is a delivery checkpoint on an engagement.
type Milestone struct {
	ID           int64
	EngagementID int64
	Title        string
	Status       string
	DueAt        time.Time
}

// Portal is a client-facing portal instance.
type Portal struct {
	ID           int64
	EngagementID int64
	ActiveUsers  int
	InviteCount  int
	LastAccessAt *time.Time
	AuditLogs    []PortalAuditLog
}

// PortalAuditLog records one portal action for adoption tracking.
type PortalAuditLog struct {
	ID         int64
	PortalID   int64
	Action     string
	ActorEmail string
	OccurredAt time.Time
}

// Invoice statuses.
const (
	InvoiceOutstanding = "outstanding"
	InvoiceOverdue     = "overdue"
	InvoicePaid        = "paid"
)

// Invoice is a billing document on an engagement.
type Invoice struct {
	ID           int64
	EngagementID int64
	Amount       float64
	Status       string
	DueAt        time.Time
	PaidAt       *time.Time
}

// CommissionSplit is a partner revenue split on an engagement.
type CommissionSplit struct {
	ID           int64
	EngagementID int64
	PartnerName  string
	Percentage   float64
	Amount       *float64
}

// ScheduleEvent is a client-facing calendar event.
type ScheduleEvent struct {
	ID              int64
	EngagementID    int64
	Title           string
	EventType       string
	ScheduledAt     time.Time
	DurationMinutes int
}

// Issue-resolution case statuses.
const (
	CaseOpen           = "open"
	CaseAwaitingClient = "awaiting_client"
	CaseResolved       = "resolved"
)

// IssueResolutionCase tracks a client escalation through resolution.
type IssueResolutionCase struct {
	ID           int64
	WorkspaceID  int64
	EngagementID int64
	Subject      string
	Status       string
	PlaybookUsed string
	OpenedAt     time.Time
	ResolvedAt   *time.Time
	Events       []IssueResolutionEvent
}

// IssueResolutionEvent is one step in a case's history.
type IssueResolutionEvent struct {
	ID         int64
	CaseID     int64
	Kind       string
	Note       string
	OccurredAt time.Time
}
