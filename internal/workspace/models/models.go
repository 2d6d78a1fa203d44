// Package models defines the workspace aggregate read by the snapshot engine.
// All entities are plain, fully populated DTOs; snapshot builders never mutate
// repository results in place.
package models

import "time"

// Workspace types eligible for dashboard fallback resolution.
const (
	TypeAgency    = "agency"
	TypeRecruiter = "recruiter"
)

// Member statuses.
const (
	MemberActive  = "active"
	MemberPending = "pending"
)

// Workspace is the tenant boundary every snapshot is scoped to.
type Workspace struct {
	ID              int64
	Name            string
	Slug            string
	Type            string
	Timezone        string
	DefaultCurrency string
	IntakeEmail     string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Members         []WorkspaceMember
}

// ActiveMembers returns the members with active status.
func (w *Workspace) ActiveMembers() []WorkspaceMember {
	out := make([]WorkspaceMember, 0, len(w.Members))
	for _, m := range w.Members {
		if m.Status == MemberActive {
			out = append(out, m)
		}
	}
	return out
}

// WorkspaceMember is a person attached to a workspace.
type WorkspaceMember struct {
	ID          int64
	WorkspaceID int64
	Name        string
	Email       string
	Role        string
	Status      string
}

// Availability window types.
const (
	WindowFocus    = "focus"
	WindowDowntime = "downtime"
	WindowIntake   = "intake"
)

// AvailabilityWindow is a recurring calendar slot published by a workspace.
// Metadata may carry broadcastChannels and recipients lists.
type AvailabilityWindow struct {
	ID          int64
	WorkspaceID int64
	Day         string
	StartTime   string
	EndTime     string
	WindowType  string
	Metadata    map[string]any
}

// WellbeingLog is a self-reported check-in used for burnout scoring.
// Score is the optional explicit wellbeing score; when absent the tracker
// derives one from energy and stress averages.
type WellbeingLog struct {
	ID          int64
	WorkspaceID int64
	LoggedAt    time.Time
	EnergyLevel float64
	StressLevel float64
	Score       *float64
	Notes       string
}

// KnowledgeArticle is an internal playbook or reference document.
type KnowledgeArticle struct {
	ID          int64
	WorkspaceID int64
	Title       string
	Category    string
	UpdatedAt   time.Time
}
