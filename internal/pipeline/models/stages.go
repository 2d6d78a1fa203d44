package models

import (
	"time"

	"talentdeck/pkg/numeric"
)

// PipelineStage is a workspace-scoped kanban column, ordered by Position.
type PipelineStage struct {
	ID             int64
	WorkspaceID    int64
	Name           string
	StageType      string
	Position       int
	WinProbability float64
}

// DefaultStageSeed describes one stage of the default set seeded exactly once
// per workspace on first pipeline access.
type DefaultStageSeed struct {
	Name           string
	StageType      string
	Position       int
	WinProbability float64
}

// DefaultStages is the fixed six-stage set.
var DefaultStages = []DefaultStageSeed{
	{Name: "Sourced", StageType: "prospecting", Position: 1, WinProbability: 0.05},
	{Name: "Screening", StageType: "screening", Position: 2, WinProbability: 0.15},
	{Name: "Interviewing", StageType: "interviewing", Position: 3, WinProbability: 0.35},
	{Name: "Offer", StageType: "offering", Position: 4, WinProbability: 0.65},
	{Name: "Placement", StageType: "placement", Position: 5, WinProbability: 0.95},
	{Name: "Closed", StageType: "closed", Position: 6, WinProbability: 0},
}

// Item risk levels in dominance order (high wins over medium wins over low).
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// PipelineItem is one candidate's card on the execution board.
type PipelineItem struct {
	ID             int64
	WorkspaceID    int64
	StageID        int64
	CandidateID    int64
	CandidateName  string
	Status         string
	Score          *float64
	StageEnteredAt time.Time
	UpdatedAt      time.Time
	NextStep       string
	EstimatedValue *float64
	Metadata       map[string]any
	Notes          []ItemNote
	Attachments    []ItemAttachment
	Interviews     []Interview
	PassOnShares   []PassOnShare
}

// ItemInsights are the qualitative signals embedded in an item's metadata.
// Parsing is defensive: malformed values degrade to absent, never to errors.
type ItemInsights struct {
	Sentiment     string
	Risk          string
	Readiness     *float64
	WellbeingFlag string
	Blockers      []string
}

// Insights extracts the metadata-derived signals from the item.
func (it *PipelineItem) Insights() ItemInsights {
	var ins ItemInsights
	md := it.Metadata
	if md == nil {
		return ins
	}
	if s, ok := md["sentiment"].(string); ok {
		ins.Sentiment = s
	}
	switch r, _ := md["risk"].(string); r {
	case RiskLow, RiskMedium, RiskHigh:
		ins.Risk = r
	}
	if f, ok := numeric.Parse(md["readiness"]); ok {
		ins.Readiness = &f
	}
	if s, ok := md["wellbeing"].(string); ok {
		ins.WellbeingFlag = s
	}
	if raw, ok := md["blockers"].([]any); ok {
		for _, b := range raw {
			if s, ok := b.(string); ok && s != "" {
				ins.Blockers = append(ins.Blockers, s)
			}
		}
	}
	return ins
}

// ItemNote is a free-form note on a pipeline item.
type ItemNote struct {
	ID        int64
	ItemID    int64
	Author    string
	Body      string
	CreatedAt time.Time
}

// ItemAttachment is a file attached to a pipeline item.
type ItemAttachment struct {
	ID        int64
	ItemID    int64
	FileName  string
	CreatedAt time.Time
}

// Interview statuses.
const (
	InterviewScheduled = "scheduled"
	InterviewCompleted = "completed"
	InterviewCancelled = "cancelled"
)

// Interview is a scheduled conversation attached to a pipeline item.
type Interview struct {
	ID          int64
	ItemID      int64
	Kind        string
	ScheduledAt time.Time
	Timezone    string
	Status      string
}

// PassOnShare records referring a candidate to another workspace or company
// for a revenue share. Rate is a percentage of the item's estimated value;
// FlatAmount is used when no rate is given.
type PassOnShare struct {
	ID              int64
	ItemID          int64
	TargetWorkspace string
	Rate            *float64
	FlatAmount      *float64
	SharedAt        time.Time
	Status          string
}
