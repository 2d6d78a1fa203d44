package models

import "time"

// Insights is the intelligence-hub section: gap analysis against computed
// targets plus a weekly review agenda.
type Insights struct {
	GapAnalysis        GapAnalysis  `json:"gapAnalysis"`
	Gaps               []Gap        `json:"gaps"`
	RecommendedActions []string     `json:"recommendedActions"`
	WeeklyReview       WeeklyReview `json:"weeklyReview"`
}

// GapAnalysis compares current metrics against computed targets.
type GapAnalysis struct {
	PipelineValue        float64 `json:"pipelineValue"`
	PipelineValueTarget  float64 `json:"pipelineValueTarget"`
	Placements           int     `json:"placements"`
	ForecastedPlacements int     `json:"forecastedPlacements"`
	PlacementTarget      int     `json:"placementTarget"`
	Touchpoints          int     `json:"touchpoints"`
	ActivityTarget       int     `json:"activityTarget"`
}

// Gap is one metric currently below target.
type Gap struct {
	Metric  string  `json:"metric"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
}

// WeeklyReview is the fixed weekly agenda.
type WeeklyReview struct {
	Topics       []string  `json:"topics"`
	NextReviewAt time.Time `json:"nextReviewAt"`
}

// CalendarOrchestration is the availability/focus-block/broadcast section.
type CalendarOrchestration struct {
	Windows     []WindowDisplay `json:"windows"`
	FocusBlocks []FocusBlock    `json:"focusBlocks"`
	Broadcast   Broadcast       `json:"broadcast"`
}

// WindowDisplay is a formatted availability window.
type WindowDisplay struct {
	Label      string   `json:"label"`
	Day        string   `json:"day"`
	StartTime  string   `json:"startTime"`
	EndTime    string   `json:"endTime"`
	WindowType string   `json:"windowType"`
	Channels   []string `json:"channels,omitempty"`
}

// Focus block sources.
const (
	FocusScheduled   = "scheduled"
	FocusRecommended = "recommended"
)

// FocusBlock is a scheduled or heuristically recommended deep-work slot.
type FocusBlock struct {
	Source  string     `json:"source"`
	Day     string     `json:"day,omitempty"`
	StartAt *time.Time `json:"startAt,omitempty"`
	EndAt   *time.Time `json:"endAt,omitempty"`
	Label   string     `json:"label"`
}

// Broadcast is the unioned recipient/channel fan-out for availability updates.
type Broadcast struct {
	Recipients []string `json:"recipients"`
	Channels   []string `json:"channels"`
}

// Burnout risk grades.
const (
	BurnoutLow    = "low"
	BurnoutMedium = "medium"
	BurnoutHigh   = "high"
)

// Wellbeing is the burnout-risk section derived from self-reported logs.
type Wellbeing struct {
	Score             *float64 `json:"score"`
	BurnoutRisk       string   `json:"burnoutRisk"`
	AvgEnergy         *float64 `json:"avgEnergy"`
	AvgStress         *float64 `json:"avgStress"`
	WorkloadPerMember float64  `json:"workloadPerMember"`
	DowntimeBlocks    int      `json:"downtimeBlocks"`
	Reminders         []string `json:"reminders"`
	ReflectionPrompts []string `json:"reflectionPrompts"`
}
