package models

import "time"

// PipelineExecution is the kanban/interview/vault/pass-on section built from
// pipeline stages and items.
type PipelineExecution struct {
	Board                 []StageColumn         `json:"board"`
	Heatmap               []StageHeat           `json:"heatmap"`
	InterviewCoordination InterviewCoordination `json:"interviewCoordination"`
	CandidateVault        CandidateVault        `json:"candidateVault"`
	PassOnExchange        PassOnExchange        `json:"passOnExchange"`
}

// StageColumn is one kanban column with its stage-level metrics and the top
// items by score.
type StageColumn struct {
	StageID          int64          `json:"stageId"`
	Name             string         `json:"name"`
	StageType        string         `json:"stageType"`
	Position         int            `json:"position"`
	WinProbability   float64        `json:"winProbability"`
	ItemCount        int            `json:"itemCount"`
	AvgScore         *float64       `json:"avgScore"`
	AvgDaysInStage   *float64       `json:"avgDaysInStage"`
	NotesCount       int            `json:"notesCount"`
	AttachmentsCount int            `json:"attachmentsCount"`
	RiskDistribution map[string]int `json:"riskDistribution"`
	DominantRisk     string         `json:"dominantRisk,omitempty"`
	AvgSentiment     float64        `json:"avgSentiment"`
	Items            []BoardItem    `json:"items"`
}

// BoardItem is one candidate card on the board.
type BoardItem struct {
	ItemID         int64    `json:"itemId"`
	CandidateName  string   `json:"candidateName"`
	Score          *float64 `json:"score"`
	DaysInStage    float64  `json:"daysInStage"`
	NextStep       string   `json:"nextStep,omitempty"`
	EstimatedValue *float64 `json:"estimatedValue"`
	Risk           string   `json:"risk,omitempty"`
	Sentiment      string   `json:"sentiment,omitempty"`
	Blockers       []string `json:"blockers,omitempty"`
}

// StageHeat is the stage-level risk/sentiment heatmap entry.
type StageHeat struct {
	StageID      int64   `json:"stageId"`
	Name         string  `json:"name"`
	DominantRisk string  `json:"dominantRisk,omitempty"`
	AvgSentiment float64 `json:"avgSentiment"`
	ItemCount    int     `json:"itemCount"`
}

// InterviewCoordination summarizes upcoming and recent interviews.
type InterviewCoordination struct {
	Upcoming          []UpcomingInterview `json:"upcoming"`
	CompletedThisWeek int                 `json:"completedThisWeek"`
	Timezones         map[string]int      `json:"timezones"`
}

// UpcomingInterview is one scheduled, non-cancelled interview.
type UpcomingInterview struct {
	InterviewID   int64     `json:"interviewId"`
	CandidateName string    `json:"candidateName"`
	Kind          string    `json:"kind"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	Timezone      string    `json:"timezone,omitempty"`
}

// CandidateVault is the candidate-experience section.
type CandidateVault struct {
	Items           []VaultItem      `json:"items"`
	ReadinessIndex  *float64         `json:"readinessIndex"`
	WellbeingAlerts []WellbeingAlert `json:"wellbeingAlerts"`
}

// VaultItem is one candidate's experience record.
type VaultItem struct {
	ItemID        int64     `json:"itemId"`
	CandidateName string    `json:"candidateName"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Readiness     *float64  `json:"readiness"`
	Sentiment     string    `json:"sentiment,omitempty"`
	NextStep      string    `json:"nextStep,omitempty"`
}

// WellbeingAlert flags a candidate whose wellbeing metadata needs attention.
type WellbeingAlert struct {
	ItemID        int64  `json:"itemId"`
	CandidateName string `json:"candidateName"`
	Flag          string `json:"flag"`
}

// PassOnExchange is the revenue-share projection over item pass-on shares.
type PassOnExchange struct {
	Shares           []ExchangeShare `json:"shares"`
	ProjectedRevenue float64         `json:"projectedRevenue"`
}

// ExchangeShare is one pass-on share with its projected revenue.
type ExchangeShare struct {
	ItemID           int64     `json:"itemId"`
	CandidateName    string    `json:"candidateName"`
	TargetWorkspace  string    `json:"targetWorkspace"`
	SharedAt         time.Time `json:"sharedAt"`
	Status           string    `json:"status,omitempty"`
	ProjectedRevenue float64   `json:"projectedRevenue"`
}

// SpotlightCandidate is one of the top pipeline items by score, surfaced at
// the snapshot top level.
type SpotlightCandidate struct {
	ItemID        int64    `json:"itemId"`
	CandidateName string   `json:"candidateName"`
	StageName     string   `json:"stageName"`
	Score         *float64 `json:"score"`
	Risk          string   `json:"risk,omitempty"`
	Readiness     *float64 `json:"readiness"`
	NextStep      string   `json:"nextStep,omitempty"`
}
