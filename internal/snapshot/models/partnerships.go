package models

import "time"

// ClientPartnerships collects the independent sub-reports computed over
// client engagement and issue-resolution data.
type ClientPartnerships struct {
	TotalClients       int                      `json:"totalClients"`
	Contracts          ContractReport           `json:"contracts"`
	Performance        PerformanceReport        `json:"performance"`
	Availability       PartnershipCalendar      `json:"availability"`
	Excellence         []ClientHealth           `json:"excellence"`
	Portals            PortalReport             `json:"portals"`
	MandatePerformance MandatePerformanceReport `json:"mandatePerformance"`
	CommercialOps      CommercialOps            `json:"commercialOps"`
	IssueResolution    IssueResolutionReport    `json:"issueResolution"`
}

// ContractReport summarizes contract and retainer terms.
type ContractReport struct {
	ByStatus        map[string]int    `json:"byStatus"`
	RetainerClients int               `json:"retainerClients"`
	TotalRetainer   float64           `json:"totalRetainer"`
	Renewals        []RetainerRenewal `json:"renewals"`
}

// RetainerRenewal is one upcoming retainer renewal.
type RetainerRenewal struct {
	ClientName string    `json:"clientName"`
	Amount     float64   `json:"amount"`
	RenewsAt   time.Time `json:"renewsAt"`
}

// PerformanceReport is the submission-to-placement ratio funnel.
type PerformanceReport struct {
	Submissions         int     `json:"submissions"`
	Interviews          int     `json:"interviews"`
	Offers              int     `json:"offers"`
	Placements          int     `json:"placements"`
	SubmitToInterview   float64 `json:"submitToInterview"`
	InterviewToOffer    float64 `json:"interviewToOffer"`
	OfferToPlacement    float64 `json:"offerToPlacement"`
}

// PartnershipCalendar summarizes client-facing scheduling.
type PartnershipCalendar struct {
	UpcomingEvents int             `json:"upcomingEvents"`
	NextEvent      *CalendarEvent  `json:"nextEvent"`
	EventsByType   map[string]int  `json:"eventsByType"`
}

// Client health grades.
const (
	ClientAtRisk    = "at_risk"
	ClientOnTrack   = "on_track"
	ClientCompleted = "completed"
)

// ClientHealth is the excellence-dashboard entry for one engagement.
type ClientHealth struct {
	ClientName          string `json:"clientName"`
	Health              string `json:"health"`
	MilestonesTotal     int    `json:"milestonesTotal"`
	MilestonesCompleted int    `json:"milestonesCompleted"`
	MilestonesAtRisk    int    `json:"milestonesAtRisk"`
}

// PortalReport summarizes client portal adoption.
type PortalReport struct {
	TotalPortals   int     `json:"totalPortals"`
	ActiveUsers    int     `json:"activeUsers"`
	InviteCount    int     `json:"inviteCount"`
	AdoptionRate   float64 `json:"adoptionRate"`
	RecentActions  int     `json:"recentActions"`
}

// MandatePerformanceReport averages mandate quality signals.
type MandatePerformanceReport struct {
	TotalMandates     int      `json:"totalMandates"`
	AvgDiversityScore *float64 `json:"avgDiversityScore"`
	AvgQualityScore   *float64 `json:"avgQualityScore"`
	ByStatus          map[string]int `json:"byStatus"`
}

// CommercialOps summarizes invoices, commissions, and renewals.
type CommercialOps struct {
	OutstandingTotal float64           `json:"outstandingTotal"`
	OverdueTotal     float64           `json:"overdueTotal"`
	PaidTotal        float64           `json:"paidTotal"`
	CommissionTotal  float64           `json:"commissionTotal"`
	RenewalSchedule  []RetainerRenewal `json:"renewalSchedule"`
}

// IssueResolutionReport is the escalation-desk summary.
type IssueResolutionReport struct {
	OpenCases          int            `json:"openCases"`
	AwaitingClient     int            `json:"awaitingClient"`
	ResolvedCases      int            `json:"resolvedCases"`
	AvgResolutionHours *float64       `json:"avgResolutionHours"`
	PlaybookUsage      map[string]int `json:"playbookUsage"`
}
