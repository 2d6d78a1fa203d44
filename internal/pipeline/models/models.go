// Package models defines the recruiting funnel entities: applications with
// their reviews, client projects (mandates), and the execution pipeline of
// stages and items.
package models

import (
	"time"

	wsmodels "talentdeck/internal/workspace/models"
)

// Application statuses. The aggregator maps every status into one of six
// coarse stage buckets; anything unrecognized defaults to prospecting.
const (
	StatusSourced     = "sourced"
	StatusSubmitted   = "submitted"
	StatusScreening   = "screening"
	StatusReviewing   = "reviewing"
	StatusInterview   = "interview"
	StatusInterviewed = "interviewed"
	StatusOffer       = "offer"
	StatusOfferUnder  = "offer_under_review"
	StatusPlaced      = "placed"
	StatusHired       = "hired"
	StatusRejected    = "rejected"
	StatusWithdrawn   = "withdrawn"
	StatusArchived    = "archived"
)

// Stage buckets: the six coarse funnel phases.
const (
	BucketProspecting  = "prospecting"
	BucketScreening    = "screening"
	BucketInterviewing = "interviewing"
	BucketOffering     = "offering"
	BucketPlacement    = "placement"
	BucketClosed       = "closed"
)

// BucketOrder lists the buckets in funnel order.
var BucketOrder = []string{
	BucketProspecting,
	BucketScreening,
	BucketInterviewing,
	BucketOffering,
	BucketPlacement,
	BucketClosed,
}

var statusBuckets = map[string]string{
	StatusSourced:     BucketProspecting,
	StatusSubmitted:   BucketProspecting,
	StatusScreening:   BucketScreening,
	StatusReviewing:   BucketScreening,
	StatusInterview:   BucketInterviewing,
	StatusInterviewed: BucketInterviewing,
	StatusOffer:       BucketOffering,
	StatusOfferUnder:  BucketOffering,
	StatusPlaced:      BucketPlacement,
	StatusHired:       BucketPlacement,
	StatusRejected:    BucketClosed,
	StatusWithdrawn:   BucketClosed,
	StatusArchived:    BucketClosed,
}

// BucketForStatus maps a fine-grained status to its stage bucket.
func BucketForStatus(status string) string {
	if b, ok := statusBuckets[status]; ok {
		return b
	}
	return BucketProspecting
}

var terminalStatuses = map[string]struct{}{
	StatusPlaced:    {},
	StatusHired:     {},
	StatusRejected:  {},
	StatusWithdrawn: {},
	StatusArchived:  {},
}

// IsTerminalStatus reports whether a status ends the funnel for an applicant.
func IsTerminalStatus(status string) bool {
	_, ok := terminalStatuses[status]
	return ok
}

// Target types an application can point at.
const (
	TargetProject = "project"
	TargetCompany = "company"
)

// Application is one candidate's pursuit of a target, scoped to workspaces
// via soft metadata tags parsed into Scope at the store boundary.
type Application struct {
	ID              int64
	ApplicantID     int64
	ApplicantName   string
	TargetType      string
	TargetID        int64
	Status          string
	SubmittedAt     time.Time
	DecisionAt      *time.Time
	UpdatedAt       time.Time
	RateExpectation *float64
	Metadata        map[string]any
	Scope           wsmodels.ScopeTag
	Reviews         []ApplicationReview
}

// IsTerminal reports whether the application reached a terminal status.
func (a *Application) IsTerminal() bool {
	return IsTerminalStatus(a.Status)
}

// Bucket returns the application's stage bucket.
func (a *Application) Bucket() string {
	return BucketForStatus(a.Status)
}

// LastActivityAt is the most recent of updatedAt, decisionAt, and submittedAt.
func (a *Application) LastActivityAt() time.Time {
	last := a.SubmittedAt
	if a.UpdatedAt.After(last) {
		last = a.UpdatedAt
	}
	if a.DecisionAt != nil && a.DecisionAt.After(last) {
		last = *a.DecisionAt
	}
	return last
}

// ApplicationReview is one reviewer decision on an application.
type ApplicationReview struct {
	ID            int64
	ApplicationID int64
	Stage         string
	Decision      string
	ReviewerName  string
	DecidedAt     *time.Time
}

// Project is a client hiring engagement (a mandate) tracked through the funnel.
type Project struct {
	ID          int64
	WorkspaceID int64
	Name        string
	ClientName  string
	Status      string
	Value       *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Project statuses excluded from the active-mandate count.
const (
	ProjectArchived = "archived"
	ProjectClosed   = "closed"
	ProjectPaused   = "paused"
)
