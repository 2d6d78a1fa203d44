// Package seeder loads a demo dataset into the in-memory stores so a fresh
// server renders a fully populated dashboard.
package seeder

import (
	"time"

	engmodels "talentdeck/internal/engagement/models"
	engstore "talentdeck/internal/engagement/store"
	msgmodels "talentdeck/internal/messaging/models"
	msgstore "talentdeck/internal/messaging/store"
	pipemodels "talentdeck/internal/pipeline/models"
	pipestore "talentdeck/internal/pipeline/store"
	promodels "talentdeck/internal/prospect/models"
	prostore "talentdeck/internal/prospect/store"
	wsmodels "talentdeck/internal/workspace/models"
	wsstore "talentdeck/internal/workspace/store"
)

// Stores collects every in-memory store the seeder populates.
type Stores struct {
	Workspaces  *wsstore.InMemory
	Pipeline    *pipestore.InMemory
	Messaging   *msgstore.InMemory
	Engagements *engstore.InMemory
	Prospects   *prostore.InMemory
}

func ptr[T any](v T) *T { return &v }

// Seed populates the stores with the Skyline Search demo workspace.
func Seed(stores Stores, now time.Time) {
	seedWorkspace(stores.Workspaces, now)
	seedPipeline(stores.Pipeline, now)
	seedMessaging(stores.Messaging, now)
	seedEngagements(stores.Engagements, now)
	seedProspects(stores.Prospects, now)
}

func seedWorkspace(store *wsstore.InMemory, now time.Time) {
	store.Put(&wsmodels.Workspace{
		ID:              1,
		Name:            "Skyline Search",
		Slug:            "skyline-search",
		Type:            wsmodels.TypeAgency,
		Timezone:        "Europe/Berlin",
		DefaultCurrency: "EUR",
		IntakeEmail:     "intake@skyline-search.example",
		IsActive:        true,
		CreatedAt:       now.AddDate(-1, 0, 0),
		UpdatedAt:       now.AddDate(0, 0, -1),
		Members: []wsmodels.WorkspaceMember{
			{ID: 1, WorkspaceID: 1, Name: "Mara Voss", Email: "mara@skyline-search.example", Role: "principal", Status: wsmodels.MemberActive},
			{ID: 2, WorkspaceID: 1, Name: "Jonas Feld", Email: "jonas@skyline-search.example", Role: "recruiter", Status: wsmodels.MemberActive},
			{ID: 3, WorkspaceID: 1, Name: "Priya Nair", Email: "priya@skyline-search.example", Role: "sourcer", Status: wsmodels.MemberPending},
		},
	})

	store.PutAvailabilityWindow(wsmodels.AvailabilityWindow{
		ID: 1, WorkspaceID: 1, Day: "Monday", StartTime: "09:00", EndTime: "11:00",
		WindowType: wsmodels.WindowFocus,
		Metadata:   map[string]any{"broadcastChannels": []any{"email", "slack"}},
	})
	store.PutAvailabilityWindow(wsmodels.AvailabilityWindow{
		ID: 2, WorkspaceID: 1, Day: "Wednesday", StartTime: "14:00", EndTime: "16:00",
		WindowType: wsmodels.WindowIntake,
		Metadata:   map[string]any{"recipients": []any{"clients@skyline-search.example"}},
	})
	store.PutAvailabilityWindow(wsmodels.AvailabilityWindow{
		ID: 3, WorkspaceID: 1, Day: "Friday", StartTime: "15:00", EndTime: "17:00",
		WindowType: wsmodels.WindowDowntime,
	})

	store.PutWellbeingLog(wsmodels.WellbeingLog{
		ID: 1, WorkspaceID: 1, LoggedAt: now.AddDate(0, 0, -6), EnergyLevel: 7, StressLevel: 4,
	})
	store.PutWellbeingLog(wsmodels.WellbeingLog{
		ID: 2, WorkspaceID: 1, LoggedAt: now.AddDate(0, 0, -2), EnergyLevel: 6, StressLevel: 5,
		Notes: "busy week, two closings in flight",
	})

	store.PutKnowledgeArticle(wsmodels.KnowledgeArticle{ID: 1, WorkspaceID: 1, Title: "Client intake checklist", Category: "playbooks", UpdatedAt: now.AddDate(0, 0, -3)})
	store.PutKnowledgeArticle(wsmodels.KnowledgeArticle{ID: 2, WorkspaceID: 1, Title: "Offer negotiation guardrails", Category: "playbooks", UpdatedAt: now.AddDate(0, 0, -10)})
	store.PutKnowledgeArticle(wsmodels.KnowledgeArticle{ID: 3, WorkspaceID: 1, Title: "GDPR retention policy", Category: "compliance", UpdatedAt: now.AddDate(0, 0, -30)})
}

func seedPipeline(store *pipestore.InMemory, now time.Time) {
	store.PutProject(&pipemodels.Project{
		ID: 10, WorkspaceID: 1, Name: "Staff Platform Engineer", ClientName: "Nordwind Logistics",
		Status: "active", Value: ptr(28000.0), CreatedAt: now.AddDate(0, -2, 0), UpdatedAt: now.AddDate(0, 0, -4),
	})
	store.PutProject(&pipemodels.Project{
		ID: 11, WorkspaceID: 1, Name: "Head of Data", ClientName: "Arcadia Health",
		Status: pipemodels.ProjectPaused, Value: ptr(35000.0), CreatedAt: now.AddDate(0, -3, 0), UpdatedAt: now.AddDate(0, 0, -20),
	})

	scope := map[string]any{"headhunterWorkspaceId": int64(1)}
	store.PutApplication(&pipemodels.Application{
		ID: 100, ApplicantID: 500, ApplicantName: "Lena Hartmann",
		TargetType: pipemodels.TargetProject, TargetID: 10,
		Status: pipemodels.StatusInterview, SubmittedAt: now.AddDate(0, 0, -12),
		UpdatedAt: now.AddDate(0, 0, -1), RateExpectation: ptr(840.0), Metadata: scope,
		Reviews: []pipemodels.ApplicationReview{
			{ID: 1, ApplicationID: 100, Stage: "screening", Decision: "advance", ReviewerName: "Mara Voss", DecidedAt: ptr(now.AddDate(0, 0, -8))},
		},
	})
	store.PutApplication(&pipemodels.Application{
		ID: 101, ApplicantID: 501, ApplicantName: "Tomasz Kowal",
		TargetType: pipemodels.TargetProject, TargetID: 10,
		Status: pipemodels.StatusOffer, SubmittedAt: now.AddDate(0, 0, -25),
		UpdatedAt: now.AddDate(0, 0, -3), RateExpectation: ptr(910.0), Metadata: scope,
	})
	store.PutApplication(&pipemodels.Application{
		ID: 102, ApplicantID: 502, ApplicantName: "Ines Moreau",
		TargetType: pipemodels.TargetProject, TargetID: 11,
		Status: pipemodels.StatusRejected, SubmittedAt: now.AddDate(0, 0, -40),
		DecisionAt: ptr(now.AddDate(0, 0, -15)), UpdatedAt: now.AddDate(0, 0, -15),
		RateExpectation: ptr(780.0),
		Metadata: map[string]any{
			"headhunterWorkspaceId": int64(1),
			"passOnTarget":          "Harbor Talent Collective",
			"passOnNextStep":        "awaiting intro call",
			"revenueShare":          1200.0,
		},
	})
	store.PutApplication(&pipemodels.Application{
		ID: 103, ApplicantID: 503, ApplicantName: "Derek Stone",
		TargetType: pipemodels.TargetCompany, TargetID: 90,
		Status: pipemodels.StatusPlaced, SubmittedAt: now.AddDate(0, 0, -60),
		DecisionAt: ptr(now.AddDate(0, 0, -10)), UpdatedAt: now.AddDate(0, 0, -10),
		RateExpectation: ptr(950.0), Metadata: scope,
	})

	// Stages are left unseeded so the first snapshot exercises the lazy
	// default seeding; item StageIDs line up with the seeded set (1..6).
	store.PutItem(&pipemodels.PipelineItem{
		ID: 200, WorkspaceID: 1, StageID: 3, CandidateID: 500, CandidateName: "Lena Hartmann",
		Status: "active", Score: ptr(86.0), StageEnteredAt: now.AddDate(0, 0, -4), UpdatedAt: now.AddDate(0, 0, -1),
		NextStep: "Panel interview on Thursday", EstimatedValue: ptr(25200.0),
		Metadata: map[string]any{"sentiment": "positive", "risk": "low", "readiness": 0.8},
		Notes:    []pipemodels.ItemNote{{ID: 1, ItemID: 200, Author: "Jonas Feld", Body: "Strong systems round", CreatedAt: now.AddDate(0, 0, -4)}},
		Interviews: []pipemodels.Interview{
			{ID: 1, ItemID: 200, Kind: "panel", ScheduledAt: now.AddDate(0, 0, 2), Timezone: "Europe/Berlin", Status: pipemodels.InterviewScheduled},
			{ID: 2, ItemID: 200, Kind: "screening", ScheduledAt: now.AddDate(0, 0, -5), Timezone: "Europe/Berlin", Status: pipemodels.InterviewCompleted},
		},
	})
	store.PutItem(&pipemodels.PipelineItem{
		ID: 201, WorkspaceID: 1, StageID: 4, CandidateID: 501, CandidateName: "Tomasz Kowal",
		Status: "active", Score: ptr(91.0), StageEnteredAt: now.AddDate(0, 0, -2), UpdatedAt: now,
		NextStep: "Send offer letter", EstimatedValue: ptr(27300.0),
		Metadata: map[string]any{"sentiment": "optimistic", "risk": "medium", "readiness": 0.9, "blockers": []any{"reference check pending"}},
		PassOnShares: []pipemodels.PassOnShare{
			{ID: 1, ItemID: 201, TargetWorkspace: "Harbor Talent Collective", Rate: ptr(10.0), SharedAt: now.AddDate(0, 0, -14), Status: "accepted"},
		},
	})
	store.PutItem(&pipemodels.PipelineItem{
		ID: 202, WorkspaceID: 1, StageID: 2, CandidateID: 504, CandidateName: "Aiko Tanaka",
		Status: "active", Score: ptr(74.0), StageEnteredAt: now.AddDate(0, 0, -9), UpdatedAt: now.AddDate(0, 0, -6),
		NextStep: "Schedule technical screen",
		Metadata: map[string]any{"sentiment": "mixed", "risk": "medium", "wellbeing": "stretched"},
	})
}

func seedMessaging(store *msgstore.InMemory, now time.Time) {
	store.PutThread(&msgmodels.MessageThread{
		ID: 300, Subject: "Staff Platform Engineer shortlist",
		CreatedAt: now.AddDate(0, 0, -12), LastMessageAt: now.AddDate(0, 0, -1),
		Metadata: map[string]any{"workspaceId": int64(1)},
		Messages: []msgmodels.Message{
			{ID: 1, ThreadID: 300, Body: "Sharing three profiles for the platform role.", SentAt: now.AddDate(0, 0, -12), Direction: msgmodels.DirectionOutbound, Channel: "email"},
			{ID: 2, ThreadID: 300, Body: "Lena looks great, can we book a panel?", SentAt: now.AddDate(0, 0, -11), Direction: msgmodels.DirectionInbound, Channel: "email"},
			{ID: 3, ThreadID: 300, Body: "Panel confirmed for Thursday.", SentAt: now.AddDate(0, 0, -1), Direction: msgmodels.DirectionOutbound, Channel: "email"},
		},
	})
	store.PutThread(&msgmodels.MessageThread{
		ID: 301, Subject: "Q4 data leadership outreach",
		CreatedAt: now.AddDate(0, 0, -20), LastMessageAt: now.AddDate(0, 0, -18),
		Metadata: map[string]any{"workspaceSlug": "skyline-search"},
		Messages: []msgmodels.Message{
			{ID: 4, ThreadID: 301, Body: "Intro note on the Head of Data search.", SentAt: now.AddDate(0, 0, -20), Direction: msgmodels.DirectionOutbound, Channel: "linkedin"},
			{ID: 5, ThreadID: 301, Body: "Following up on last week's note.", SentAt: now.AddDate(0, 0, -18), Direction: msgmodels.DirectionOutbound, Channel: "linkedin"},
		},
	})

	store.PutContactNote(msgmodels.ContactNote{
		ID: 1, WorkspaceID: 1, ContactName: "Greta Simon", ContactEmail: "greta@nordwind.example",
		Body: "Prefers Thursday syncs", CreatedAt: now.AddDate(0, 0, -9),
	})
}

func seedEngagements(store *engstore.InMemory, now time.Time) {
	store.PutEngagement(&engmodels.ClientEngagement{
		ID: 400, WorkspaceID: 1, ClientName: "Nordwind Logistics",
		ContactName: "Greta Simon", ContactEmail: "greta@nordwind.example",
		ContractStatus: engmodels.ContractRetainer, RetainerAmount: ptr(6000.0),
		RetainerRenewsAt: ptr(now.AddDate(0, 1, 0)),
		CreatedAt:        now.AddDate(0, -4, 0), UpdatedAt: now.AddDate(0, 0, -2),
		Mandates: []engmodels.Mandate{
			{ID: 1, EngagementID: 400, ProjectID: 10, Title: "Staff Platform Engineer", Status: "active",
				DiversityScore: ptr(72.0), QualityScore: ptr(88.0),
				Metadata: map[string]any{"submissions": 9, "interviews": 4, "offers": 2, "placements": 1}},
		},
		Milestones: []engmodels.Milestone{
			{ID: 1, EngagementID: 400, Title: "Shortlist delivered", Status: engmodels.MilestoneCompleted, DueAt: now.AddDate(0, 0, -14)},
			{ID: 2, EngagementID: 400, Title: "Offer accepted", Status: engmodels.MilestoneOnTrack, DueAt: now.AddDate(0, 0, 10)},
		},
		Portals: []engmodels.Portal{
			{ID: 1, EngagementID: 400, ActiveUsers: 3, InviteCount: 5, LastAccessAt: ptr(now.AddDate(0, 0, -1)),
				AuditLogs: []engmodels.PortalAuditLog{
					{ID: 1, PortalID: 1, Action: "viewed-shortlist", ActorEmail: "greta@nordwind.example", OccurredAt: now.AddDate(0, 0, -1)},
				}},
		},
		Invoices: []engmodels.Invoice{
			{ID: 1, EngagementID: 400, Amount: 6000, Status: engmodels.InvoicePaid, DueAt: now.AddDate(0, -1, 0), PaidAt: ptr(now.AddDate(0, -1, 5))},
			{ID: 2, EngagementID: 400, Amount: 6000, Status: engmodels.InvoiceOutstanding, DueAt: now.AddDate(0, 0, 14)},
		},
		CommissionSplits: []engmodels.CommissionSplit{
			{ID: 1, EngagementID: 400, PartnerName: "Harbor Talent Collective", Percentage: 10, Amount: ptr(600.0)},
		},
		ScheduleEvents: []engmodels.ScheduleEvent{
			{ID: 1, EngagementID: 400, Title: "Panel interview: Lena Hartmann", EventType: "interview", ScheduledAt: now.AddDate(0, 0, 2), DurationMinutes: 90},
			{ID: 2, EngagementID: 400, Title: "Monthly retainer review", EventType: "briefing", ScheduledAt: now.AddDate(0, 0, 7), DurationMinutes: 45},
		},
	})

	store.PutCase(&engmodels.IssueResolutionCase{
		ID: 1, WorkspaceID: 1, EngagementID: 400, Subject: "Invoice mismatch for October",
		Status: engmodels.CaseResolved, PlaybookUsed: "billing-discrepancy",
		OpenedAt: now.AddDate(0, 0, -9), ResolvedAt: ptr(now.AddDate(0, 0, -7)),
		Events: []engmodels.IssueResolutionEvent{
			{ID: 1, CaseID: 1, Kind: "opened", Note: "Client flagged duplicate line item", OccurredAt: now.AddDate(0, 0, -9)},
			{ID: 2, CaseID: 1, Kind: "resolved", Note: "Credit note issued", OccurredAt: now.AddDate(0, 0, -7)},
		},
	})
}

func seedProspects(store *prostore.InMemory, now time.Time) {
	store.PutProfile(&promodels.IntelligenceProfile{
		ID: 600, WorkspaceID: 1, CandidateID: 505, CandidateName: "Sofia Brandt",
		Headline: "Engineering Manager, marketplace infra", RelocationReadiness: "open",
		CompensationTarget: ptr(145000.0), Motivators: []string{"scope", "remote-first"},
		AggregatedAt: now.AddDate(0, 0, -2),
		Signals: []promodels.IntelligenceSignal{
			{ID: 1, ProfileID: 600, Kind: "job-change", IntentLevel: promodels.IntentHigh, Summary: "Company announced restructuring", OccurredAt: now.AddDate(0, 0, -3)},
			{ID: 2, ProfileID: 600, Kind: "content", IntentLevel: promodels.IntentPassive, Summary: "Published a post on platform migration", OccurredAt: now.AddDate(0, 0, -6)},
		},
	})
	store.PutProfile(&promodels.IntelligenceProfile{
		ID: 601, WorkspaceID: 1, CandidateID: 506, CandidateName: "Oliver Kraus",
		Headline: "Principal Data Engineer", RelocationReadiness: "settled",
		CompensationTarget: ptr(132000.0), Motivators: []string{"scope", "equity"},
		ExclusivityConflict: true, AggregatedAt: now.AddDate(0, 0, -5),
		Signals: []promodels.IntelligenceSignal{
			{ID: 3, ProfileID: 601, Kind: "profile-update", IntentLevel: promodels.IntentMedium, OccurredAt: now.AddDate(0, 0, -5)},
		},
	})

	store.PutSearch(&promodels.SearchDefinition{
		ID: 700, WorkspaceID: 1, Name: "Berlin platform leads", Industry: "logistics",
		Criteria:  map[string]any{"seniority": "staff+", "location": "Berlin"},
		CreatedAt: now.AddDate(0, -1, 0),
		Alerts: []promodels.SearchAlert{
			{ID: 1, SearchID: 700, NewMatches: 4, Status: "unread", TriggeredAt: now.AddDate(0, 0, -1)},
		},
	})

	store.PutCampaign(&promodels.Campaign{
		ID: 800, WorkspaceID: 1, Name: "Data leadership Q4", Status: "active",
		StartedAt: now.AddDate(0, 0, -21),
		Steps: []promodels.CampaignStep{
			{ID: 1, CampaignID: 800, Position: 1, Channel: "email", Sent: 40, Responses: 9, ResponseRate: ptr(0.225)},
			{ID: 2, CampaignID: 800, Position: 2, Channel: "linkedin", Sent: 25, Responses: 6, ResponseRate: ptr(24.0), ConversionRate: ptr(0.08)},
		},
	})

	store.PutResearchNote(promodels.ResearchNote{
		ID: 1, WorkspaceID: 1, Author: "Priya Nair", Body: "Comp benchmarks for data leadership",
		CreatedAt: now.AddDate(0, 0, -4),
	})
	store.PutResearchNote(promodels.ResearchNote{
		ID: 2, WorkspaceID: 1, Author: "Mara Voss", Body: "Reference notes, restricted",
		Restricted: true, RetentionReviewAt: ptr(now.AddDate(0, 0, -1)), CreatedAt: now.AddDate(0, -1, 0),
	})

	store.PutResearchTask(promodels.ResearchTask{
		ID: 1, WorkspaceID: 1, Title: "Map Arcadia Health org chart", Status: "open",
		Assignee: "Priya Nair", DueAt: ptr(now.AddDate(0, 0, 5)), CreatedAt: now.AddDate(0, 0, -3),
	})
}
