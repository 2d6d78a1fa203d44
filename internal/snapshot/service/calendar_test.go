package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engmodels "talentdeck/internal/engagement/models"
	msgmodels "talentdeck/internal/messaging/models"
	pipemodels "talentdeck/internal/pipeline/models"
	"talentdeck/internal/snapshot/models"
	wsmodels "talentdeck/internal/workspace/models"
)

func TestBuildCalendarOrchestration(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ws := soloWorkspace()

	t.Run("windows format for display and focus windows become blocks", func(t *testing.T) {
		windows := []wsmodels.AvailabilityWindow{
			{Day: "monday", StartTime: "09:00", EndTime: "11:00", WindowType: wsmodels.WindowFocus},
			{Day: "tuesday", StartTime: "14:00", EndTime: "16:00", WindowType: wsmodels.WindowIntake,
				Metadata: map[string]any{"broadcastChannels": []any{"email", "slack"}}},
		}

		orchestration := buildCalendarOrchestration(windows, nil, nil, ws, nil, now)

		require.Len(t, orchestration.Windows, 2)
		assert.Equal(t, "monday 09:00 to 11:00 (focus)", orchestration.Windows[0].Label)
		assert.Equal(t, []string{"email", "slack"}, orchestration.Windows[1].Channels)

		require.Len(t, orchestration.FocusBlocks, 1)
		assert.Equal(t, models.FocusScheduled, orchestration.FocusBlocks[0].Source)
		assert.Equal(t, "Focus block monday 09:00 to 11:00", orchestration.FocusBlocks[0].Label)
	})

	t.Run("without focus windows upcoming events earn recommended blocks", func(t *testing.T) {
		engagements := []*engmodels.ClientEngagement{
			{ClientName: "Northwind", ScheduleEvents: []engmodels.ScheduleEvent{
				{Title: "Final presentation", EventType: "presentation", ScheduledAt: now.Add(26 * time.Hour)},
				{Title: "Invoice sync", EventType: "finance", ScheduledAt: now.Add(4 * time.Hour)},
				{Title: "Old briefing", EventType: "briefing", ScheduledAt: now.Add(-2 * time.Hour)},
			}},
		}
		it := &pipemodels.PipelineItem{
			ID:            1,
			CandidateName: "Amara",
			Interviews: []pipemodels.Interview{
				{Kind: "technical", ScheduledAt: now.Add(3 * time.Hour), Status: pipemodels.InterviewScheduled},
				{Kind: "culture", ScheduledAt: now.Add(5 * time.Hour), Status: pipemodels.InterviewCancelled},
			},
		}

		orchestration := buildCalendarOrchestration(nil, engagements, []*pipemodels.PipelineItem{it}, ws, nil, now)

		require.Len(t, orchestration.FocusBlocks, 2)
		first := orchestration.FocusBlocks[0]
		assert.Equal(t, models.FocusRecommended, first.Source)
		assert.Equal(t, "Prepare for Final presentation", first.Label)
		require.NotNil(t, first.StartAt)
		require.NotNil(t, first.EndAt)
		// 60-minute block ending 30 minutes before the event.
		assert.Equal(t, now.Add(26*time.Hour-30*time.Minute), *first.EndAt)
		assert.Equal(t, now.Add(26*time.Hour-90*time.Minute), *first.StartAt)

		assert.Equal(t, "Prepare for technical interview with Amara", orchestration.FocusBlocks[1].Label)
	})

	t.Run("broadcast unions sources in order dedupes and caps at six", func(t *testing.T) {
		workspace := &wsmodels.Workspace{
			ID:          1,
			Slug:        "skyline",
			IntakeEmail: "intake@skyline.example",
			Members: []wsmodels.WorkspaceMember{
				{ID: 1, Email: "ana@skyline.example", Status: wsmodels.MemberActive},
				{ID: 2, Email: "ben@skyline.example", Status: "invited"},
				{ID: 3, Email: "cole@skyline.example", Status: wsmodels.MemberActive},
			},
		}
		windows := []wsmodels.AvailabilityWindow{
			{WindowType: wsmodels.WindowIntake, Metadata: map[string]any{
				"recipients":        []any{"vip@client.example", "intake@skyline.example"},
				"broadcastChannels": []any{"email", "sms", "email"},
			}},
		}
		contacts := []msgmodels.ContactNote{
			{ContactEmail: "cfo@northwind.example"},
			{ContactEmail: "vip@client.example"},
			{ContactEmail: "md@contoso.example"},
		}

		orchestration := buildCalendarOrchestration(windows, nil, nil, workspace, contacts, now)

		assert.Equal(t, []string{
			"vip@client.example",
			"intake@skyline.example",
			"cfo@northwind.example",
			"md@contoso.example",
			"ana@skyline.example",
			"cole@skyline.example",
		}, orchestration.Broadcast.Recipients, "inactive members are excluded")
		assert.Equal(t, []string{"email", "sms"}, orchestration.Broadcast.Channels)
	})

	t.Run("broadcast recipient list stops at the cap", func(t *testing.T) {
		windows := []wsmodels.AvailabilityWindow{
			{Metadata: map[string]any{"recipients": []any{"a@x", "b@x", "c@x", "d@x", "e@x", "f@x", "g@x"}}},
		}
		orchestration := buildCalendarOrchestration(windows, nil, nil, soloWorkspace(), nil, now)
		assert.Len(t, orchestration.Broadcast.Recipients, 6)
		assert.NotContains(t, orchestration.Broadcast.Recipients, "g@x")
	})
}
