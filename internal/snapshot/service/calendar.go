package service

import (
	"fmt"
	"time"

	engmodels "talentdeck/internal/engagement/models"
	msgmodels "talentdeck/internal/messaging/models"
	pipemodels "talentdeck/internal/pipeline/models"
	"talentdeck/internal/snapshot/models"
	wsmodels "talentdeck/internal/workspace/models"
)

// Event types that earn a recommended focus block when no focus window is
// scheduled.
var focusWorthyEvents = map[string]struct{}{
	"interview":    {},
	"presentation": {},
	"briefing":     {},
}

const (
	broadcastCap       = 6
	focusBlockDuration = 60 * time.Minute
	focusBlockLeadGap  = 30 * time.Minute
)

// buildCalendarOrchestration formats availability windows for display,
// derives focus blocks, and assembles the broadcast fan-out.
func buildCalendarOrchestration(
	windows []wsmodels.AvailabilityWindow,
	engagements []*engmodels.ClientEngagement,
	items []*pipemodels.PipelineItem,
	workspace *wsmodels.Workspace,
	contacts []msgmodels.ContactNote,
	now time.Time,
) models.CalendarOrchestration {
	orchestration := models.CalendarOrchestration{
		Windows:     make([]models.WindowDisplay, 0, len(windows)),
		FocusBlocks: []models.FocusBlock{},
	}

	for _, w := range windows {
		orchestration.Windows = append(orchestration.Windows, models.WindowDisplay{
			Label:      fmt.Sprintf("%s %s to %s (%s)", w.Day, w.StartTime, w.EndTime, w.WindowType),
			Day:        w.Day,
			StartTime:  w.StartTime,
			EndTime:    w.EndTime,
			WindowType: w.WindowType,
			Channels:   metadataStrings(w.Metadata, "broadcastChannels"),
		})
		if w.WindowType == wsmodels.WindowFocus {
			orchestration.FocusBlocks = append(orchestration.FocusBlocks, models.FocusBlock{
				Source: models.FocusScheduled,
				Day:    w.Day,
				Label:  fmt.Sprintf("Focus block %s %s to %s", w.Day, w.StartTime, w.EndTime),
			})
		}
	}

	if len(orchestration.FocusBlocks) == 0 {
		orchestration.FocusBlocks = recommendFocusBlocks(engagements, items, now)
	}
	orchestration.Broadcast = buildBroadcast(windows, workspace, contacts)
	return orchestration
}

// recommendFocusBlocks proposes a 60-minute slot ending 30 minutes before
// each upcoming interview, presentation, or briefing.
func recommendFocusBlocks(engagements []*engmodels.ClientEngagement, items []*pipemodels.PipelineItem, now time.Time) []models.FocusBlock {
	blocks := []models.FocusBlock{}
	addBlock := func(title string, at time.Time) {
		end := at.Add(-focusBlockLeadGap)
		start := end.Add(-focusBlockDuration)
		blocks = append(blocks, models.FocusBlock{
			Source:  models.FocusRecommended,
			StartAt: &start,
			EndAt:   &end,
			Label:   fmt.Sprintf("Prepare for %s", title),
		})
	}

	for _, eng := range engagements {
		for _, ev := range eng.ScheduleEvents {
			if _, ok := focusWorthyEvents[ev.EventType]; !ok {
				continue
			}
			if ev.ScheduledAt.After(now) {
				addBlock(ev.Title, ev.ScheduledAt)
			}
		}
	}
	for _, it := range items {
		for _, iv := range it.Interviews {
			if iv.Status != pipemodels.InterviewCancelled && iv.ScheduledAt.After(now) {
				addBlock(fmt.Sprintf("%s interview with %s", iv.Kind, it.CandidateName), iv.ScheduledAt)
			}
		}
	}
	return blocks
}

// buildBroadcast unions availability-window metadata, the workspace intake
// email, client contact emails, and member emails, capping each list.
func buildBroadcast(windows []wsmodels.AvailabilityWindow, workspace *wsmodels.Workspace, contacts []msgmodels.ContactNote) models.Broadcast {
	recipients := newCappedSet(broadcastCap)
	channels := newCappedSet(broadcastCap)

	for _, w := range windows {
		for _, r := range metadataStrings(w.Metadata, "recipients") {
			recipients.add(r)
		}
		for _, c := range metadataStrings(w.Metadata, "broadcastChannels") {
			channels.add(c)
		}
	}
	recipients.add(workspace.IntakeEmail)
	for _, contact := range contacts {
		recipients.add(contact.ContactEmail)
	}
	for _, member := range workspace.ActiveMembers() {
		recipients.add(member.Email)
	}

	return models.Broadcast{Recipients: recipients.values, Channels: channels.values}
}

func metadataStrings(md map[string]any, key string) []string {
	raw, ok := md[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// cappedSet keeps insertion order, drops duplicates and empty strings, and
// stops accepting once full.
type cappedSet struct {
	cap    int
	seen   map[string]struct{}
	values []string
}

func newCappedSet(cap int) *cappedSet {
	return &cappedSet{cap: cap, seen: map[string]struct{}{}, values: []string{}}
}

func (s *cappedSet) add(v string) {
	if v == "" || len(s.values) >= s.cap {
		return
	}
	if _, dup := s.seen[v]; dup {
		return
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
}
