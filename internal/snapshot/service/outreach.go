package service

import (
	"sort"
	"time"

	msgmodels "talentdeck/internal/messaging/models"
	"talentdeck/internal/snapshot/models"
	wsmodels "talentdeck/internal/workspace/models"
	"talentdeck/pkg/numeric"
)

// scopeThreads keeps the threads visible to the workspace: explicitly tagged
// threads that match it, plus globally scoped threads (no scope metadata).
func scopeThreads(threads []*msgmodels.MessageThread, workspace *wsmodels.Workspace) []*msgmodels.MessageThread {
	out := make([]*msgmodels.MessageThread, 0, len(threads))
	for _, t := range threads {
		if t.Scope.Matches(workspace.ID, workspace.Slug) {
			out = append(out, t)
		}
	}
	return out
}

// buildOutreach computes channel metrics, response behaviour, and the
// most recently active campaigns over messages inside the lookback window.
func buildOutreach(threads []*msgmodels.MessageThread, since time.Time) models.OutreachPerformance {
	perf := models.OutreachPerformance{
		CampaignCount: len(threads),
		Channels:      map[string]models.ChannelMetrics{},
		Campaigns:     []models.CampaignActivity{},
	}

	var responseHours []float64
	threadTouchpoints := 0

	for _, t := range threads {
		windowed := messagesSince(t.Messages, since)
		perf.TotalMessages += len(windowed)
		threadTouchpoints += len(windowed)

		repliedInWindow := false
		for i, m := range windowed {
			channel := m.Channel
			if channel == "" {
				channel = msgmodels.DefaultChannel
			}
			metrics := perf.Channels[channel]
			switch m.Direction {
			case msgmodels.DirectionOutbound:
				metrics.Sent++
				perf.TotalOutbound++
				// Response time: hours until the next inbound reply on
				// the same thread.
				for _, reply := range windowed[i+1:] {
					if reply.Direction == msgmodels.DirectionInbound {
						responseHours = append(responseHours, reply.SentAt.Sub(m.SentAt).Hours())
						break
					}
				}
			case msgmodels.DirectionInbound:
				metrics.Responses++
				perf.TotalInbound++
				repliedInWindow = true
			}
			perf.Channels[channel] = metrics
		}

		status := models.CampaignAwaiting
		if repliedInWindow {
			status = models.CampaignActive
		}
		perf.Campaigns = append(perf.Campaigns, models.CampaignActivity{
			ThreadID:      t.ID,
			Subject:       t.Subject,
			MessageCount:  len(windowed),
			LastMessageAt: t.LastMessageAt,
			Status:        status,
		})
	}

	if mean, ok := numeric.Mean(responseHours); ok {
		avg := numeric.Round(mean, 2)
		perf.AvgResponseHours = &avg
	}
	if perf.TotalMessages > 0 {
		perf.ResponseRate = numeric.Round(float64(perf.TotalInbound)/float64(perf.TotalMessages), 2)
	}
	if len(threads) > 0 {
		perf.AvgTouchpoints = numeric.Round(float64(threadTouchpoints)/float64(len(threads)), 1)
	}

	sort.SliceStable(perf.Campaigns, func(i, j int) bool {
		return perf.Campaigns[i].LastMessageAt.After(perf.Campaigns[j].LastMessageAt)
	})
	if len(perf.Campaigns) > 10 {
		perf.Campaigns = perf.Campaigns[:10]
	}
	return perf
}

// messagesSince filters a thread's messages to the lookback window, ordered
// by send time.
func messagesSince(messages []msgmodels.Message, since time.Time) []msgmodels.Message {
	out := make([]msgmodels.Message, 0, len(messages))
	for _, m := range messages {
		if m.SentAt.Before(since) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SentAt.Before(out[j].SentAt) })
	return out
}
