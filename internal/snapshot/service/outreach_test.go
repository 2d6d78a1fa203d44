package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	msgmodels "talentdeck/internal/messaging/models"
	"talentdeck/internal/snapshot/models"
	wsmodels "talentdeck/internal/workspace/models"
)

func msg(direction, channel string, sentAt time.Time) msgmodels.Message {
	return msgmodels.Message{Direction: direction, Channel: channel, SentAt: sentAt}
}

func TestScopeThreads(t *testing.T) {
	ws := &wsmodels.Workspace{ID: 4, Slug: "north-star"}

	threads := []*msgmodels.MessageThread{
		{ID: 1, Scope: wsmodels.ParseScopeTag(nil)},
		{ID: 2, Scope: wsmodels.ParseScopeTag(map[string]any{"workspaceId": int64(4)})},
		{ID: 3, Scope: wsmodels.ParseScopeTag(map[string]any{"workspaceId": int64(9)})},
		{ID: 4, Scope: wsmodels.ParseScopeTag(map[string]any{"workspaceSlug": "North-Star"})},
	}

	kept := scopeThreads(threads, ws)
	ids := make([]int64, 0, len(kept))
	for _, th := range kept {
		ids = append(ids, th.ID)
	}
	assert.Equal(t, []int64{1, 2, 4}, ids, "global threads stay visible, foreign scopes drop")
}

func TestBuildOutreach(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	since := now.AddDate(0, 0, -30)

	t.Run("channel defaults and response rate", func(t *testing.T) {
		thread := &msgmodels.MessageThread{
			ID:            1,
			Subject:       "VP Engineering shortlist",
			LastMessageAt: now.Add(-time.Hour),
			Messages: []msgmodels.Message{
				msg(msgmodels.DirectionOutbound, "", now.Add(-26*time.Hour)),
				msg(msgmodels.DirectionInbound, "", now.Add(-20*time.Hour)),
				msg(msgmodels.DirectionOutbound, "email", now.Add(-time.Hour)),
			},
		}

		perf := buildOutreach([]*msgmodels.MessageThread{thread}, since)

		assert.Equal(t, 1, perf.CampaignCount)
		assert.Equal(t, 3, perf.TotalMessages)
		assert.Equal(t, 2, perf.TotalOutbound)
		assert.Equal(t, 1, perf.TotalInbound)

		inApp := perf.Channels[msgmodels.DefaultChannel]
		assert.Equal(t, 1, inApp.Sent, "blank channel falls back to in-app")
		assert.Equal(t, 1, inApp.Responses)
		assert.Equal(t, 1, perf.Channels["email"].Sent)

		// 1 inbound over 3 messages.
		assert.Equal(t, 0.33, perf.ResponseRate)

		require.NotNil(t, perf.AvgResponseHours)
		assert.Equal(t, 6.0, *perf.AvgResponseHours)
		assert.Equal(t, 3.0, perf.AvgTouchpoints)
	})

	t.Run("campaign status reflects inbound replies in the window", func(t *testing.T) {
		replied := &msgmodels.MessageThread{
			ID:            1,
			LastMessageAt: now.Add(-time.Hour),
			Messages: []msgmodels.Message{
				msg(msgmodels.DirectionOutbound, "email", now.Add(-3*time.Hour)),
				msg(msgmodels.DirectionInbound, "email", now.Add(-time.Hour)),
			},
		}
		silent := &msgmodels.MessageThread{
			ID:            2,
			LastMessageAt: now.Add(-2*time.Hour),
			Messages: []msgmodels.Message{
				msg(msgmodels.DirectionOutbound, "email", now.Add(-2*time.Hour)),
			},
		}
		stale := &msgmodels.MessageThread{
			ID:            3,
			LastMessageAt: now.AddDate(0, 0, -45),
			Messages: []msgmodels.Message{
				msg(msgmodels.DirectionOutbound, "email", now.AddDate(0, 0, -45)),
				msg(msgmodels.DirectionInbound, "email", now.AddDate(0, 0, -44)),
			},
		}

		perf := buildOutreach([]*msgmodels.MessageThread{replied, silent, stale}, since)
		require.Len(t, perf.Campaigns, 3)

		byID := map[int64]models.CampaignActivity{}
		for _, c := range perf.Campaigns {
			byID[c.ThreadID] = c
		}
		assert.Equal(t, models.CampaignActive, byID[1].Status)
		assert.Equal(t, models.CampaignAwaiting, byID[2].Status)
		assert.Equal(t, models.CampaignAwaiting, byID[3].Status, "replies before the window do not count")
		assert.Equal(t, 0, byID[3].MessageCount)
	})

	t.Run("campaigns sort by recency and cap at ten", func(t *testing.T) {
		var threads []*msgmodels.MessageThread
		for i := 0; i < 14; i++ {
			threads = append(threads, &msgmodels.MessageThread{
				ID:            int64(i + 1),
				Subject:       fmt.Sprintf("Campaign %d", i+1),
				LastMessageAt: now.Add(-time.Duration(i) * time.Hour),
			})
		}

		perf := buildOutreach(threads, since)
		assert.Equal(t, 14, perf.CampaignCount)
		require.Len(t, perf.Campaigns, 10)
		assert.Equal(t, int64(1), perf.Campaigns[0].ThreadID)
		assert.Equal(t, int64(10), perf.Campaigns[9].ThreadID)
	})

	t.Run("empty input leaves rates zeroed", func(t *testing.T) {
		perf := buildOutreach(nil, since)
		assert.Equal(t, 0.0, perf.ResponseRate)
		assert.Nil(t, perf.AvgResponseHours)
		assert.Equal(t, 0.0, perf.AvgTouchpoints)
	})
}
