// Package models defines outreach messaging entities. Thread scoping and
// message direction/channel are parsed from metadata at the store boundary.
package models

import (
	"time"

	wsmodels "talentdeck/internal/workspace/models"
)

// Message directions.
const (
	DirectionOutbound = "outbound"
	DirectionInbound  = "inbound"
)

// DefaultChannel is assumed when a message carries no channel metadata.
const DefaultChannel = "in-app"

// MessageThread is one outreach conversation ("campaign" in dashboard terms).
type MessageThread struct {
	ID            int64
	Subject       string
	CreatedAt     time.Time
	LastMessageAt time.Time
	Metadata      map[string]any
	Scope         wsmodels.ScopeTag
	Messages      []Message
}

// Message is a single message on a thread. Direction and Channel are parsed
// from metadata when the thread is loaded; unknown directions are kept verbatim
// so the analytics layer can skip them explicitly.
type Message struct {
	ID        int64
	ThreadID  int64
	Body      string
	SentAt    time.Time
	Direction string
	Channel   string
	Metadata  map[string]any
}

// ParseMessageMeta resolves direction and channel from a message metadata bag.
func ParseMessageMeta(metadata map[string]any) (direction, channel string) {
	channel = DefaultChannel
	if metadata == nil {
		return "", channel
	}
	if d, ok := metadata["direction"].(string); ok {
		direction = d
	}
	if c, ok := metadata["channel"].(string); ok && c != "" {
		channel = c
	}
	return direction, channel
}

// ContactNote is a relationship note about a client contact, consulted when
// assembling calendar broadcast recipients.
type ContactNote struct {
	ID           int64
	WorkspaceID  int64
	ContactName  string
	ContactEmail string
	Body         string
	CreatedAt    time.Time
}
