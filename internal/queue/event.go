// Package queue defines message payloads exchanged over the message broker
// plus the publisher and background consumer for the activity feed.
package queue

import (
	"time"

	"github.com/google/uuid"
)

const activityQueueName = "admin.activity"

// ActivityEvent is published after a successful administrative mutation
// (vehicle added, local body onboarded, collector created, and so on). It
// carries enough for downstream consumers to log or notify without querying
// the primary database.
type ActivityEvent struct {
	EventID    string `json:"event_id"`
	UserID     uint64 `json:"user_id"`
	Role       string `json:"role"`
	Action     string `json:"action"`
	EntityType string `json:"entity_type"`
	EntityID   int64  `json:"entity_id"`
	Detail     string `json:"detail"`
	OccurredAt string `json:"occurred_at"`
}

// NewActivityEvent stamps the event with a fresh ID and the current time.
func NewActivityEvent(userID uint64, role, action, entityType string, entityID int64, detail string) ActivityEvent {
	return ActivityEvent{
		EventID:    uuid.NewString(),
		UserID:     userID,
		Role:       role,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}
