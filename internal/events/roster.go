// Package events defines roster change payloads and their publishers.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Roster event types.
const (
	TypeParticipantEnrolled   = "participant.enrolled"
	TypeParticipantUnenrolled = "participant.unenrolled"
)

// RosterEvent is emitted after a committed roster change.
type RosterEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewRosterEvent stamps a new event with an id and the current UTC time.
func NewRosterEvent(eventType, activity, email string) RosterEvent {
	return RosterEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Activity:   activity,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher delivers roster events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, evt RosterEvent) error
	Close() error
}

// NopPublisher drops every event.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, RosterEvent) error { return nil }

// Close implements Publisher.
func (NopPublisher) Close() error { return nil }
