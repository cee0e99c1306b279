// Package events publishes a change feed of DAO writes.
//
// Every successful write through a [PublishingStore] produces one [Event].
// Events go to Kafka when brokers are configured and are dropped otherwise.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Action names the kind of write an Event records.
type Action string

const (
	ActionSaved      Action = "saved"
	ActionUpdated    Action = "updated"
	ActionDeleted    Action = "deleted"
	ActionDeletedAll Action = "deleted_all"
)

// Event describes one write. EntityID is zero for bulk actions.
type Event struct {
	ID       uuid.UUID `json:"id"`
	Entity   string    `json:"entity"`
	Action   Action    `json:"action"`
	EntityID int       `json:"entityId"`
	At       time.Time `json:"at"`
}

// NewEvent stamps a write with a random ID and the current UTC time.
func NewEvent(entity string, action Action, entityID int) Event {
	return Event{
		ID:       uuid.New(),
		Entity:   entity,
		Action:   action,
		EntityID: entityID,
		At:       time.Now().UTC(),
	}
}

// Key identifies the record the event is about, e.g. "student:3".
func (e Event) Key() string {
	return fmt.Sprintf("%s:%d", e.Entity, e.EntityID)
}

// Publisher delivers events to a change feed. Publish may block on the
// network and honours ctx. Close flushes and releases the connection.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                        { return nil }
