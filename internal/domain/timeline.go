package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimelineEvent is one entry in a report's append-only audit trail. Events
// are never mutated or deleted; ordering by CreatedAt is canonical.
type TimelineEvent struct {
	ID          uuid.UUID
	ReportID    uuid.UUID
	ActorID     uuid.UUID
	Type        EventType
	Title       string
	Description string
	CreatedAt   time.Time
}
