package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportEvent is the integration event emitted after a committed workflow
// mutation. Consumers (notifiers, search indexers) get the report's new
// status, not the full report.
type ReportEvent struct {
	ReportID   uuid.UUID
	Type       EventType
	Status     ReportStatus
	ActorID    uuid.UUID
	OccurredAt time.Time
}
