package domain

import (
	"time"

	"github.com/google/uuid"
)

// Agency is a specialized execution agency (dinas). Multiple agencies of the
// same type may exist, but type-based auto-routing addresses at most one.
type Agency struct {
	ID        uuid.UUID
	Name      string
	Type      AgencyType
	CreatedAt time.Time
}
