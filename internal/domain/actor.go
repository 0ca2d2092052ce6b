package domain

import "github.com/google/uuid"

// Actor is the authenticated principal behind a request. All three roles
// share this one shape; AgencyID is non-nil only for agency actors. Every
// operation switches on Role exactly once at the boundary.
type Actor struct {
	ID       uuid.UUID
	Role     Role
	AgencyID *uuid.UUID
}

func (a Actor) IsAdmin() bool  { return a.Role == RoleAdmin }
func (a Actor) IsAgency() bool { return a.Role == RoleAgency }

// Affiliation returns the actor's agency id, or uuid.Nil for non-agency
// actors.
func (a Actor) Affiliation() uuid.UUID {
	if a.AgencyID == nil {
		return uuid.Nil
	}
	return *a.AgencyID
}
