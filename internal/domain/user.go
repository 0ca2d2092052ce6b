package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can authenticate. Agency users carry the id of the
// agency they act for.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	AgencyID     *uuid.UUID
	CreatedAt    time.Time
}

// Actor returns the workflow principal for this user.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role, AgencyID: u.AgencyID}
}
