// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is a person who either wears a tracker (a child) or watches one.
// Only the relation fields are read by the telemetry pipeline.
type User struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email     string     // The user's primary contact email.
	Name      string     // The user's display name.
	Role      Role       // The user's role in the system.
	ParentID  *uuid.UUID // Guardian of a child user.
	DriverID  *uuid.UUID // Driver assigned to a child user.
	AdminID   *uuid.UUID // Administrator responsible for a child user.
	CreatedAt time.Time  // Timestamp of when this user account was created.
	UpdatedAt time.Time  // Timestamp of the last modification to this user's data.
}

// AssociatedUsers returns the child followed by its parent, driver and admin,
// skipping unset links and duplicates while preserving that order.
func (u *User) AssociatedUsers() []uuid.UUID {
	if u == nil {
		return nil
	}

	ids := []uuid.UUID{u.ID}
	for _, related := range []*uuid.UUID{u.ParentID, u.DriverID, u.AdminID} {
		if related == nil || *related == uuid.Nil {
			continue
		}
		if slices.Contains(ids, *related) {
			continue
		}
		ids = append(ids, *related)
	}

	return ids
}
