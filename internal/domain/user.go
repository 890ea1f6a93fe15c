// Package domain defines the core entities: users, categories, and tasks.
package domain

import "time"

// Role describes what kind of account the user registered as.
// Roles are recorded at registration and returned to clients, but no
// operation is gated on them.
type Role string

const (
	// RoleIndividual is a personal, single-user account.
	RoleIndividual Role = "individual"
	// RoleTeamMember is a member of a team.
	RoleTeamMember Role = "team_member"
	// RoleManager manages a team.
	RoleManager Role = "manager"
	// RoleAdmin is an administrator account.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleIndividual, RoleTeamMember, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered account.
// PasswordHash is never serialized; handlers return users as-is.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InitTimestamps sets CreatedAt and UpdatedAt to now.
// Call this when creating a new user.
func (u *User) InitTimestamps() {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
}
