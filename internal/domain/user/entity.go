package user

import "time"

// User represents a user account in the system.
// The password hash never leaves the persistence boundary toward clients.
type User struct {
	ID           string     // opaque unique identifier, immutable
	Email        string     // unique email address, exact-match comparison
	PasswordHash string     // bcrypt hash, never returned to clients
	Name         string     // display name
	Bio          string     // optional profile text
	DateOfBirth  *time.Time // optional
	Location     string     // optional
	AvatarURL    string     // set once at creation, never reassigned
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relation expansions, populated only when explicitly requested
	Followers []FollowEdge
	Following []FollowEdge
}

// FollowEdge is a directed follow relationship between two users.
// At most one edge exists per ordered (follower, following) pair.
type FollowEdge struct {
	ID          string
	FollowerID  string
	FollowingID string

	// Counterpart users, populated on expansion
	Follower  *User
	Following *User
}

// Patch describes a partial profile update. Nil fields are left unchanged;
// only explicitly supplied fields are applied.
type Patch struct {
	Email       *string
	Name        *string
	Bio         *string
	DateOfBirth *time.Time
	Location    *string
}

// Empty reports whether the patch carries no changes
func (p Patch) Empty() bool {
	return p.Email == nil && p.Name == nil && p.Bio == nil &&
		p.DateOfBirth == nil && p.Location == nil
}
