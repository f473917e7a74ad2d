// Package models defines the JSON-serializable records persisted in the
// key/value namespace. Field names match the stored JSON layout, so records
// written by one version keep reading in the next.
package models

import "time"

// Role is the closed set of user roles. The effective role of a user is
// always derived (see IdentityStore.RoleOf), never read from the record
// directly: the distinguished admin email wins over whatever is stored, and
// a record without a role defaults to jobseeker.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEmployer  Role = "employer"
	RoleJobseeker Role = "jobseeker"
)

// User is a roster entry. Password is stored in the clear: the emulated
// backend makes no cryptographic claims, and sign-in compares bytes exactly.
type User struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Role      Role      `json:"role,omitempty"`
	Provider  string    `json:"provider,omitempty"`
	GoogleID  string    `json:"googleId,omitempty"`
	Picture   string    `json:"picture,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserSummary is the admin-facing roster view with the derived role.
type UserSummary struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	IsAdmin   bool      `json:"isAdmin"`
}

// Session is the singleton pointer to the currently authenticated user.
// At most one exists per storage namespace.
type Session struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// SystemStats is the admin dashboard aggregate.
type SystemStats struct {
	TotalUsers         int          `json:"totalUsers"`
	RoleStats          map[Role]int `json:"roleStats"`
	TotalJobs          int          `json:"totalJobs"`
	TotalReviews       int          `json:"totalReviews"`
	LastUserRegistered *time.Time   `json:"lastUserRegistered"`
}
