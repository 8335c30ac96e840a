package models

import "strings"

// Role identifies which workflow a user is routed to after login.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
)

// IsAdmin reports whether the role names the admin workflow.
// Role text comes from the user file and is matched case-insensitively.
func (r Role) IsAdmin() bool { return strings.EqualFold(string(r), string(RoleAdmin)) }

// IsSeller reports whether the role names the seller workflow.
func (r Role) IsSeller() bool { return strings.EqualFold(string(r), string(RoleSeller)) }

// User represents a system account (admin or seller).
type User struct {
	// Username is the unique identifier, compared case-insensitively
	// for uniqueness but case-sensitively at login.
	Username string

	// Password is stored and compared in plaintext. This mirrors the
	// users.txt file format and is a documented limitation, not an
	// oversight; do not swap in hashing without changing the file format.
	Password string

	// Role is admin or seller. Unknown values survive decoding and are
	// rejected at login dispatch instead.
	Role Role
}
