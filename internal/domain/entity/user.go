// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. It exclusively owns its refresh tokens, reset tokens,
// subscription and projects.
type User struct {
	ID           uuid.UUID     `json:"id"`
	Email        string        `json:"email"`     // Unique, stored lower-cased.
	PasswordHash string        `json:"-"`         // bcrypt hash, never serialized.
	FirstName    string        `json:"firstName"` // Optional.
	LastName     string        `json:"lastName"`  // Optional.
	Role         Role          `json:"role"`
	IsActive     bool          `json:"isActive"` // Disabled accounts cannot log in or refresh.
	Subscription *Subscription `json:"subscription,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserPatch lists the user columns an update may change. Nil fields are left untouched.
type UserPatch struct {
	FirstName    *string
	LastName     *string
	Role         *Role
	IsActive     *bool
	PasswordHash *string
}

// IsEmpty reports whether the patch changes nothing.
func (p *UserPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Role == nil && p.IsActive == nil && p.PasswordHash == nil
}
