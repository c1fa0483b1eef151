package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. Owners register themselves; everyone else is registered by an
// owner and carries that owner's national code in CreatedBy.
const (
	RoleOwner    = "owner"
	RoleCaptain  = "captain"
	RoleSailor   = "sailor"
	RoleEngineer = "engineer"
	RoleCook     = "cook"
)

// CrewRoles are the roles an owner may assign to crew accounts.
var CrewRoles = []string{RoleSailor, RoleCaptain, RoleEngineer, RoleCook}

// User represents an account keyed by a unique mobile number and national code
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Mobile       string     `json:"mobile" db:"mobile"`
	NationalCode string     `json:"national_code" db:"national_code"`
	Name         string     `json:"name" db:"name"`
	Avatar       *string    `json:"avatar,omitempty" db:"avatar"`
	Role         string     `json:"role" db:"role"`
	IsVerified   bool       `json:"is_verified" db:"is_verified"`
	CreatedBy    *string    `json:"created_by,omitempty" db:"created_by"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	PasswordHash *string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// IsCrewRole reports whether the role is one an owner assigns to crew
func IsCrewRole(role string) bool {
	for _, r := range CrewRoles {
		if r == role {
			return true
		}
	}
	return false
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}

// RegisterRequest registers a pre-verified account (owner-driven flows)
type RegisterRequest struct {
	Mobile       string `json:"mobile"`
	NationalCode string `json:"national_code"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	CreatedBy    string `json:"created_by,omitempty"`
}

// VerifyAndRegisterRequest combines code verification with account creation
type VerifyAndRegisterRequest struct {
	Mobile       string `json:"mobile"`
	Code         string `json:"code"`
	NationalCode string `json:"national_code"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

// UpdatePasswordRequest stores a client-supplied password hash
type UpdatePasswordRequest struct {
	Mobile       string `json:"mobile"`
	NationalCode string `json:"national_code"`
	PasswordHash string `json:"password_hash"`
}

// CheckUserRequest looks up an account by mobile and/or national code
type CheckUserRequest struct {
	Mobile       string `json:"mobile,omitempty"`
	NationalCode string `json:"national_code,omitempty"`
}

// UpdateProfileRequest changes the caller's display name
type UpdateProfileRequest struct {
	Name string `json:"name"`
}
