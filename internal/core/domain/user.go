package domain

import (
	"errors"
	"time"
)

const (
	RolePublic  = "public"
	RolePremium = "premium"
	RoleAdmin   = "admin"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidRole = errors.New("invalid role")

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RolePublic || r == RolePremium || r == RoleAdmin
}

// AssignableRole reports whether r may be set through the role-change path.
// The public role is the account-creation default and is never assignable.
func AssignableRole(r string) bool {
	return r == RolePremium || r == RoleAdmin
}

// User models a stored account.
type User struct {
	UID          string    `json:"uid" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name,omitempty" bson:"name,omitempty"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Identity is the resolved view of a session credential. Role is a claim
// captured at issuance: changing the stored role does not affect identities
// already resolved from outstanding credentials until those expire or are
// revoked.
type Identity struct {
	UID      string    `json:"uid"`
	Role     string    `json:"role"`
	IssuedAt time.Time `json:"issued_at"`
}
