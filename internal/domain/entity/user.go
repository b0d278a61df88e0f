package entity

import (
	"strings"
	"time"

	errs "github.com/launchvest/launchvest/internal/domain/error"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
)

// Role is the closed set of user roles. Role checks go through this type
// rather than raw string comparisons scattered across handlers.
type Role string

const (
	RoleEntrepreneur Role = "entrepreneur"
	RoleInvestor     Role = "investor"
	RoleAdmin        Role = "admin"
)

// ParseRole converts a raw string to a Role, rejecting unknown values
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleEntrepreneur:
		return RoleEntrepreneur, nil
	case RoleInvestor:
		return RoleInvestor, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", errs.ErrInvalidRole
	}
}

// String returns the wire representation of the role
func (r Role) String() string {
	return string(r)
}

// User represents a registered platform user
type User struct {
	ID           uint64
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	Bio          string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user with normalized email and a parsed role.
// The password must already be hashed by the credential service.
func NewUser(email, passwordHash, name string, role Role, bio, avatarURL string, timeProvider coreport.TimeProvider) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || passwordHash == "" || strings.TrimSpace(name) == "" {
		return nil, errs.ErrMissingField
	}

	now := timeProvider.Now()
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         strings.TrimSpace(name),
		Role:         role,
		Bio:          bio,
		AvatarURL:    avatarURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ApplyProfileUpdate mutates the profile fields a user may edit themselves
func (u *User) ApplyProfileUpdate(name, bio, avatarURL *string, timeProvider coreport.TimeProvider) {
	if name != nil && strings.TrimSpace(*name) != "" {
		u.Name = strings.TrimSpace(*name)
	}
	if bio != nil {
		u.Bio = *bio
	}
	if avatarURL != nil {
		u.AvatarURL = *avatarURL
	}
	u.UpdatedAt = timeProvider.Now()
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
