package usecase

import (
	"context"

	"github.com/launchvest/launchvest/internal/domain/entity"
	"github.com/launchvest/launchvest/internal/domain/port/persistence"
)

// RegisterInput carries the fields needed to create an account
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     entity.Role
	Bio      string
}

// AuthResult is returned by register and login: the persisted user
// plus a signed bearer token for it
type AuthResult struct {
	User  *entity.User
	Token string
}

// ProfileUpdateInput carries the self-editable profile fields.
// Nil pointers mean "leave unchanged"; email and role cannot change.
type ProfileUpdateInput struct {
	Name      *string
	Bio       *string
	AvatarURL *string
}

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// Register creates a new account and issues a token for it.
	// Fails with ErrDuplicateEmail when the email is already taken.
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)

	// Login verifies credentials and issues a token.
	// Fails with ErrUnauthenticated on unknown email or wrong password.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// GetProfile retrieves a user's public profile
	GetProfile(ctx context.Context, userID uint64) (*entity.User, error)

	// UpdateProfile applies self-service profile edits
	UpdateProfile(ctx context.Context, userID uint64, input ProfileUpdateInput) (*entity.User, error)

	// ListUsers retrieves users with totals. Admin only.
	ListUsers(ctx context.Context, opts persistence.ListOptions) ([]*entity.User, int64, error)
}
