package persistence

import (
	"context"

	"github.com/launchvest/launchvest/internal/domain/entity"
)

// ListOptions controls pagination for listing queries.
// Page is 1-based; Limit is capped by the caller.
type ListOptions struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the configured page
func (o ListOptions) Offset() int {
	if o.Page < 1 {
		return 0
	}
	return (o.Page - 1) * o.Limit
}

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// Create saves a new user
	//
	// Possible errors:
	// - ErrDuplicateEmail: If a user with the same email already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by normalized email address
	// Used by login and by registration conflict checks
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the given email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update updates user information
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, user *entity.User) error

	// List retrieves users ordered by creation time descending,
	// returning the page and the total count
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context, opts ListOptions) ([]*entity.User, int64, error)

	// Count returns the total number of registered users
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Count(ctx context.Context) (int64, error)
}
