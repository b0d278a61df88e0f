package persistence

import (
	"context"

	"github.com/launchvest/launchvest/internal/domain/entity"
)

// InvestmentFilter narrows investment listing queries.
// Zero values mean "no filter".
type InvestmentFilter struct {
	CampaignID uint64
	InvestorID uint64
	Status     entity.InvestmentStatus
	ListOptions
}

// InvestmentRepository defines essential methods to interact with investment data
type InvestmentRepository interface {
	// Create saves a new investment record
	//
	// Possible errors:
	// - ErrCampaignNotFound: If the referenced campaign does not exist
	// - ErrUserNotFound: If the referenced investor does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, investment *entity.Investment) error

	// GetByID retrieves an investment by ID
	//
	// Possible errors:
	// - ErrInvestmentNotFound: If investment with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Investment, error)

	// Update persists investment mutations, used by the admin override
	//
	// Possible errors:
	// - ErrInvestmentNotFound: If investment doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, investment *entity.Investment) error

	// List retrieves investments matching the filter ordered by creation
	// time descending, returning the page and the total matching count
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context, filter InvestmentFilter) ([]*entity.Investment, int64, error)

	// Count returns the total number of investments
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Count(ctx context.Context) (int64, error)

	// TotalVolume returns the sum of all investment amounts in cents
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	TotalVolume(ctx context.Context) (int64, error)
}
