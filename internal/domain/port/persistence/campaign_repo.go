package persistence

import (
	"context"

	"github.com/launchvest/launchvest/internal/domain/entity"
)

// CampaignFilter narrows campaign listing queries.
// Zero values mean "no filter".
type CampaignFilter struct {
	OwnerID uint64
	Status  entity.CampaignStatus
	ListOptions
}

// CampaignRepository defines essential methods to interact with campaign data
type CampaignRepository interface {
	// Create saves a new campaign
	//
	// Possible errors:
	// - ErrUserNotFound: If the owner does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, campaign *entity.Campaign) error

	// GetByID retrieves a campaign by ID
	//
	// Possible errors:
	// - ErrCampaignNotFound: If campaign with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Campaign, error)

	// GetByIDForUpdate retrieves a campaign by ID while taking a row lock.
	// Must be called inside a unit of work; the lock is held until the
	// surrounding transaction commits or rolls back.
	//
	// Possible errors:
	// - ErrCampaignNotFound: If campaign with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Campaign, error)

	// Update persists campaign mutations, aggregates included
	//
	// Possible errors:
	// - ErrCampaignNotFound: If campaign doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, campaign *entity.Campaign) error

	// List retrieves campaigns matching the filter ordered by creation
	// time descending, returning the page and the total matching count
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context, filter CampaignFilter) ([]*entity.Campaign, int64, error)

	// Count returns the total number of campaigns
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Count(ctx context.Context) (int64, error)

	// CountByStatus returns campaign counts grouped by status
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	CountByStatus(ctx context.Context) (map[entity.CampaignStatus]int64, error)
}
