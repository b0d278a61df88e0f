package persistence

import (
	"context"

	"github.com/launchvest/launchvest/internal/domain/entity"
)

// ReviewRepository defines essential methods to interact with review data
type ReviewRepository interface {
	// Create saves a new review
	//
	// Possible errors:
	// - ErrCampaignNotFound: If the referenced campaign does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, review *entity.Review) error

	// ListByCampaign retrieves reviews for a campaign ordered by creation
	// time descending
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByCampaign(ctx context.Context, campaignID uint64, opts ListOptions) ([]*entity.Review, int64, error)
}
