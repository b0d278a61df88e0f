package usecase

import (
	"context"
	"time"

	"github.com/launchvest/launchvest/internal/domain/entity"
	"github.com/launchvest/launchvest/internal/domain/port/persistence"
)

// CreateCampaignInput carries the fields needed to open a campaign.
// Draft campaigns stay invisible to investors until activated.
type CreateCampaignInput struct {
	OwnerID      uint64
	Title        string
	Description  string
	Category     string
	TargetAmount string // decimal string, e.g. "900.00"
	Deadline     time.Time
	ImageURL     string
	Draft        bool
}

// UpdateCampaignInput carries the owner-editable content fields.
// Nil pointers mean "leave unchanged"; aggregates cannot be set here.
// TargetAmount may only change while the campaign is still a draft.
type UpdateCampaignInput struct {
	Title        *string
	Description  *string
	Category     *string
	ImageURL     *string
	Deadline     *time.Time
	TargetAmount *string
}

// CampaignUseCase defines methods for campaign-related business operations
type CampaignUseCase interface {
	// CreateCampaign opens a new campaign for an entrepreneur.
	// The campaign starts active with zeroed aggregates.
	CreateCampaign(ctx context.Context, input CreateCampaignInput) (*entity.Campaign, error)

	// GetCampaign retrieves a campaign by ID
	GetCampaign(ctx context.Context, id uint64) (*entity.Campaign, error)

	// ListCampaigns retrieves campaigns matching the filter with totals
	ListCampaigns(ctx context.Context, filter persistence.CampaignFilter) ([]*entity.Campaign, int64, error)

	// UpdateCampaign applies content edits. Only the owner or an admin
	// may edit; aggregates and status are never touched.
	UpdateCampaign(ctx context.Context, id uint64, requesterID uint64, requesterRole entity.Role, input UpdateCampaignInput) (*entity.Campaign, error)

	// ActivateCampaign moves a draft campaign into the active state.
	// Only the owner or an admin may activate.
	ActivateCampaign(ctx context.Context, id uint64, requesterID uint64, requesterRole entity.Role) (*entity.Campaign, error)

	// OverrideCampaignStatus force-sets a campaign's status bypassing
	// the automatic funded transition. Admin only.
	OverrideCampaignStatus(ctx context.Context, id uint64, status entity.CampaignStatus) (*entity.Campaign, error)

	// AddReview attaches a rated comment to a campaign
	AddReview(ctx context.Context, campaignID, authorID uint64, rating int, comment string) (*entity.Review, error)

	// ListReviews retrieves a campaign's reviews with totals
	ListReviews(ctx context.Context, campaignID uint64, opts persistence.ListOptions) ([]*entity.Review, int64, error)
}
