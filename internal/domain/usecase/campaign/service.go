package campaign

import (
	"context"
	"fmt"

	"github.com/launchvest/launchvest/internal/domain/entity"
	errs "github.com/launchvest/launchvest/internal/domain/error"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	"github.com/launchvest/launchvest/internal/domain/port/persistence"
	"github.com/launchvest/launchvest/internal/domain/port/usecase"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Service implements campaign business operations
type Service struct {
	campaignRepo persistence.CampaignRepository
	userRepo     persistence.UserRepository
	reviewRepo   persistence.ReviewRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCampaignService creates a new campaign service
func NewCampaignService(
	campaignRepo persistence.CampaignRepository,
	userRepo persistence.UserRepository,
	reviewRepo persistence.ReviewRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		campaignRepo: campaignRepo,
		userRepo:     userRepo,
		reviewRepo:   reviewRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateCampaign opens a new campaign for the owner. Only entrepreneurs
// and admins may create campaigns.
func (s *Service) CreateCampaign(ctx context.Context, input usecase.CreateCampaignInput) (*entity.Campaign, error) {
	owner, err := s.userRepo.GetByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if owner.Role != entity.RoleEntrepreneur && owner.Role != entity.RoleAdmin {
		return nil, fmt.Errorf("%w: only entrepreneurs can create campaigns", errs.ErrForbidden)
	}

	targetCents, err := entity.ParsePositiveAmount(input.TargetAmount)
	if err != nil {
		return nil, err
	}

	campaign, err := entity.NewCampaign(
		input.OwnerID,
		input.Title,
		input.Description,
		input.Category,
		targetCents,
		input.Deadline,
		input.ImageURL,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if input.Draft {
		campaign.Status = entity.CampaignStatusDraft
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	s.logger.Info("Campaign created", map[string]any{
		"campaign_id": campaign.ID,
		"owner_id":    campaign.OwnerID,
		"status":      campaign.Status.String(),
		"target":      entity.FormatAmount(campaign.TargetAmount),
	})

	return campaign, nil
}

// GetCampaign retrieves a campaign by ID
func (s *Service) GetCampaign(ctx context.Context, id uint64) (*entity.Campaign, error) {
	return s.campaignRepo.GetByID(ctx, id)
}

// ListCampaigns retrieves campaigns matching the filter with totals
func (s *Service) ListCampaigns(ctx context.Context, filter persistence.CampaignFilter) ([]*entity.Campaign, int64, error) {
	filter.ListOptions = clampListOptions(filter.ListOptions)
	return s.campaignRepo.List(ctx, filter)
}

// UpdateCampaign applies content edits from the owner or an admin.
// Aggregates and status are out of reach here; the investment
// transaction and the admin override own those.
func (s *Service) UpdateCampaign(ctx context.Context, id uint64, requesterID uint64, requesterRole entity.Role, input usecase.UpdateCampaignInput) (*entity.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if campaign.OwnerID != requesterID && requesterRole != entity.RoleAdmin {
		return nil, errs.ErrForbidden
	}

	if input.TargetAmount != nil {
		if campaign.Status != entity.CampaignStatusDraft {
			return nil, fmt.Errorf("%w: target amount can only change while the campaign is a draft", errs.ErrInvalidStatus)
		}
		targetCents, err := entity.ParsePositiveAmount(*input.TargetAmount)
		if err != nil {
			return nil, err
		}
		campaign.TargetAmount = targetCents
	}

	campaign.ApplyContentUpdate(input.Title, input.Description, input.Category, input.ImageURL, input.Deadline, s.timeProvider)

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}

	return campaign, nil
}

// ActivateCampaign moves a draft campaign into the active state
func (s *Service) ActivateCampaign(ctx context.Context, id uint64, requesterID uint64, requesterRole entity.Role) (*entity.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if campaign.OwnerID != requesterID && requesterRole != entity.RoleAdmin {
		return nil, errs.ErrForbidden
	}

	if err := campaign.Activate(s.timeProvider); err != nil {
		return nil, err
	}

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}

	s.logger.Info("Campaign activated", map[string]any{
		"campaign_id": id,
		"owner_id":    campaign.OwnerID,
	})

	return campaign, nil
}

// OverrideCampaignStatus force-sets the campaign status. The caller is
// responsible for the admin check; the status must be one of the five
// known states.
func (s *Service) OverrideCampaignStatus(ctx context.Context, id uint64, status entity.CampaignStatus) (*entity.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := campaign.Status
	campaign.Status = status
	campaign.UpdatedAt = s.timeProvider.Now()

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}

	s.logger.Info("Campaign status overridden", map[string]any{
		"campaign_id": id,
		"from":        previous.String(),
		"to":          status.String(),
	})

	return campaign, nil
}

// AddReview attaches a rated comment to a campaign. The campaign must
// exist; anyone authenticated may review.
func (s *Service) AddReview(ctx context.Context, campaignID, authorID uint64, rating int, comment string) (*entity.Review, error) {
	if _, err := s.campaignRepo.GetByID(ctx, campaignID); err != nil {
		return nil, err
	}

	review, err := entity.NewReview(campaignID, authorID, rating, comment, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// ListReviews retrieves a campaign's reviews with totals
func (s *Service) ListReviews(ctx context.Context, campaignID uint64, opts persistence.ListOptions) ([]*entity.Review, int64, error) {
	return s.reviewRepo.ListByCampaign(ctx, campaignID, clampListOptions(opts))
}

func clampListOptions(opts persistence.ListOptions) persistence.ListOptions {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultPageLimit
	}
	if opts.Limit > maxPageLimit {
		opts.Limit = maxPageLimit
	}
	return opts
}
