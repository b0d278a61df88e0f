package campaign

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/launchvest/launchvest/internal/domain/entity"
	errs "github.com/launchvest/launchvest/internal/domain/error"
	"github.com/launchvest/launchvest/internal/domain/port/usecase"
	mockcore "github.com/launchvest/launchvest/mocks/port/core"
	mockpersistence "github.com/launchvest/launchvest/mocks/port/persistence"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newService() (*Service, *mockpersistence.MockCampaignRepository, *mockpersistence.MockUserRepository) {
	service, campaignRepo, userRepo, _ := newServiceWithReviews()
	return service, campaignRepo, userRepo
}

func newServiceWithReviews() (*Service, *mockpersistence.MockCampaignRepository, *mockpersistence.MockUserRepository, *mockpersistence.MockReviewRepository) {
	campaignRepo := &mockpersistence.MockCampaignRepository{}
	userRepo := &mockpersistence.MockUserRepository{}
	reviewRepo := &mockpersistence.MockReviewRepository{}
	tp := mockcore.NewFixedTimeProvider(fixedNow)
	logger := mockcore.NewRelaxedLogger()

	return NewCampaignService(campaignRepo, userRepo, reviewRepo, tp, logger), campaignRepo, userRepo, reviewRepo
}

func TestCreateCampaign(t *testing.T) {
	ctx := context.Background()
	deadline := fixedNow.AddDate(0, 3, 0)

	input := usecase.CreateCampaignInput{
		OwnerID:      7,
		Title:        "Solar Microgrid",
		Description:  "Village-scale solar",
		Category:     "energy",
		TargetAmount: "900.00",
		Deadline:     deadline,
	}

	t.Run("entrepreneur creates an active campaign", func(t *testing.T) {
		service, campaignRepo, userRepo := newService()
		userRepo.On("GetByID", mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Role: entity.RoleEntrepreneur}, nil).Once()
		campaignRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		campaign, err := service.CreateCampaign(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, entity.CampaignStatusActive, campaign.Status)
		assert.Equal(t, int64(90000), campaign.TargetAmount)
		assert.Equal(t, int64(0), campaign.CurrentAmount)
		assert.Equal(t, int64(0), campaign.InvestorCount)
	})

	t.Run("explicit draft starts hidden from investors", func(t *testing.T) {
		service, campaignRepo, userRepo := newService()
		userRepo.On("GetByID", mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Role: entity.RoleEntrepreneur}, nil).Once()
		campaignRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		draft := input
		draft.Draft = true
		campaign, err := service.CreateCampaign(ctx, draft)

		assert.NoError(t, err)
		assert.Equal(t, entity.CampaignStatusDraft, campaign.Status)
		assert.False(t, campaign.IsActive())
	})

	t.Run("investor cannot create a campaign", func(t *testing.T) {
		service, campaignRepo, userRepo := newService()
		userRepo.On("GetByID", mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Role: entity.RoleInvestor}, nil).Once()

		_, err := service.CreateCampaign(ctx, input)

		assert.ErrorIs(t, err, errs.ErrForbidden)
		campaignRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid target amount is rejected", func(t *testing.T) {
		service, campaignRepo, userRepo := newService()
		userRepo.On("GetByID", mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Role: entity.RoleEntrepreneur}, nil).Once()

		bad := input
		bad.TargetAmount = "0"
		_, err := service.CreateCampaign(ctx, bad)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		campaignRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateCampaign(t *testing.T) {
	ctx := context.Background()

	existing := func() *entity.Campaign {
		return &entity.Campaign{
			ID:            1,
			OwnerID:       7,
			Title:         "Solar Microgrid",
			CurrentAmount: 5000,
			InvestorCount: 2,
			Status:        entity.CampaignStatusActive,
		}
	}

	t.Run("owner can edit content fields", func(t *testing.T) {
		service, campaignRepo, _ := newService()
		campaignRepo.On("GetByID", mock.Anything, uint64(1)).Return(existing(), nil).Once()
		campaignRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		title := "Solar Microgrid v2"
		updated, err := service.UpdateCampaign(ctx, 1, 7, entity.RoleEntrepreneur, usecase.UpdateCampaignInput{Title: &title})

		assert.NoError(t, err)
		assert.Equal(t, "Solar Microgrid v2", updated.Title)
		// Aggregates survive content edits untouched
		assert.Equal(t, int64(5000), updated.CurrentAmount)
		assert.Equal(t, int64(2), updated.InvestorCount)
		assert.Equal(t, entity.CampaignStatusActive, updated.Status)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		service, campaignRepo, _ := newService()
		campaignRepo.On("GetByID", mock.Anything, uint64(1)).Return(existing(), nil).Once()

		title := "hijacked"
		_, err := service.UpdateCampaign(ctx, 1, 99, entity.RoleEntrepreneur, usecase.UpdateCampaignInput{Title: &title})

		assert.ErrorIs(t, err, errs.ErrForbidden)
		campaignRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("admin can edit any campaign", func(t *testing.T) {
		service, campaignRepo, _ := newService()
		campaignRepo.On("GetByID", mock.Anything, uint64(1)).Return(existing(), nil).Once()
		campaignRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		category := "infrastructure"
		updated, err := service.UpdateCampaign(ctx, 1, 2, entity.RoleAdmin, usecase.UpdateCampaignInput{Category: &category})

		assert.NoError(t, err)
		assert.Equal(t, "infrastructure", updated.Category)
	})
}

func TestActivateCampaign(t *testing.T) {
	ctx := context.Background()

	draft := func() *entity.Campaign {
		return &entity.Campaign{ID: 3, OwnerID: 7, Status: entity.CampaignStatusDraft, TargetAmount: 90000}
	}

	t.Run("owner activates a draft", func(t *testing.T) {
		service, campaignRepo, _ := newService()
		campaignRepo.On("GetByID", mock.Anything, uint64(3)).Return(draft(), nil).Once()
		campaignRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		campaign, err := service.ActivateCampaign(ctx, 3, 7, entity.RoleEntrepreneur)

		assert.NoError(t, err)
		assert.Equal(t, entity.CampaignStatusActive, campaign.Status)
	})

	t.Run("non-owner cannot activate", func(t *testing.T) {
		service, campaignRepo, _ := newService()
		campaignRepo.On("GetByID", mock.Anything, uint64(3)).Return(draft(), nil).Once()

		_, err := service.ActivateCampaign(ctx, 3, 99, entity.RoleInvestor)

		assert.ErrorIs(t, err, errs.ErrForbidden)
		campaignRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("active campaign cannot be re-activated", func(t *testing.T) {
		service, campaignRepo, _ := newService()
		active := draft()
		active.Status = entity.CampaignStatusActive
		campaignRepo.On("GetByID", mock.Anything, uint64(3)).Return(active, nil).Once()

		_, err := service.ActivateCampaign(ctx, 3, 7, entity.RoleEntrepreneur)

		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
		campaignRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUpdateTargetAmount(t *testing.T) {
	ctx := context.Background()

	t.Run("target is editable while draft", func(t *testing.T) {
		service, campaignRepo, _ := newService()
		campaignRepo.On("GetByID", mock.Anything, uint64(3)).Return(&entity.Campaign{ID: 3, OwnerID: 7, Status: entity.CampaignStatusDraft, TargetAmount: 90000}, nil).Once()
		campaignRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		target := "1200.00"
		updated, err := service.UpdateCampaign(ctx, 3, 7, entity.RoleEntrepreneur, usecase.UpdateCampaignInput{TargetAmount: &target})

		assert.NoError(t, err)
		assert.Equal(t, int64(120000), updated.TargetAmount)
	})

	t.Run("target is frozen once active", func(t *testing.T) {
		service, campaignRepo, _ := newService()
		campaignRepo.On("GetByID", mock.Anything, uint64(3)).Return(&entity.Campaign{ID: 3, OwnerID: 7, Status: entity.CampaignStatusActive, TargetAmount: 90000}, nil).Once()

		target := "1200.00"
		_, err := service.UpdateCampaign(ctx, 3, 7, entity.RoleEntrepreneur, usecase.UpdateCampaignInput{TargetAmount: &target})

		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
		campaignRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestOverrideCampaignStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("override bypasses the funded transition", func(t *testing.T) {
		service, campaignRepo, _ := newService()
		campaign := &entity.Campaign{ID: 1, OwnerID: 7, Status: entity.CampaignStatusFunded}
		campaignRepo.On("GetByID", mock.Anything, uint64(1)).Return(campaign, nil).Once()
		campaignRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		updated, err := service.OverrideCampaignStatus(ctx, 1, entity.CampaignStatusClosed)

		assert.NoError(t, err)
		assert.Equal(t, entity.CampaignStatusClosed, updated.Status)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		service, campaignRepo, _ := newService()
		campaignRepo.On("GetByID", mock.Anything, uint64(9)).Return(nil, errs.ErrCampaignNotFound).Once()

		_, err := service.OverrideCampaignStatus(ctx, 9, entity.CampaignStatusClosed)

		assert.ErrorIs(t, err, errs.ErrCampaignNotFound)
	})
}

func TestAddReview(t *testing.T) {
	ctx := context.Background()

	t.Run("review lands on an existing campaign", func(t *testing.T) {
		service, campaignRepo, _, reviewRepo := newServiceWithReviews()
		campaignRepo.On("GetByID", mock.Anything, uint64(1)).Return(&entity.Campaign{ID: 1, OwnerID: 7}, nil).Once()
		reviewRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		review, err := service.AddReview(ctx, 1, 42, 4, "Solid team, clear roadmap")

		assert.NoError(t, err)
		assert.Equal(t, uint64(1), review.CampaignID)
		assert.Equal(t, uint64(42), review.AuthorID)
		assert.Equal(t, 4, review.Rating)
	})

	t.Run("rating outside 1..5 is rejected", func(t *testing.T) {
		service, campaignRepo, _, reviewRepo := newServiceWithReviews()
		campaignRepo.On("GetByID", mock.Anything, uint64(1)).Return(&entity.Campaign{ID: 1}, nil).Once()

		_, err := service.AddReview(ctx, 1, 42, 6, "too enthusiastic")

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown campaign takes no review", func(t *testing.T) {
		service, campaignRepo, _, reviewRepo := newServiceWithReviews()
		campaignRepo.On("GetByID", mock.Anything, uint64(9)).Return(nil, errs.ErrCampaignNotFound).Once()

		_, err := service.AddReview(ctx, 9, 42, 5, "great")

		assert.ErrorIs(t, err, errs.ErrCampaignNotFound)
		reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
