package investment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/launchvest/launchvest/internal/domain/entity"
	errs "github.com/launchvest/launchvest/internal/domain/error"
	"github.com/launchvest/launchvest/internal/domain/port/persistence"
	"github.com/launchvest/launchvest/internal/domain/port/usecase"
	mockcore "github.com/launchvest/launchvest/mocks/port/core"
	mockpersistence "github.com/launchvest/launchvest/mocks/port/persistence"
)

type serviceFixture struct {
	service        *Service
	uow            *mockpersistence.MockUnitOfWork
	campaignRepo   *mockpersistence.MockCampaignRepository
	investmentRepo *mockpersistence.MockInvestmentRepository
	publisher      *mockcore.MockEventPublisher
}

func newServiceFixture(t *testing.T) *serviceFixture {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := mockcore.NewFixedTimeProvider(now)
	logger := mockcore.NewRelaxedLogger()

	uow := &mockpersistence.MockUnitOfWork{}
	campaignRepo := &mockpersistence.MockCampaignRepository{}
	investmentRepo := &mockpersistence.MockInvestmentRepository{}
	publisher := &mockcore.MockEventPublisher{}

	uow.On("Begin", mock.Anything).Return(context.Background(), nil).Maybe()
	uow.On("GetCampaignRepository", mock.Anything).Return(campaignRepo).Maybe()
	uow.On("GetInvestmentRepository", mock.Anything).Return(investmentRepo).Maybe()

	service := NewInvestmentService(uow, investmentRepo, campaignRepo, publisher, tp, logger)
	t.Cleanup(service.Shutdown)

	return &serviceFixture{
		service:        service,
		uow:            uow,
		campaignRepo:   campaignRepo,
		investmentRepo: investmentRepo,
		publisher:      publisher,
	}
}

func activeCampaign(id, ownerID uint64, target, current int64) *entity.Campaign {
	return &entity.Campaign{
		ID:            id,
		OwnerID:       ownerID,
		Title:         "Solar Microgrid",
		TargetAmount:  target,
		CurrentAmount: current,
		InvestorCount: 3,
		Status:        entity.CampaignStatusActive,
	}
}

func TestProcessInvestment(t *testing.T) {
	ctx := context.Background()

	t.Run("investment reaching target flips campaign to funded", func(t *testing.T) {
		f := newServiceFixture(t)
		campaign := activeCampaign(1, 7, 100000, 90000)

		f.campaignRepo.On("GetByIDForUpdate", mock.Anything, uint64(1)).Return(campaign, nil).Once()
		f.investmentRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.campaignRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
		f.uow.On("Commit", mock.Anything).Return(nil).Once()
		f.publisher.On("PublishInvestmentCompleted", mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.ProcessInvestment(ctx, usecase.InvestmentRequest{
			CampaignID: 1,
			InvestorID: 42,
			Amount:     "100.00",
		})

		assert.NoError(t, err)
		assert.Equal(t, entity.CampaignStatusFunded, result.Campaign.Status)
		assert.Equal(t, int64(100000), result.Campaign.CurrentAmount)
		assert.Equal(t, int64(4), result.Campaign.InvestorCount)
		assert.Equal(t, entity.InvestmentStatusCompleted, result.Investment.Status)
		assert.NotEmpty(t, result.Investment.TransactionID)
		f.uow.AssertNotCalled(t, "Rollback", mock.Anything)
	})

	t.Run("partial investment keeps campaign active", func(t *testing.T) {
		f := newServiceFixture(t)
		campaign := activeCampaign(1, 7, 100000, 90000)

		f.campaignRepo.On("GetByIDForUpdate", mock.Anything, uint64(1)).Return(campaign, nil).Once()
		f.investmentRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.campaignRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
		f.uow.On("Commit", mock.Anything).Return(nil).Once()
		f.publisher.On("PublishInvestmentCompleted", mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.ProcessInvestment(ctx, usecase.InvestmentRequest{
			CampaignID: 1,
			InvestorID: 42,
			Amount:     "50.00",
		})

		assert.NoError(t, err)
		assert.Equal(t, entity.CampaignStatusActive, result.Campaign.Status)
		assert.Equal(t, int64(95000), result.Campaign.CurrentAmount)
	})

	t.Run("self-investment is rejected without writes", func(t *testing.T) {
		f := newServiceFixture(t)
		campaign := activeCampaign(1, 7, 100000, 0)

		f.campaignRepo.On("GetByIDForUpdate", mock.Anything, uint64(1)).Return(campaign, nil).Once()
		f.uow.On("Rollback", mock.Anything).Return(nil).Once()

		_, err := f.service.ProcessInvestment(ctx, usecase.InvestmentRequest{
			CampaignID: 1,
			InvestorID: 7, // campaign owner
			Amount:     "100.00",
		})

		assert.ErrorIs(t, err, errs.ErrSelfInvestment)
		f.investmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.campaignRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("inactive campaign is rejected", func(t *testing.T) {
		f := newServiceFixture(t)
		campaign := activeCampaign(1, 7, 100000, 100000)
		campaign.Status = entity.CampaignStatusFunded

		f.campaignRepo.On("GetByIDForUpdate", mock.Anything, uint64(1)).Return(campaign, nil).Once()
		f.uow.On("Rollback", mock.Anything).Return(nil).Once()

		_, err := f.service.ProcessInvestment(ctx, usecase.InvestmentRequest{
			CampaignID: 1,
			InvestorID: 42,
			Amount:     "100.00",
		})

		assert.ErrorIs(t, err, errs.ErrCampaignNotActive)
		var invErr *errs.InvestmentError
		assert.ErrorAs(t, err, &invErr)
		assert.Equal(t, "100.00", invErr.Amount)
		f.investmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown campaign is rejected", func(t *testing.T) {
		f := newServiceFixture(t)

		f.campaignRepo.On("GetByIDForUpdate", mock.Anything, uint64(99)).Return(nil, errs.ErrCampaignNotFound).Once()
		f.uow.On("Rollback", mock.Anything).Return(nil).Once()

		_, err := f.service.ProcessInvestment(ctx, usecase.InvestmentRequest{
			CampaignID: 99,
			InvestorID: 42,
			Amount:     "100.00",
		})

		assert.ErrorIs(t, err, errs.ErrCampaignNotFound)
	})

	t.Run("invalid amount never reaches the database", func(t *testing.T) {
		f := newServiceFixture(t)

		for _, amount := range []string{"", "0", "-10.00", "abc", "1.234"} {
			_, err := f.service.ProcessInvestment(ctx, usecase.InvestmentRequest{
				CampaignID: 1,
				InvestorID: 42,
				Amount:     amount,
			})
			assert.Error(t, err, "amount %q should be rejected", amount)
		}

		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("resubmitting the same payload creates a second record", func(t *testing.T) {
		f := newServiceFixture(t)
		campaign := activeCampaign(1, 7, 1000000, 0)

		var createdIDs []string
		f.campaignRepo.On("GetByIDForUpdate", mock.Anything, uint64(1)).Return(campaign, nil).Twice()
		f.investmentRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			inv := args.Get(1).(*entity.Investment)
			createdIDs = append(createdIDs, inv.TransactionID)
		}).Return(nil).Twice()
		f.campaignRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Twice()
		f.uow.On("Commit", mock.Anything).Return(nil).Twice()
		f.publisher.On("PublishInvestmentCompleted", mock.Anything, mock.Anything).Return(nil).Twice()

		req := usecase.InvestmentRequest{CampaignID: 1, InvestorID: 42, Amount: "50.00"}

		_, err := f.service.ProcessInvestment(ctx, req)
		assert.NoError(t, err)
		_, err = f.service.ProcessInvestment(ctx, req)
		assert.NoError(t, err)

		assert.Len(t, createdIDs, 2)
		assert.NotEqual(t, createdIDs[0], createdIDs[1])
		assert.Equal(t, int64(10000), campaign.CurrentAmount)
		assert.Equal(t, int64(5), campaign.InvestorCount)
	})

	t.Run("failed insert rolls the transaction back", func(t *testing.T) {
		f := newServiceFixture(t)
		campaign := activeCampaign(1, 7, 100000, 0)
		dbErr := errors.New("connection reset")

		f.campaignRepo.On("GetByIDForUpdate", mock.Anything, uint64(1)).Return(campaign, nil).Once()
		f.investmentRepo.On("Create", mock.Anything, mock.Anything).Return(dbErr).Once()
		f.uow.On("Rollback", mock.Anything).Return(nil).Once()

		_, err := f.service.ProcessInvestment(ctx, usecase.InvestmentRequest{
			CampaignID: 1,
			InvestorID: 42,
			Amount:     "100.00",
		})

		assert.ErrorIs(t, err, dbErr)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("publish failure does not fail the investment", func(t *testing.T) {
		f := newServiceFixture(t)
		campaign := activeCampaign(1, 7, 100000, 0)

		f.campaignRepo.On("GetByIDForUpdate", mock.Anything, uint64(1)).Return(campaign, nil).Once()
		f.investmentRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.campaignRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
		f.uow.On("Commit", mock.Anything).Return(nil).Once()
		f.publisher.On("PublishInvestmentCompleted", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

		result, err := f.service.ProcessInvestment(ctx, usecase.InvestmentRequest{
			CampaignID: 1,
			InvestorID: 42,
			Amount:     "25.00",
		})

		assert.NoError(t, err)
		assert.NotNil(t, result)
	})
}

func TestGetInvestment(t *testing.T) {
	ctx := context.Background()

	inv := &entity.Investment{ID: 5, CampaignID: 1, InvestorID: 42, Amount: 5000}

	t.Run("investor can read their own investment", func(t *testing.T) {
		f := newServiceFixture(t)
		f.investmentRepo.On("GetByID", mock.Anything, uint64(5)).Return(inv, nil).Once()

		got, err := f.service.GetInvestment(ctx, 5, 42, entity.RoleInvestor)
		assert.NoError(t, err)
		assert.Equal(t, inv, got)
	})

	t.Run("campaign owner can read investments into their campaign", func(t *testing.T) {
		f := newServiceFixture(t)
		f.investmentRepo.On("GetByID", mock.Anything, uint64(5)).Return(inv, nil).Once()
		f.campaignRepo.On("GetByID", mock.Anything, uint64(1)).Return(activeCampaign(1, 7, 100000, 0), nil).Once()

		got, err := f.service.GetInvestment(ctx, 5, 7, entity.RoleEntrepreneur)
		assert.NoError(t, err)
		assert.Equal(t, inv, got)
	})

	t.Run("unrelated user is forbidden", func(t *testing.T) {
		f := newServiceFixture(t)
		f.investmentRepo.On("GetByID", mock.Anything, uint64(5)).Return(inv, nil).Once()
		f.campaignRepo.On("GetByID", mock.Anything, uint64(1)).Return(activeCampaign(1, 7, 100000, 0), nil).Once()

		_, err := f.service.GetInvestment(ctx, 5, 1000, entity.RoleInvestor)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("campaign lookup failure surfaces as a storage error", func(t *testing.T) {
		f := newServiceFixture(t)
		f.investmentRepo.On("GetByID", mock.Anything, uint64(5)).Return(inv, nil).Once()
		f.campaignRepo.On("GetByID", mock.Anything, uint64(1)).Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := f.service.GetInvestment(ctx, 5, 7, entity.RoleEntrepreneur)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.NotErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("missing campaign is forbidden, not found", func(t *testing.T) {
		f := newServiceFixture(t)
		f.investmentRepo.On("GetByID", mock.Anything, uint64(5)).Return(inv, nil).Once()
		f.campaignRepo.On("GetByID", mock.Anything, uint64(1)).Return(nil, errs.ErrCampaignNotFound).Once()

		_, err := f.service.GetInvestment(ctx, 5, 7, entity.RoleEntrepreneur)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestListInvestmentsScoping(t *testing.T) {
	ctx := context.Background()

	t.Run("non-admin requests are scoped to the requester", func(t *testing.T) {
		f := newServiceFixture(t)
		f.investmentRepo.On("List", mock.Anything, mock.MatchedBy(func(filter persistence.InvestmentFilter) bool {
			return filter.InvestorID == 42
		})).Return([]*entity.Investment{}, int64(0), nil).Once()

		_, _, err := f.service.ListInvestments(ctx, persistence.InvestmentFilter{}, 42, entity.RoleInvestor)
		assert.NoError(t, err)
		f.investmentRepo.AssertExpectations(t)
	})

	t.Run("admin requests are not scoped", func(t *testing.T) {
		f := newServiceFixture(t)
		f.investmentRepo.On("List", mock.Anything, mock.MatchedBy(func(filter persistence.InvestmentFilter) bool {
			return filter.InvestorID == 0
		})).Return([]*entity.Investment{}, int64(0), nil).Once()

		_, _, err := f.service.ListInvestments(ctx, persistence.InvestmentFilter{}, 1, entity.RoleAdmin)
		assert.NoError(t, err)
		f.investmentRepo.AssertExpectations(t)
	})

	t.Run("oversized page limits are clamped", func(t *testing.T) {
		f := newServiceFixture(t)
		f.investmentRepo.On("List", mock.Anything, mock.MatchedBy(func(filter persistence.InvestmentFilter) bool {
			return filter.Limit == maxPageLimit && filter.Page == 1
		})).Return([]*entity.Investment{}, int64(0), nil).Once()

		filter := persistence.InvestmentFilter{ListOptions: persistence.ListOptions{Limit: 5000}}
		_, _, err := f.service.ListInvestments(ctx, filter, 1, entity.RoleAdmin)
		assert.NoError(t, err)
		f.investmentRepo.AssertExpectations(t)
	})
}
