package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/launchvest/launchvest/internal/domain/entity"
	"github.com/launchvest/launchvest/internal/domain/port/persistence"
	mockcore "github.com/launchvest/launchvest/mocks/port/core"
	mockpersistence "github.com/launchvest/launchvest/mocks/port/persistence"
)

type reportFixture struct {
	service        *Service
	userRepo       *mockpersistence.MockUserRepository
	campaignRepo   *mockpersistence.MockCampaignRepository
	investmentRepo *mockpersistence.MockInvestmentRepository
}

func newReportFixture() *reportFixture {
	userRepo := &mockpersistence.MockUserRepository{}
	campaignRepo := &mockpersistence.MockCampaignRepository{}
	investmentRepo := &mockpersistence.MockInvestmentRepository{}
	logger := mockcore.NewRelaxedLogger()

	return &reportFixture{
		service:        NewReportService(userRepo, campaignRepo, investmentRepo, logger),
		userRepo:       userRepo,
		campaignRepo:   campaignRepo,
		investmentRepo: investmentRepo,
	}
}

func TestGetPlatformStats(t *testing.T) {
	f := newReportFixture()

	f.userRepo.On("Count", mock.Anything).Return(int64(120), nil).Once()
	f.campaignRepo.On("Count", mock.Anything).Return(int64(15), nil).Once()
	f.investmentRepo.On("Count", mock.Anything).Return(int64(300), nil).Once()
	f.investmentRepo.On("TotalVolume", mock.Anything).Return(int64(4_500_000), nil).Once()
	f.campaignRepo.On("CountByStatus", mock.Anything).Return(map[entity.CampaignStatus]int64{
		entity.CampaignStatusActive: 9,
		entity.CampaignStatusFunded: 4,
		entity.CampaignStatusClosed: 2,
	}, nil).Once()

	stats, err := f.service.GetPlatformStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalUsers)
	assert.Equal(t, int64(15), stats.TotalCampaigns)
	assert.Equal(t, int64(300), stats.TotalInvestments)
	assert.Equal(t, int64(4_500_000), stats.TotalVolume)
	assert.Equal(t, int64(9), stats.ActiveCampaigns)
	assert.Equal(t, int64(4), stats.FundedCampaigns)
}

func TestGetEntrepreneurDashboard(t *testing.T) {
	f := newReportFixture()

	campaigns := []*entity.Campaign{
		{ID: 1, OwnerID: 7, CurrentAmount: 50000, InvestorCount: 5},
		{ID: 2, OwnerID: 7, CurrentAmount: 25000, InvestorCount: 2},
	}
	f.campaignRepo.On("List", mock.Anything, mock.MatchedBy(func(filter persistence.CampaignFilter) bool {
		return filter.OwnerID == 7
	})).Return(campaigns, int64(2), nil).Once()

	dashboard, err := f.service.GetEntrepreneurDashboard(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), dashboard.CampaignCount)
	assert.Equal(t, int64(75000), dashboard.TotalRaised)
	assert.Equal(t, int64(7), dashboard.TotalInvestors)
}

func TestGetInvestorDashboard(t *testing.T) {
	f := newReportFixture()

	investments := []*entity.Investment{
		{ID: 1, CampaignID: 1, InvestorID: 42, Amount: 10000},
		{ID: 2, CampaignID: 1, InvestorID: 42, Amount: 5000},
		{ID: 3, CampaignID: 2, InvestorID: 42, Amount: 20000},
	}
	f.investmentRepo.On("List", mock.Anything, mock.MatchedBy(func(filter persistence.InvestmentFilter) bool {
		return filter.InvestorID == 42
	})).Return(investments, int64(3), nil).Once()

	// Each campaign resolved exactly once despite repeats
	f.campaignRepo.On("GetByID", mock.Anything, uint64(1)).Return(&entity.Campaign{ID: 1, Title: "Solar Microgrid", Status: entity.CampaignStatusActive}, nil).Once()
	f.campaignRepo.On("GetByID", mock.Anything, uint64(2)).Return(&entity.Campaign{ID: 2, Title: "River Cleanup", Status: entity.CampaignStatusFunded}, nil).Once()

	dashboard, err := f.service.GetInvestorDashboard(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), dashboard.InvestmentCount)
	assert.Equal(t, int64(35000), dashboard.TotalInvested)
	assert.Len(t, dashboard.Investments, 3)
	assert.Equal(t, "Solar Microgrid", dashboard.Investments[0].CampaignTitle)
	assert.Equal(t, entity.CampaignStatusFunded, dashboard.Investments[2].CampaignStatus)
	f.campaignRepo.AssertExpectations(t)
}
