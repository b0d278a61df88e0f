package report

import (
	"context"
	"errors"

	"github.com/launchvest/launchvest/internal/domain/entity"
	errs "github.com/launchvest/launchvest/internal/domain/error"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	"github.com/launchvest/launchvest/internal/domain/port/persistence"
	"github.com/launchvest/launchvest/internal/domain/port/usecase"
)

// maxDashboardItems bounds the detail rows returned per dashboard
const maxDashboardItems = 100

// Service implements dashboard and reporting operations
type Service struct {
	userRepo       persistence.UserRepository
	campaignRepo   persistence.CampaignRepository
	investmentRepo persistence.InvestmentRepository
	logger         coreport.Logger
}

// NewReportService creates a new report service
func NewReportService(
	userRepo persistence.UserRepository,
	campaignRepo persistence.CampaignRepository,
	investmentRepo persistence.InvestmentRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:       userRepo,
		campaignRepo:   campaignRepo,
		investmentRepo: investmentRepo,
		logger:         logger,
	}
}

// GetPlatformStats computes platform-wide counters from aggregate
// queries; nothing here loads row sets into memory
func (s *Service) GetPlatformStats(ctx context.Context) (*usecase.PlatformStats, error) {
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalCampaigns, err := s.campaignRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalInvestments, err := s.investmentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalVolume, err := s.investmentRepo.TotalVolume(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.campaignRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.PlatformStats{
		TotalUsers:        totalUsers,
		TotalCampaigns:    totalCampaigns,
		TotalInvestments:  totalInvestments,
		TotalVolume:       totalVolume,
		ActiveCampaigns:   byStatus[entity.CampaignStatusActive],
		FundedCampaigns:   byStatus[entity.CampaignStatusFunded],
		CampaignsByStatus: byStatus,
	}, nil
}

// GetEntrepreneurDashboard summarizes the requester's campaigns.
// Totals come from the denormalized campaign aggregates.
func (s *Service) GetEntrepreneurDashboard(ctx context.Context, ownerID uint64) (*usecase.EntrepreneurDashboard, error) {
	campaigns, total, err := s.campaignRepo.List(ctx, persistence.CampaignFilter{
		OwnerID:     ownerID,
		ListOptions: persistence.ListOptions{Page: 1, Limit: maxDashboardItems},
	})
	if err != nil {
		return nil, err
	}

	dashboard := &usecase.EntrepreneurDashboard{
		Campaigns:     campaigns,
		CampaignCount: total,
	}
	for _, c := range campaigns {
		dashboard.TotalRaised += c.CurrentAmount
		dashboard.TotalInvestors += c.InvestorCount
	}

	return dashboard, nil
}

// GetInvestorDashboard summarizes the requester's investments, each
// enriched with its campaign title and status
func (s *Service) GetInvestorDashboard(ctx context.Context, investorID uint64) (*usecase.InvestorDashboard, error) {
	investments, total, err := s.investmentRepo.List(ctx, persistence.InvestmentFilter{
		InvestorID:  investorID,
		ListOptions: persistence.ListOptions{Page: 1, Limit: maxDashboardItems},
	})
	if err != nil {
		return nil, err
	}

	dashboard := &usecase.InvestorDashboard{
		Investments:     make([]*usecase.InvestorInvestment, 0, len(investments)),
		InvestmentCount: total,
	}

	// Campaigns repeat across investments, so resolve each one once
	campaignCache := make(map[uint64]*entity.Campaign)
	for _, inv := range investments {
		dashboard.TotalInvested += inv.Amount

		campaign, ok := campaignCache[inv.CampaignID]
		if !ok {
			campaign, err = s.campaignRepo.GetByID(ctx, inv.CampaignID)
			if err != nil {
				if errors.Is(err, errs.ErrCampaignNotFound) {
					// Keep the row; the campaign may have been removed
					s.logger.Warn("Investment references missing campaign", map[string]any{
						"investment_id": inv.ID,
						"campaign_id":   inv.CampaignID,
					})
					campaign = nil
				} else {
					return nil, err
				}
			}
			campaignCache[inv.CampaignID] = campaign
		}

		enriched := &usecase.InvestorInvestment{Investment: inv}
		if campaign != nil {
			enriched.CampaignTitle = campaign.Title
			enriched.CampaignStatus = campaign.Status
		}
		dashboard.Investments = append(dashboard.Investments, enriched)
	}

	return dashboard, nil
}
