package usecase

import (
	"context"

	"github.com/launchvest/launchvest/internal/domain/entity"
)

// PlatformStats aggregates platform-wide counters for the admin dashboard
type PlatformStats struct {
	TotalUsers        int64
	TotalCampaigns    int64
	TotalInvestments  int64
	TotalVolume       int64 // cents
	ActiveCampaigns   int64
	FundedCampaigns   int64
	CampaignsByStatus map[entity.CampaignStatus]int64
}

// EntrepreneurDashboard summarizes one entrepreneur's campaigns
type EntrepreneurDashboard struct {
	Campaigns      []*entity.Campaign
	CampaignCount  int64
	TotalRaised    int64 // cents
	TotalInvestors int64
}

// InvestorInvestment is an investment enriched with campaign context
type InvestorInvestment struct {
	Investment     *entity.Investment
	CampaignTitle  string
	CampaignStatus entity.CampaignStatus
}

// InvestorDashboard summarizes one investor's portfolio
type InvestorDashboard struct {
	Investments     []*InvestorInvestment
	InvestmentCount int64
	TotalInvested   int64 // cents
}

// ReportUseCase defines methods for dashboard and reporting operations
type ReportUseCase interface {
	// GetPlatformStats computes platform-wide counters. Admin only.
	GetPlatformStats(ctx context.Context) (*PlatformStats, error)

	// GetEntrepreneurDashboard summarizes the requester's campaigns
	GetEntrepreneurDashboard(ctx context.Context, ownerID uint64) (*EntrepreneurDashboard, error)

	// GetInvestorDashboard summarizes the requester's investments,
	// each enriched with its campaign title and status
	GetInvestorDashboard(ctx context.Context, investorID uint64) (*InvestorDashboard, error)
}
