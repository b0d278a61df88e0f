package dto

import (
	"github.com/launchvest/launchvest/internal/domain/entity"
	"github.com/launchvest/launchvest/internal/domain/port/usecase"
)

// PlatformStatsResponse is the admin view of platform-wide counters
type PlatformStatsResponse struct {
	TotalUsers        int64            `json:"totalUsers"`
	TotalCampaigns    int64            `json:"totalCampaigns"`
	TotalInvestments  int64            `json:"totalInvestments"`
	TotalVolume       string           `json:"totalVolume"`
	ActiveCampaigns   int64            `json:"activeCampaigns"`
	FundedCampaigns   int64            `json:"fundedCampaigns"`
	CampaignsByStatus map[string]int64 `json:"campaignsByStatus"`
}

// NewPlatformStatsResponse maps the platform stats to their API representation
func NewPlatformStatsResponse(stats *usecase.PlatformStats) PlatformStatsResponse {
	byStatus := make(map[string]int64, len(stats.CampaignsByStatus))
	for status, count := range stats.CampaignsByStatus {
		byStatus[status.String()] = count
	}

	return PlatformStatsResponse{
		TotalUsers:        stats.TotalUsers,
		TotalCampaigns:    stats.TotalCampaigns,
		TotalInvestments:  stats.TotalInvestments,
		TotalVolume:       entity.FormatAmount(stats.TotalVolume),
		ActiveCampaigns:   stats.ActiveCampaigns,
		FundedCampaigns:   stats.FundedCampaigns,
		CampaignsByStatus: byStatus,
	}
}

// EntrepreneurDashboardResponse summarizes the requester's campaigns
type EntrepreneurDashboardResponse struct {
	Campaigns      []CampaignResponse `json:"campaigns"`
	CampaignCount  int64              `json:"campaignCount"`
	TotalRaised    string             `json:"totalRaised"`
	TotalInvestors int64              `json:"totalInvestors"`
}

// NewEntrepreneurDashboardResponse maps the entrepreneur dashboard
func NewEntrepreneurDashboardResponse(dash *usecase.EntrepreneurDashboard) EntrepreneurDashboardResponse {
	return EntrepreneurDashboardResponse{
		Campaigns:      NewCampaignListResponse(dash.Campaigns),
		CampaignCount:  dash.CampaignCount,
		TotalRaised:    entity.FormatAmount(dash.TotalRaised),
		TotalInvestors: dash.TotalInvestors,
	}
}

// InvestorInvestmentResponse is an investment enriched with campaign context
type InvestorInvestmentResponse struct {
	Investment     InvestmentResponse `json:"investment"`
	CampaignTitle  string             `json:"campaignTitle,omitempty"`
	CampaignStatus string             `json:"campaignStatus,omitempty"`
}

// InvestorDashboardResponse summarizes the requester's portfolio
type InvestorDashboardResponse struct {
	Investments     []InvestorInvestmentResponse `json:"investments"`
	InvestmentCount int64                        `json:"investmentCount"`
	TotalInvested   string                       `json:"totalInvested"`
}

// NewInvestorDashboardResponse maps the investor dashboard
func NewInvestorDashboardResponse(dash *usecase.InvestorDashboard) InvestorDashboardResponse {
	investments := make([]InvestorInvestmentResponse, 0, len(dash.Investments))
	for _, item := range dash.Investments {
		investments = append(investments, InvestorInvestmentResponse{
			Investment:     NewInvestmentResponse(item.Investment),
			CampaignTitle:  item.CampaignTitle,
			CampaignStatus: item.CampaignStatus.String(),
		})
	}

	return InvestorDashboardResponse{
		Investments:     investments,
		InvestmentCount: dash.InvestmentCount,
		TotalInvested:   entity.FormatAmount(dash.TotalInvested),
	}
}
