package dto

import (
	"time"

	"github.com/launchvest/launchvest/internal/domain/entity"
)

// InvestmentRequest represents the API request for investing into a
// campaign. The investor is taken from the bearer token, never the body.
type InvestmentRequest struct {
	CampaignID uint64 `json:"campaignId" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
}

// OverrideInvestmentStatusRequest represents the admin request for
// force-setting an investment's status
type OverrideInvestmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// InvestmentResponse is the API view of an investment record
type InvestmentResponse struct {
	ID            uint64    `json:"id"`
	TransactionID string    `json:"transactionId"`
	CampaignID    uint64    `json:"campaignId"`
	InvestorID    uint64    `json:"investorId"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// InvestmentResultResponse is returned by a successful investment: the
// new record plus the campaign aggregates as of the commit
type InvestmentResultResponse struct {
	Investment InvestmentResponse `json:"investment"`
	Campaign   CampaignResponse   `json:"campaign"`
}

// NewInvestmentResponse maps an investment entity to its API representation
func NewInvestmentResponse(investment *entity.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:            investment.ID,
		TransactionID: investment.TransactionID,
		CampaignID:    investment.CampaignID,
		InvestorID:    investment.InvestorID,
		Amount:        entity.FormatAmount(investment.Amount),
		Status:        investment.Status.String(),
		CreatedAt:     investment.CreatedAt,
	}
}

// NewInvestmentListResponse maps a slice of investment entities
func NewInvestmentListResponse(investments []*entity.Investment) []InvestmentResponse {
	out := make([]InvestmentResponse, 0, len(investments))
	for _, inv := range investments {
		out = append(out, NewInvestmentResponse(inv))
	}
	return out
}
