package usecase

import (
	"context"

	"github.com/launchvest/launchvest/internal/domain/entity"
	"github.com/launchvest/launchvest/internal/domain/port/persistence"
)

// InvestmentRequest represents an incoming investment request
type InvestmentRequest struct {
	CampaignID uint64
	InvestorID uint64
	Amount     string // decimal string, e.g. "250.00"
}

// InvestmentResult contains the outcome of an accepted investment,
// including the campaign aggregates as of the commit
type InvestmentResult struct {
	Investment *entity.Investment
	Campaign   *entity.Campaign
}

// InvestmentUseCase defines methods for investment-related business operations
type InvestmentUseCase interface {
	// ProcessInvestment validates and applies an investment transaction.
	// Requests for the same campaign are processed strictly in arrival
	// order; every accepted request creates a new investment record.
	ProcessInvestment(ctx context.Context, req InvestmentRequest) (*InvestmentResult, error)

	// GetInvestment retrieves a single investment. Only the investor,
	// the campaign owner, or an admin may read it.
	GetInvestment(ctx context.Context, id uint64, requesterID uint64, requesterRole entity.Role) (*entity.Investment, error)

	// ListInvestments retrieves investments matching the filter.
	// Non-admin requesters are scoped to their own investments.
	ListInvestments(ctx context.Context, filter persistence.InvestmentFilter, requesterID uint64, requesterRole entity.Role) ([]*entity.Investment, int64, error)

	// OverrideInvestmentStatus force-sets an investment's status.
	// Admin only; does not re-run campaign aggregate updates.
	OverrideInvestmentStatus(ctx context.Context, id uint64, status entity.InvestmentStatus) (*entity.Investment, error)
}
