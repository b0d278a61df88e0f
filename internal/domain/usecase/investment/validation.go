package investment

import (
	"fmt"

	"github.com/launchvest/launchvest/internal/domain/entity"
	errs "github.com/launchvest/launchvest/internal/domain/error"
	"github.com/launchvest/launchvest/internal/domain/port/usecase"
)

// InvestmentValidator provides validation for investment requests
type InvestmentValidator struct{}

// NewInvestmentValidator creates a new InvestmentValidator
func NewInvestmentValidator() *InvestmentValidator {
	return &InvestmentValidator{}
}

// ValidateRequest checks the request shape and returns the amount in
// cents. Amount validation runs before any campaign lookup so malformed
// requests are rejected without touching the database.
func (v *InvestmentValidator) ValidateRequest(req usecase.InvestmentRequest) (int64, error) {
	if req.CampaignID == 0 {
		return 0, fmt.Errorf("%w: campaignId is required", errs.ErrMissingField)
	}

	if req.InvestorID == 0 {
		return 0, fmt.Errorf("%w: investorId is required", errs.ErrMissingField)
	}

	if req.Amount == "" {
		return 0, fmt.Errorf("%w: amount is required", errs.ErrMissingField)
	}

	cents, err := entity.ParsePositiveAmount(req.Amount)
	if err != nil {
		return 0, err
	}

	return cents, nil
}
