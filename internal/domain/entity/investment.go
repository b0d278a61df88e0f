package entity

import (
	"strings"
	"time"

	errs "github.com/launchvest/launchvest/internal/domain/error"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
)

// InvestmentStatus is the closed set of investment states
type InvestmentStatus string

const (
	InvestmentStatusPending   InvestmentStatus = "pending"
	InvestmentStatusApproved  InvestmentStatus = "approved"
	InvestmentStatusCompleted InvestmentStatus = "completed"
	InvestmentStatusRejected  InvestmentStatus = "rejected"
)

// ParseInvestmentStatus converts a raw string to an InvestmentStatus
func ParseInvestmentStatus(raw string) (InvestmentStatus, error) {
	switch InvestmentStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case InvestmentStatusPending:
		return InvestmentStatusPending, nil
	case InvestmentStatusApproved:
		return InvestmentStatusApproved, nil
	case InvestmentStatusCompleted:
		return InvestmentStatusCompleted, nil
	case InvestmentStatusRejected:
		return InvestmentStatusRejected, nil
	default:
		return "", errs.ErrInvalidStatus
	}
}

// String returns the wire representation of the status
func (s InvestmentStatus) String() string {
	return string(s)
}

// Investment records a single investor contribution to a campaign.
// TransactionID is the externally visible receipt identifier; every
// accepted investment gets a fresh one, repeated submissions included.
type Investment struct {
	ID            uint64
	CampaignID    uint64
	InvestorID    uint64
	Amount        int64
	Status        InvestmentStatus
	TransactionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewInvestment creates a completed investment record with the given
// receipt identifier. Amount validation happens before this point.
func NewInvestment(campaignID, investorID uint64, amountCents int64, transactionID string, timeProvider coreport.TimeProvider) (*Investment, error) {
	if amountCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if transactionID == "" {
		return nil, errs.ErrMissingField
	}

	now := timeProvider.Now()
	return &Investment{
		CampaignID:    campaignID,
		InvestorID:    investorID,
		Amount:        amountCents,
		Status:        InvestmentStatusCompleted,
		TransactionID: transactionID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
