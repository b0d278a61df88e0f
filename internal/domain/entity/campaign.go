package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/launchvest/launchvest/internal/domain/error"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
)

// CampaignStatus is the closed set of campaign lifecycle states
type CampaignStatus string

const (
	CampaignStatusDraft  CampaignStatus = "draft"
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusFunded CampaignStatus = "funded"
	CampaignStatusClosed CampaignStatus = "closed"
	CampaignStatusFailed CampaignStatus = "failed"
)

// ParseCampaignStatus converts a raw string to a CampaignStatus,
// rejecting anything outside the five known states
func ParseCampaignStatus(raw string) (CampaignStatus, error) {
	switch CampaignStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case CampaignStatusDraft:
		return CampaignStatusDraft, nil
	case CampaignStatusActive:
		return CampaignStatusActive, nil
	case CampaignStatusFunded:
		return CampaignStatusFunded, nil
	case CampaignStatusClosed:
		return CampaignStatusClosed, nil
	case CampaignStatusFailed:
		return CampaignStatusFailed, nil
	default:
		return "", errs.ErrInvalidStatus
	}
}

// String returns the wire representation of the status
func (s CampaignStatus) String() string {
	return string(s)
}

// Campaign represents a fundraising campaign. TargetAmount and
// CurrentAmount are denormalized aggregates in cents; CurrentAmount and
// InvestorCount are only ever mutated inside an investment transaction
// while the row is locked.
type Campaign struct {
	ID            uint64
	OwnerID       uint64
	Title         string
	Description   string
	Category      string
	TargetAmount  int64
	CurrentAmount int64
	InvestorCount int64
	Deadline      time.Time
	ImageURL      string
	Status        CampaignStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCampaign creates a campaign in the active state with zeroed aggregates
func NewCampaign(ownerID uint64, title, description, category string, targetAmount int64, deadline time.Time, imageURL string, timeProvider coreport.TimeProvider) (*Campaign, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, errs.ErrMissingField
	}
	if targetAmount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	now := timeProvider.Now()
	return &Campaign{
		OwnerID:       ownerID,
		Title:         strings.TrimSpace(title),
		Description:   description,
		Category:      category,
		TargetAmount:  targetAmount,
		CurrentAmount: 0,
		InvestorCount: 0,
		Deadline:      deadline,
		ImageURL:      imageURL,
		Status:        CampaignStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// IsActive reports whether the campaign currently accepts investments
func (c *Campaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}

// Activate moves a draft campaign into the active state
func (c *Campaign) Activate(timeProvider coreport.TimeProvider) error {
	if c.Status != CampaignStatusDraft {
		return fmt.Errorf("%w: only draft campaigns can be activated", errs.ErrInvalidStatus)
	}
	c.Status = CampaignStatusActive
	c.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplyInvestment folds an accepted investment into the campaign
// aggregates: the raised amount grows, the investor count increments,
// and the campaign flips to funded once the target is reached.
// The caller must hold the row lock for the campaign.
func (c *Campaign) ApplyInvestment(amountCents int64, timeProvider coreport.TimeProvider) {
	c.CurrentAmount += amountCents
	c.InvestorCount++
	if c.CurrentAmount >= c.TargetAmount {
		c.Status = CampaignStatusFunded
	}
	c.UpdatedAt = timeProvider.Now()
}

// ApplyContentUpdate mutates the owner-editable content fields.
// Aggregates and status are never touched here.
func (c *Campaign) ApplyContentUpdate(title, description, category, imageURL *string, deadline *time.Time, timeProvider coreport.TimeProvider) {
	if title != nil && strings.TrimSpace(*title) != "" {
		c.Title = strings.TrimSpace(*title)
	}
	if description != nil {
		c.Description = *description
	}
	if category != nil {
		c.Category = *category
	}
	if imageURL != nil {
		c.ImageURL = *imageURL
	}
	if deadline != nil {
		c.Deadline = *deadline
	}
	c.UpdatedAt = timeProvider.Now()
}
