package dto

import (
	"time"

	"github.com/launchvest/launchvest/internal/domain/entity"
)

// CreateCampaignRequest represents the API request for opening a campaign.
// Amounts travel as decimal strings to avoid floating point drift.
type CreateCampaignRequest struct {
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description" binding:"required"`
	Category     string    `json:"category"`
	TargetAmount string    `json:"targetAmount" binding:"required"`
	Deadline     time.Time `json:"deadline" binding:"required"`
	ImageURL     string    `json:"imageUrl"`
	Status       string    `json:"status" binding:"omitempty,oneof=draft active"`
}

// UpdateCampaignRequest represents the API request for editing campaign
// content. Absent fields are left unchanged; aggregates and status are
// not editable here.
type UpdateCampaignRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Category     *string    `json:"category"`
	ImageURL     *string    `json:"imageUrl"`
	Deadline     *time.Time `json:"deadline"`
	TargetAmount *string    `json:"targetAmount"`
}

// OverrideCampaignStatusRequest represents the admin request for
// force-setting a campaign's status
type OverrideCampaignStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CampaignResponse is the API view of a campaign, with money fields
// formatted as two-decimal strings
type CampaignResponse struct {
	ID            uint64    `json:"id"`
	OwnerID       uint64    `json:"ownerId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category,omitempty"`
	TargetAmount  string    `json:"targetAmount"`
	CurrentAmount string    `json:"currentAmount"`
	InvestorCount int64     `json:"investorCount"`
	Deadline      time.Time `json:"deadline"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewCampaignResponse maps a campaign entity to its API representation
func NewCampaignResponse(campaign *entity.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:            campaign.ID,
		OwnerID:       campaign.OwnerID,
		Title:         campaign.Title,
		Description:   campaign.Description,
		Category:      campaign.Category,
		TargetAmount:  entity.FormatAmount(campaign.TargetAmount),
		CurrentAmount: entity.FormatAmount(campaign.CurrentAmount),
		InvestorCount: campaign.InvestorCount,
		Deadline:      campaign.Deadline,
		ImageURL:      campaign.ImageURL,
		Status:        campaign.Status.String(),
		CreatedAt:     campaign.CreatedAt,
		UpdatedAt:     campaign.UpdatedAt,
	}
}

// NewCampaignListResponse maps a slice of campaign entities
func NewCampaignListResponse(campaigns []*entity.Campaign) []CampaignResponse {
	out := make([]CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, NewCampaignResponse(c))
	}
	return out
}

// CreateReviewRequest represents the API request for reviewing a campaign
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// ReviewResponse is the API view of a campaign review
type ReviewResponse struct {
	ID         uint64    `json:"id"`
	CampaignID uint64    `json:"campaignId"`
	AuthorID   uint64    `json:"authorId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewReviewResponse maps a review entity to its API representation
func NewReviewResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID,
		CampaignID: review.CampaignID,
		AuthorID:   review.AuthorID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}
}

// NewReviewListResponse maps a slice of review entities
func NewReviewListResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, NewReviewResponse(r))
	}
	return out
}
