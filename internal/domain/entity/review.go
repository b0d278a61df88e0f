package entity

import (
	"strings"
	"time"

	errs "github.com/launchvest/launchvest/internal/domain/error"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
)

// Review is a rated comment an investor leaves on a campaign
type Review struct {
	ID         uint64
	CampaignID uint64
	AuthorID   uint64
	Rating     int
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewReview creates a review, rejecting ratings outside the 1..5 scale
// and empty comments
func NewReview(campaignID, authorID uint64, rating int, comment string, timeProvider coreport.TimeProvider) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, errs.ErrInvalidRequest
	}
	if strings.TrimSpace(comment) == "" {
		return nil, errs.ErrMissingField
	}

	now := timeProvider.Now()
	return &Review{
		CampaignID: campaignID,
		AuthorID:   authorID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
