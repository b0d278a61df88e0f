package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/launchvest/launchvest/internal/domain/entity"
	errs "github.com/launchvest/launchvest/internal/domain/error"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	"github.com/launchvest/launchvest/internal/domain/port/persistence"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ReviewRepository implements ReviewRepository interface using GORM
type ReviewRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewReviewRepository creates a new ReviewRepository instance
func NewReviewRepository(db *gorm.DB, logger coreport.Logger) *ReviewRepository {
	return &ReviewRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func reviewModelToEntity(m *model.Review) *entity.Review {
	return &entity.Review{
		ID:         m.ID,
		CampaignID: m.CampaignID,
		AuthorID:   m.AuthorID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// Create saves a new review
func (r *ReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	m := &model.Review{
		CampaignID: review.CampaignID,
		AuthorID:   review.AuthorID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		r.logger.Error("Database error when creating review", map[string]any{
			"campaign_id": review.CampaignID,
			"error":       err.Error(),
		})
		if r.errorClassifier.IsConstraintError(err) {
			return errs.ErrCampaignNotFound
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	review.ID = m.ID
	return nil
}

// ListByCampaign retrieves reviews for a campaign ordered by creation time descending
func (r *ReviewRepository) ListByCampaign(ctx context.Context, campaignID uint64, opts persistence.ListOptions) ([]*entity.Review, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Review{}).Where("campaign_id = ?", campaignID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	var rows []model.Review
	err := query.
		Order("created_at DESC").
		Offset(opts.Offset()).
		Limit(opts.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	reviews := make([]*entity.Review, 0, len(rows))
	for i := range rows {
		reviews = append(reviews, reviewModelToEntity(&rows[i]))
	}

	return reviews, total, nil
}
