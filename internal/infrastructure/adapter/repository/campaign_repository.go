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
	"gorm.io/gorm/clause"
)

// CampaignRepository implements CampaignRepository interface using GORM
type CampaignRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCampaignRepository creates a new CampaignRepository instance
func NewCampaignRepository(db *gorm.DB, logger coreport.Logger) *CampaignRepository {
	return &CampaignRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func campaignModelToEntity(m *model.Campaign) *entity.Campaign {
	return &entity.Campaign{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Title:         m.Title,
		Description:   m.Description,
		Category:      m.Category,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		InvestorCount: m.InvestorCount,
		Deadline:      m.Deadline,
		ImageURL:      m.ImageURL,
		Status:        entity.CampaignStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func campaignEntityToModel(c *entity.Campaign) *model.Campaign {
	return &model.Campaign{
		ID:            c.ID,
		OwnerID:       c.OwnerID,
		Title:         c.Title,
		Description:   c.Description,
		Category:      c.Category,
		TargetAmount:  c.TargetAmount,
		CurrentAmount: c.CurrentAmount,
		InvestorCount: c.InvestorCount,
		Deadline:      c.Deadline,
		ImageURL:      c.ImageURL,
		Status:        c.Status.String(),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *CampaignRepository) handleDatabaseError(operation string, err error, campaignID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"campaign_id": campaignID,
		"error":       err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrCampaignNotFound
	}

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create saves a new campaign
func (r *CampaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	m := campaignEntityToModel(campaign)

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.handleDatabaseError("creating campaign", err, 0)
	}

	campaign.ID = m.ID
	return nil
}

// GetByID retrieves a campaign by ID
func (r *CampaignRepository) GetByID(ctx context.Context, id uint64) (*entity.Campaign, error) {
	var m model.Campaign
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCampaignNotFound
		}
		return nil, r.handleDatabaseError("getting campaign", err, id)
	}

	return campaignModelToEntity(&m), nil
}

// GetByIDForUpdate retrieves a campaign while taking a FOR UPDATE row
// lock. Must run inside a transaction; the lock is released at commit
// or rollback.
func (r *CampaignRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Campaign, error) {
	var m model.Campaign
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCampaignNotFound
		}
		return nil, r.handleDatabaseError("locking campaign", err, id)
	}

	return campaignModelToEntity(&m), nil
}

// Update persists campaign mutations, aggregates included
func (r *CampaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	m := campaignEntityToModel(campaign)

	result := r.db.WithContext(ctx).Model(&model.Campaign{}).Where("id = ?", campaign.ID).Updates(map[string]any{
		"title":          m.Title,
		"description":    m.Description,
		"category":       m.Category,
		"target_amount":  m.TargetAmount,
		"current_amount": m.CurrentAmount,
		"investor_count": m.InvestorCount,
		"deadline":       m.Deadline,
		"image_url":      m.ImageURL,
		"status":         m.Status,
		"updated_at":     m.UpdatedAt,
	})
	if result.Error != nil {
		return r.handleDatabaseError("updating campaign", result.Error, campaign.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCampaignNotFound
	}

	return nil
}

// List retrieves campaigns matching the filter ordered by creation time descending
func (r *CampaignRepository) List(ctx context.Context, filter persistence.CampaignFilter) ([]*entity.Campaign, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Campaign{})
	if filter.OwnerID != 0 {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.handleDatabaseError("counting campaigns", err, 0)
	}

	var rows []model.Campaign
	err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, r.handleDatabaseError("listing campaigns", err, 0)
	}

	campaigns := make([]*entity.Campaign, 0, len(rows))
	for i := range rows {
		campaigns = append(campaigns, campaignModelToEntity(&rows[i]))
	}

	return campaigns, total, nil
}

// Count returns the total number of campaigns
func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Campaign{}).Count(&total).Error; err != nil {
		return 0, r.handleDatabaseError("counting campaigns", err, 0)
	}
	return total, nil
}

// CountByStatus returns campaign counts grouped by status
func (r *CampaignRepository) CountByStatus(ctx context.Context) (map[entity.CampaignStatus]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&model.Campaign{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("counting campaigns by status", err, 0)
	}

	counts := make(map[entity.CampaignStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.CampaignStatus(row.Status)] = row.Count
	}

	return counts, nil
}
