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

// InvestmentRepository implements InvestmentRepository interface using GORM
type InvestmentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewInvestmentRepository creates a new InvestmentRepository instance
func NewInvestmentRepository(db *gorm.DB, logger coreport.Logger) *InvestmentRepository {
	return &InvestmentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func investmentModelToEntity(m *model.Investment) *entity.Investment {
	return &entity.Investment{
		ID:            m.ID,
		CampaignID:    m.CampaignID,
		InvestorID:    m.InvestorID,
		Amount:        m.Amount,
		Status:        entity.InvestmentStatus(m.Status),
		TransactionID: m.TransactionID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func investmentEntityToModel(i *entity.Investment) *model.Investment {
	return &model.Investment{
		ID:            i.ID,
		CampaignID:    i.CampaignID,
		InvestorID:    i.InvestorID,
		Amount:        i.Amount,
		Status:        i.Status.String(),
		TransactionID: i.TransactionID,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *InvestmentRepository) handleDatabaseError(operation string, err error, investmentID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"investment_id": investmentID,
		"error":         err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrInvestmentNotFound
	}

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create saves a new investment record
func (r *InvestmentRepository) Create(ctx context.Context, investment *entity.Investment) error {
	m := investmentEntityToModel(investment)

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.handleDatabaseError("creating investment", err, 0)
	}

	investment.ID = m.ID
	return nil
}

// GetByID retrieves an investment by ID
func (r *InvestmentRepository) GetByID(ctx context.Context, id uint64) (*entity.Investment, error) {
	var m model.Investment
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrInvestmentNotFound
		}
		return nil, r.handleDatabaseError("getting investment", err, id)
	}

	return investmentModelToEntity(&m), nil
}

// Update persists investment mutations
func (r *InvestmentRepository) Update(ctx context.Context, investment *entity.Investment) error {
	m := investmentEntityToModel(investment)

	result := r.db.WithContext(ctx).Model(&model.Investment{}).Where("id = ?", investment.ID).Updates(map[string]any{
		"status":     m.Status,
		"updated_at": m.UpdatedAt,
	})
	if result.Error != nil {
		return r.handleDatabaseError("updating investment", result.Error, investment.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrInvestmentNotFound
	}

	return nil
}

// List retrieves investments matching the filter ordered by creation time descending
func (r *InvestmentRepository) List(ctx context.Context, filter persistence.InvestmentFilter) ([]*entity.Investment, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Investment{})
	if filter.CampaignID != 0 {
		query = query.Where("campaign_id = ?", filter.CampaignID)
	}
	if filter.InvestorID != 0 {
		query = query.Where("investor_id = ?", filter.InvestorID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.handleDatabaseError("counting investments", err, 0)
	}

	var rows []model.Investment
	err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, r.handleDatabaseError("listing investments", err, 0)
	}

	investments := make([]*entity.Investment, 0, len(rows))
	for i := range rows {
		investments = append(investments, investmentModelToEntity(&rows[i]))
	}

	return investments, total, nil
}

// Count returns the total number of investments
func (r *InvestmentRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Investment{}).Count(&total).Error; err != nil {
		return 0, r.handleDatabaseError("counting investments", err, 0)
	}
	return total, nil
}

// TotalVolume returns the sum of all investment amounts in cents
func (r *InvestmentRepository) TotalVolume(ctx context.Context) (int64, error) {
	var total *int64
	err := r.db.WithContext(ctx).
		Model(&model.Investment{}).
		Select("sum(amount)").
		Scan(&total).Error
	if err != nil {
		return 0, r.handleDatabaseError("summing investment volume", err, 0)
	}

	// SUM over zero rows yields NULL
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
