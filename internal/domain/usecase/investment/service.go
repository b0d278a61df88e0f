package investment

import (
	"context"

	"github.com/launchvest/launchvest/internal/domain/entity"
	errs "github.com/launchvest/launchvest/internal/domain/error"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	"github.com/launchvest/launchvest/internal/domain/port/persistence"
	"github.com/launchvest/launchvest/internal/domain/port/usecase"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Service is the main investment service implementation that ties
// together validation, per-campaign ordering and atomic processing
type Service struct {
	manager        *CampaignQueueManager
	processor      *InvestmentProcessor
	validator      *InvestmentValidator
	investmentRepo persistence.InvestmentRepository
	campaignRepo   persistence.CampaignRepository
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewInvestmentService creates a new investment service
func NewInvestmentService(
	uow persistence.UnitOfWork,
	investmentRepo persistence.InvestmentRepository,
	campaignRepo persistence.CampaignRepository,
	publisher coreport.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	validator := NewInvestmentValidator()
	processor := NewInvestmentProcessor(uow, publisher, timeProvider, logger)

	// Validation runs on the worker so rejected requests never block
	// the queue behind database work
	processorFunc := func(ctx context.Context, req usecase.InvestmentRequest) (*usecase.InvestmentResult, error) {
		cents, err := validator.ValidateRequest(req)
		if err != nil {
			return nil, err
		}
		return processor.Process(ctx, req, cents)
	}

	manager := NewCampaignQueueManager(logger, timeProvider, processorFunc)

	return &Service{
		manager:        manager,
		processor:      processor,
		validator:      validator,
		investmentRepo: investmentRepo,
		campaignRepo:   campaignRepo,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// ProcessInvestment routes the request through the campaign's queue so
// investments against one campaign apply strictly in arrival order.
// Every accepted call creates a new investment record; resubmitting the
// same payload creates another one.
func (s *Service) ProcessInvestment(ctx context.Context, req usecase.InvestmentRequest) (*usecase.InvestmentResult, error) {
	// Fast shape check before paying the queue round trip
	if _, err := s.validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	return s.manager.Enqueue(ctx, req)
}

// GetInvestment retrieves an investment, restricted to the investor,
// the campaign owner, or an admin
func (s *Service) GetInvestment(ctx context.Context, id uint64, requesterID uint64, requesterRole entity.Role) (*entity.Investment, error) {
	inv, err := s.investmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if requesterRole == entity.RoleAdmin || inv.InvestorID == requesterID {
		return inv, nil
	}

	campaign, err := s.campaignRepo.GetByID(ctx, inv.CampaignID)
	if err != nil {
		// A missing campaign just means the requester cannot be its
		// owner; anything else is a real failure and must surface as one
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrForbidden
		}
		return nil, err
	}

	if campaign.OwnerID == requesterID {
		return inv, nil
	}

	return nil, errs.ErrForbidden
}

// ListInvestments retrieves investments; non-admin requesters only ever
// see their own
func (s *Service) ListInvestments(ctx context.Context, filter persistence.InvestmentFilter, requesterID uint64, requesterRole entity.Role) ([]*entity.Investment, int64, error) {
	if requesterRole != entity.RoleAdmin {
		filter.InvestorID = requesterID
	}

	filter.ListOptions = clampListOptions(filter.ListOptions)

	return s.investmentRepo.List(ctx, filter)
}

// OverrideInvestmentStatus force-sets an investment's status.
// Campaign aggregates are left untouched; this is a bookkeeping
// correction, not a replay of the transaction.
func (s *Service) OverrideInvestmentStatus(ctx context.Context, id uint64, status entity.InvestmentStatus) (*entity.Investment, error) {
	inv, err := s.investmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inv.Status = status
	inv.UpdatedAt = s.timeProvider.Now()

	if err := s.investmentRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	s.logger.Info("Investment status overridden", map[string]any{
		"investment_id": id,
		"status":        status.String(),
	})

	return inv, nil
}

// GetManager returns the underlying queue manager.
// Used for graceful shutdown.
func (s *Service) GetManager() *CampaignQueueManager {
	return s.manager
}

// Shutdown drains the per-campaign queues and stops their workers
func (s *Service) Shutdown() {
	s.manager.Shutdown()
}

func clampListOptions(opts persistence.ListOptions) persistence.ListOptions {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultPageLimit
	}
	if opts.Limit > maxPageLimit {
		opts.Limit = maxPageLimit
	}
	return opts
}
