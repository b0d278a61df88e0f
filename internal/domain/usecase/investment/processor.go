package investment

import (
	"context"
	"fmt"

	"github.com/launchvest/launchvest/internal/domain/entity"
	errs "github.com/launchvest/launchvest/internal/domain/error"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	"github.com/launchvest/launchvest/internal/domain/port/persistence"
	"github.com/launchvest/launchvest/internal/domain/port/usecase"
)

// InvestmentProcessor applies a single validated investment atomically.
// The investment row insert and the campaign aggregate update commit or
// roll back together; there is no partial effect.
type InvestmentProcessor struct {
	uow          persistence.UnitOfWork
	publisher    coreport.EventPublisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewInvestmentProcessor creates a new InvestmentProcessor.
// The publisher may be nil when event publishing is disabled.
func NewInvestmentProcessor(
	uow persistence.UnitOfWork,
	publisher coreport.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *InvestmentProcessor {
	return &InvestmentProcessor{
		uow:          uow,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Process applies the investment inside a single database transaction:
// 1. Lock and load the campaign row
// 2. Reject self-investment and inactive campaigns
// 3. Insert the investment record with a fresh receipt identifier
// 4. Fold the amount into the campaign aggregates, flipping the
//    campaign to funded when the target is reached
// The amount must already be validated as strictly positive cents.
func (p *InvestmentProcessor) Process(
	ctx context.Context,
	req usecase.InvestmentRequest,
	amountCents int64,
) (*usecase.InvestmentResult, error) {
	txCtx, err := p.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	result, err := p.applyInTransaction(txCtx, req, amountCents)
	if err != nil {
		if rbErr := p.uow.Rollback(txCtx); rbErr != nil {
			p.logger.Error("Failed to roll back investment transaction", map[string]any{
				"campaign_id": req.CampaignID,
				"investor_id": req.InvestorID,
				"error":       rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := p.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit investment transaction: %w", err)
	}

	p.logger.Info("Investment processed", map[string]any{
		"transaction_id":  result.Investment.TransactionID,
		"campaign_id":     req.CampaignID,
		"investor_id":     req.InvestorID,
		"amount":          entity.FormatAmount(amountCents),
		"campaign_status": result.Campaign.Status.String(),
	})

	p.publishCompleted(ctx, result)

	return result, nil
}

func (p *InvestmentProcessor) applyInTransaction(
	txCtx context.Context,
	req usecase.InvestmentRequest,
	amountCents int64,
) (*usecase.InvestmentResult, error) {
	campaignRepo := p.uow.GetCampaignRepository(txCtx)
	investmentRepo := p.uow.GetInvestmentRepository(txCtx)

	// Row lock held until commit so concurrent investments against the
	// same campaign see each other's aggregate updates
	campaign, err := campaignRepo.GetByIDForUpdate(txCtx, req.CampaignID)
	if err != nil {
		return nil, err
	}

	if campaign.OwnerID == req.InvestorID {
		return nil, errs.NewSelfInvestmentError(req.CampaignID, req.InvestorID)
	}

	if !campaign.IsActive() {
		return nil, errs.NewInvestmentError(req.CampaignID, req.InvestorID, entity.FormatAmount(amountCents),
			fmt.Sprintf("campaign is %s", campaign.Status), errs.ErrCampaignNotActive)
	}

	transactionID, err := GenerateTransactionID(p.timeProvider)
	if err != nil {
		return nil, err
	}

	inv, err := entity.NewInvestment(req.CampaignID, req.InvestorID, amountCents, transactionID, p.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := investmentRepo.Create(txCtx, inv); err != nil {
		return nil, err
	}

	campaign.ApplyInvestment(amountCents, p.timeProvider)
	if err := campaignRepo.Update(txCtx, campaign); err != nil {
		return nil, err
	}

	return &usecase.InvestmentResult{
		Investment: inv,
		Campaign:   campaign,
	}, nil
}

// publishCompleted announces the committed investment. Failures are
// logged and swallowed; the transaction has already committed.
func (p *InvestmentProcessor) publishCompleted(ctx context.Context, result *usecase.InvestmentResult) {
	if p.publisher == nil {
		return
	}

	event := coreport.InvestmentCompletedEvent{
		TransactionID:  result.Investment.TransactionID,
		CampaignID:     result.Investment.CampaignID,
		InvestorID:     result.Investment.InvestorID,
		Amount:         entity.FormatAmount(result.Investment.Amount),
		CampaignStatus: result.Campaign.Status.String(),
		OccurredAt:     result.Investment.CreatedAt,
	}

	if err := p.publisher.PublishInvestmentCompleted(ctx, event); err != nil {
		p.logger.Warn("Failed to publish investment event", map[string]any{
			"transaction_id": event.TransactionID,
			"error":          err.Error(),
		})
	}
}
