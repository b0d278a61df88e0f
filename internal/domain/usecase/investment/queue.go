package investment

import (
	"context"
	"sync"

	errs "github.com/launchvest/launchvest/internal/domain/error"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	"github.com/launchvest/launchvest/internal/domain/port/usecase"
)

// CampaignQueueManager provides sequential processing of investments per
// campaign. Concurrent requests against different campaigns run in
// parallel; requests against the same campaign are applied strictly in
// arrival order.
type CampaignQueueManager struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	// Campaign-based queues for strict ordering
	campaignQueues sync.Map // map[uint64]chan *investmentRequest
	queueWaitGroup sync.WaitGroup

	// Function to process investments
	processor InvestmentProcessorFunc
}

// InvestmentProcessorFunc is the function signature for processing investments
type InvestmentProcessorFunc func(ctx context.Context, req usecase.InvestmentRequest) (*usecase.InvestmentResult, error)

// investmentRequest represents a queued investment request
type investmentRequest struct {
	ctx        context.Context
	req        usecase.InvestmentRequest
	resultChan chan *investmentResult
}

// investmentResult represents the result of a processed investment
type investmentResult struct {
	result *usecase.InvestmentResult
	err    error
}

// NewCampaignQueueManager creates a new queue manager
func NewCampaignQueueManager(
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	processor InvestmentProcessorFunc,
) *CampaignQueueManager {
	if processor == nil {
		panic("Investment processor function cannot be nil")
	}

	return &CampaignQueueManager{
		logger:         logger,
		timeProvider:   timeProvider,
		campaignQueues: sync.Map{},
		processor:      processor,
	}
}

// Enqueue adds an investment to the campaign's queue for sequential
// processing and blocks until the result is available
func (m *CampaignQueueManager) Enqueue(
	ctx context.Context,
	req usecase.InvestmentRequest,
) (*usecase.InvestmentResult, error) {
	m.logger.Debug("Enqueuing investment for sequential processing", map[string]any{
		"campaign_id": req.CampaignID,
		"investor_id": req.InvestorID,
	})

	resultChan := make(chan *investmentResult, 1)

	// Get or create queue for this campaign
	var queue chan *investmentRequest
	queueIface, loaded := m.campaignQueues.LoadOrStore(req.CampaignID, make(chan *investmentRequest, 100))
	if queueCh, ok := queueIface.(chan *investmentRequest); ok {
		queue = queueCh
	} else {
		m.logger.Error("Failed to type assert queue channel", nil)
		return nil, errs.ErrInternalServer
	}

	// Start worker if this is a new queue
	if !loaded {
		m.logger.Info("Starting investment queue worker for campaign", map[string]any{
			"campaign_id": req.CampaignID,
		})
		m.queueWaitGroup.Add(1)
		go m.processCampaignInvestments(req.CampaignID, queue)
	}

	invReq := &investmentRequest{
		ctx:        ctx,
		req:        req,
		resultChan: resultChan,
	}

	// Send request to queue
	select {
	case queue <- invReq:
		m.logger.Debug("Investment enqueued successfully", map[string]any{
			"campaign_id": req.CampaignID,
			"investor_id": req.InvestorID,
		})
	case <-ctx.Done():
		m.logger.Warn("Context canceled while enqueueing investment", map[string]any{
			"campaign_id": req.CampaignID,
			"investor_id": req.InvestorID,
			"error":       ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}

	// Wait for result
	select {
	case result := <-resultChan:
		return result.result, result.err
	case <-ctx.Done():
		m.logger.Warn("Context canceled while waiting for investment result", map[string]any{
			"campaign_id": req.CampaignID,
			"investor_id": req.InvestorID,
			"error":       ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

// processCampaignInvestments handles the worker goroutine for a campaign's queue
func (m *CampaignQueueManager) processCampaignInvestments(campaignID uint64, queue chan *investmentRequest) {
	defer m.queueWaitGroup.Done()

	m.logger.Info("Investment queue worker started", map[string]any{
		"campaign_id": campaignID,
	})

	// Process investments sequentially
	for invReq := range queue {
		m.logger.Debug("Processing queued investment", map[string]any{
			"campaign_id": campaignID,
			"investor_id": invReq.req.InvestorID,
		})

		result, err := m.processor(invReq.ctx, invReq.req)

		invReq.resultChan <- &investmentResult{
			result: result,
			err:    err,
		}
		close(invReq.resultChan)
	}

	m.logger.Info("Investment queue worker stopped", map[string]any{
		"campaign_id": campaignID,
	})
}

// Shutdown stops all worker goroutines cleanly
func (m *CampaignQueueManager) Shutdown() {
	m.logger.Info("Shutting down investment queue manager", nil)

	// Close all queues to stop workers
	m.campaignQueues.Range(func(campaignID, queueIface interface{}) bool {
		if queue, ok := queueIface.(chan *investmentRequest); ok {
			m.logger.Debug("Closing investment queue for campaign", map[string]any{
				"campaign_id": campaignID,
			})
			close(queue)
		}
		return true
	})

	// Wait for all workers to finish
	m.queueWaitGroup.Wait()
	m.logger.Info("Investment queue manager shut down successfully", nil)
}
