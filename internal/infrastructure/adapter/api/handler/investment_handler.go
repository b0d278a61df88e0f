package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/launchvest/launchvest/internal/domain/entity"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	"github.com/launchvest/launchvest/internal/domain/port/persistence"
	"github.com/launchvest/launchvest/internal/domain/port/usecase"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/api/dto"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/api/middleware"
)

// InvestmentHandler handles investment-related HTTP requests
type InvestmentHandler struct {
	investmentUseCase usecase.InvestmentUseCase
	logger            coreport.Logger
}

// NewInvestmentHandler creates a new investment handler instance
func NewInvestmentHandler(investmentUseCase usecase.InvestmentUseCase, logger coreport.Logger) *InvestmentHandler {
	return &InvestmentHandler{
		investmentUseCase: investmentUseCase,
		logger:            logger,
	}
}

// Create handles the POST /investments endpoint. The investor is the
// authenticated caller; the request waits for its turn in the
// campaign's queue and returns the committed result.
func (h *InvestmentHandler) Create(c *gin.Context) {
	var req dto.InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	investorID := middleware.CallerID(c)

	result, err := h.investmentUseCase.ProcessInvestment(c.Request.Context(), usecase.InvestmentRequest{
		CampaignID: req.CampaignID,
		InvestorID: investorID,
		Amount:     req.Amount,
	})
	if err != nil {
		h.logger.Warn("Investment rejected", map[string]any{
			"campaign_id": req.CampaignID,
			"investor_id": investorID,
			"amount":      req.Amount,
			"error":       err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.InvestmentResultResponse{
		Investment: dto.NewInvestmentResponse(result.Investment),
		Campaign:   dto.NewCampaignResponse(result.Campaign),
	})
}

// Get handles the GET /investments/:id endpoint
func (h *InvestmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	investment, err := h.investmentUseCase.GetInvestment(c.Request.Context(), id, middleware.CallerID(c), middleware.CallerRole(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewInvestmentResponse(investment))
}

// List handles the GET /investments endpoint. Supports campaignId and
// status query filters; non-admin callers only see their own records.
func (h *InvestmentHandler) List(c *gin.Context) {
	filter := persistence.InvestmentFilter{ListOptions: parseListOptions(c)}

	if raw := c.Query("campaignId"); raw != "" {
		campaignID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondBadRequest(c, "Invalid campaignId format")
			return
		}
		filter.CampaignID = campaignID
	}

	if raw := c.Query("status"); raw != "" {
		status, err := entity.ParseInvestmentStatus(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.Status = status
	}

	investments, total, err := h.investmentUseCase.ListInvestments(c.Request.Context(), filter, middleware.CallerID(c), middleware.CallerRole(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PagedResponse{
		Items: dto.NewInvestmentListResponse(investments),
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
	})
}
