package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/launchvest/launchvest/internal/domain/entity"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	"github.com/launchvest/launchvest/internal/domain/port/usecase"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/api/dto"
)

// AdminHandler handles privileged platform-management HTTP requests.
// All routes behind it require the admin role.
type AdminHandler struct {
	userUseCase       usecase.UserUseCase
	campaignUseCase   usecase.CampaignUseCase
	investmentUseCase usecase.InvestmentUseCase
	reportUseCase     usecase.ReportUseCase
	logger            coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	userUseCase usecase.UserUseCase,
	campaignUseCase usecase.CampaignUseCase,
	investmentUseCase usecase.InvestmentUseCase,
	reportUseCase usecase.ReportUseCase,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		userUseCase:       userUseCase,
		campaignUseCase:   campaignUseCase,
		investmentUseCase: investmentUseCase,
		reportUseCase:     reportUseCase,
		logger:            logger,
	}
}

// ListUsers handles the GET /admin/users endpoint
func (h *AdminHandler) ListUsers(c *gin.Context) {
	opts := parseListOptions(c)

	users, total, err := h.userUseCase.ListUsers(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PagedResponse{
		Items: dto.NewUserListResponse(users),
		Page:  opts.Page,
		Limit: opts.Limit,
		Total: total,
	})
}

// PlatformStats handles the GET /admin/dashboard endpoint
func (h *AdminHandler) PlatformStats(c *gin.Context) {
	stats, err := h.reportUseCase.GetPlatformStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPlatformStatsResponse(stats))
}

// OverrideCampaignStatus handles the PUT /admin/campaigns/:id/status
// endpoint. The override bypasses the automatic funded transition.
func (h *AdminHandler) OverrideCampaignStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.OverrideCampaignStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	status, err := entity.ParseCampaignStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	campaign, err := h.campaignUseCase.OverrideCampaignStatus(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("Admin overrode campaign status", map[string]any{
		"campaign_id": id,
		"status":      status.String(),
	})

	c.JSON(http.StatusOK, dto.NewCampaignResponse(campaign))
}

// OverrideInvestmentStatus handles the PUT /admin/investments/:id/status
// endpoint. Campaign aggregates are not recomputed.
func (h *AdminHandler) OverrideInvestmentStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.OverrideInvestmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	status, err := entity.ParseInvestmentStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	investment, err := h.investmentUseCase.OverrideInvestmentStatus(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("Admin overrode investment status", map[string]any{
		"investment_id": id,
		"status":        status.String(),
	})

	c.JSON(http.StatusOK, dto.NewInvestmentResponse(investment))
}
