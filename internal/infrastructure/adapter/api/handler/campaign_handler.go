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

// CampaignHandler handles campaign-related HTTP requests
type CampaignHandler struct {
	campaignUseCase usecase.CampaignUseCase
	logger          coreport.Logger
}

// NewCampaignHandler creates a new campaign handler instance
func NewCampaignHandler(campaignUseCase usecase.CampaignUseCase, logger coreport.Logger) *CampaignHandler {
	return &CampaignHandler{
		campaignUseCase: campaignUseCase,
		logger:          logger,
	}
}

// Create handles the POST /campaigns endpoint
func (h *CampaignHandler) Create(c *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	campaign, err := h.campaignUseCase.CreateCampaign(c.Request.Context(), usecase.CreateCampaignInput{
		OwnerID:      middleware.CallerID(c),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
		ImageURL:     req.ImageURL,
		Draft:        req.Status == entity.CampaignStatusDraft.String(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCampaignResponse(campaign))
}

// Get handles the GET /campaigns/:id endpoint
func (h *CampaignHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	campaign, err := h.campaignUseCase.GetCampaign(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCampaignResponse(campaign))
}

// List handles the GET /campaigns endpoint. Supports status and
// ownerId query filters plus pagination.
func (h *CampaignHandler) List(c *gin.Context) {
	filter := persistence.CampaignFilter{ListOptions: parseListOptions(c)}

	if raw := c.Query("status"); raw != "" {
		status, err := entity.ParseCampaignStatus(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.Status = status
	}

	if raw := c.Query("ownerId"); raw != "" {
		ownerID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondBadRequest(c, "Invalid ownerId format")
			return
		}
		filter.OwnerID = ownerID
	}

	campaigns, total, err := h.campaignUseCase.ListCampaigns(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PagedResponse{
		Items: dto.NewCampaignListResponse(campaigns),
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
	})
}

// Update handles the PUT /campaigns/:id endpoint
func (h *CampaignHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	campaign, err := h.campaignUseCase.UpdateCampaign(
		c.Request.Context(),
		id,
		middleware.CallerID(c),
		middleware.CallerRole(c),
		usecase.UpdateCampaignInput{
			Title:        req.Title,
			Description:  req.Description,
			Category:     req.Category,
			ImageURL:     req.ImageURL,
			Deadline:     req.Deadline,
			TargetAmount: req.TargetAmount,
		},
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCampaignResponse(campaign))
}

// Activate handles the POST /campaigns/:id/activate endpoint
func (h *CampaignHandler) Activate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	campaign, err := h.campaignUseCase.ActivateCampaign(c.Request.Context(), id, middleware.CallerID(c), middleware.CallerRole(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCampaignResponse(campaign))
}

// AddReview handles the POST /campaigns/:id/reviews endpoint
func (h *CampaignHandler) AddReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	review, err := h.campaignUseCase.AddReview(c.Request.Context(), id, middleware.CallerID(c), req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewReviewResponse(review))
}

// ListReviews handles the GET /campaigns/:id/reviews endpoint
func (h *CampaignHandler) ListReviews(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	opts := parseListOptions(c)
	reviews, total, err := h.campaignUseCase.ListReviews(c.Request.Context(), id, opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PagedResponse{
		Items: dto.NewReviewListResponse(reviews),
		Page:  opts.Page,
		Limit: opts.Limit,
		Total: total,
	})
}
