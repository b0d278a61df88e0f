package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	"github.com/launchvest/launchvest/internal/domain/port/usecase"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/api/dto"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/api/middleware"
)

// ReportHandler handles dashboard HTTP requests
type ReportHandler struct {
	reportUseCase usecase.ReportUseCase
	logger        coreport.Logger
}

// NewReportHandler creates a new report handler instance
func NewReportHandler(reportUseCase usecase.ReportUseCase, logger coreport.Logger) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
		logger:        logger,
	}
}

// EntrepreneurDashboard handles the GET /dashboards/entrepreneur endpoint.
// The dashboard always describes the caller's own campaigns.
func (h *ReportHandler) EntrepreneurDashboard(c *gin.Context) {
	dash, err := h.reportUseCase.GetEntrepreneurDashboard(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEntrepreneurDashboardResponse(dash))
}

// InvestorDashboard handles the GET /dashboards/investor endpoint
func (h *ReportHandler) InvestorDashboard(c *gin.Context) {
	dash, err := h.reportUseCase.GetInvestorDashboard(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewInvestorDashboardResponse(dash))
}
