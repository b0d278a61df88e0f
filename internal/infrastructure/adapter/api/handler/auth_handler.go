package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/launchvest/launchvest/internal/domain/entity"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	"github.com/launchvest/launchvest/internal/domain/port/usecase"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/api/dto"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(userUseCase usecase.UserUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// Register handles the POST /auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	role, err := entity.ParseRole(req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.userUseCase.Register(c.Request.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     role,
		Bio:      req.Bio,
	})
	if err != nil {
		h.logger.Warn("Registration failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: result.Token,
		User:  dto.NewUserResponse(result.User),
	})
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.userUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: result.Token,
		User:  dto.NewUserResponse(result.User),
	})
}

// Verify handles the GET /auth/verify endpoint: it resolves the bearer
// token back to the account it belongs to
func (h *AuthHandler) Verify(c *gin.Context) {
	user, err := h.userUseCase.GetProfile(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
