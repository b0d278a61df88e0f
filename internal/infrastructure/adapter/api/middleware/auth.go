package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/launchvest/launchvest/internal/domain/entity"
	domainerr "github.com/launchvest/launchvest/internal/domain/error"
	"github.com/launchvest/launchvest/internal/domain/port/auth"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/api/dto"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// Auth middleware verifies the Bearer token and stores the caller's
// identity in the request context
func Auth(tokens auth.TokenService, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
				Message: "Missing Authorization header",
			})
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
				Message: "Authorization header must be a Bearer token",
			})
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			logger.Debug("Token verification failed", map[string]any{
				"error": err.Error(),
				"path":  c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// CallerID returns the authenticated user ID stored by the Auth middleware
func CallerID(c *gin.Context) uint64 {
	id, _ := c.Get(ContextUserID)
	userID, _ := id.(uint64)
	return userID
}

// CallerRole returns the authenticated role stored by the Auth middleware
func CallerRole(c *gin.Context) entity.Role {
	value, _ := c.Get(ContextRole)
	role, _ := value.(entity.Role)
	return role
}
