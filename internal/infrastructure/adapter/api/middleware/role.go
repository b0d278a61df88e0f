package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/launchvest/launchvest/internal/domain/entity"
	domainerr "github.com/launchvest/launchvest/internal/domain/error"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/api/dto"
)

// RequireRole rejects requests whose authenticated role is not one of
// the allowed roles. Must run after Auth.
func RequireRole(allowed ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CallerRole(c)
		for _, want := range allowed {
			if role == want {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
			Message: "Insufficient permissions",
		})
	}
}
