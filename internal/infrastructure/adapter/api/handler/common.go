package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/launchvest/launchvest/internal/domain/error"
	"github.com/launchvest/launchvest/internal/domain/port/persistence"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error to its HTTP status and standardized
// error body. Server-side failures are masked behind a generic message.
func respondError(c *gin.Context, err error) {
	status := domainerr.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBadRequest reports a malformed request body or parameter
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message,
	})
}

// parseIDParam extracts a numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, "Invalid "+name+" format")
		return 0, false
	}
	return id, true
}

// parseListOptions reads page and limit query parameters. Out-of-range
// values are clamped by the use cases.
func parseListOptions(c *gin.Context) persistence.ListOptions {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return persistence.ListOptions{Page: page, Limit: limit}
}
