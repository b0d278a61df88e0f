package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount      = 4001
	CodeInvalidRole        = 4002
	CodeInvalidStatus      = 4003
	CodeMissingField       = 4004
	CodeConstraintViolation = 4005
	CodeUnauthenticated    = 4010
	CodeForbidden          = 4030
	CodeSelfInvestment     = 4031
	CodeUserNotFound       = 4040
	CodeCampaignNotFound   = 4041
	CodeInvestmentNotFound = 4042
	CodeDuplicateEmail     = 4090
	CodeCampaignNotActive  = 4220

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when an investment or target amount is malformed or not positive
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when a money amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidRole is returned when a role is not one of entrepreneur, investor, admin
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidStatus is returned when a campaign status is not one of the enumerated values
	ErrInvalidStatus = errors.New("invalid campaign status")

	// ErrMissingField is returned when a required request field is absent
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthenticated is returned when no valid bearer token accompanies the request
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the authenticated user is not permitted to act
	ErrForbidden = errors.New("operation not permitted")

	// ErrSelfInvestment is returned when an entrepreneur invests in their own campaign
	ErrSelfInvestment = errors.New("cannot invest in your own campaign")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrCampaignNotFound is returned when the requested campaign doesn't exist
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrInvestmentNotFound is returned when the requested investment doesn't exist
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrDuplicateEmail is returned when registering with an email that is already taken
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrCampaignNotActive is returned when investing into a campaign that is not accepting funds
	ErrCampaignNotActive = errors.New("campaign is not accepting investments")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidRole):
		return CodeInvalidRole
	case errors.Is(err, ErrInvalidStatus):
		return CodeInvalidStatus
	case errors.Is(err, ErrMissingField), errors.Is(err, ErrInvalidRequest):
		return CodeMissingField
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrSelfInvestment):
		return CodeSelfInvestment
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrCampaignNotFound):
		return CodeCampaignNotFound
	case errors.Is(err, ErrInvestmentNotFound):
		return CodeInvestmentNotFound
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrCampaignNotActive):
		return CodeCampaignNotActive
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status code handlers should return
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrMissingField),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrSelfInvestment), errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCampaignNotFound),
		errors.Is(err, ErrInvestmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, ErrCampaignNotActive):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// InvestmentError carries the context of a failed investment application
type InvestmentError struct {
	CampaignID uint64
	InvestorID uint64
	Amount     string
	Reason     string
	Err        error
}

// Error implements the error interface for InvestmentError
func (e *InvestmentError) Error() string {
	return fmt.Sprintf("investment failed for campaign %d (investor: %d, amount: %s): %s - %v",
		e.CampaignID, e.InvestorID, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *InvestmentError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *InvestmentError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "investment_error",
		"campaign_id": e.CampaignID,
		"investor_id": e.InvestorID,
		"amount":      e.Amount,
		"reason":      e.Reason,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewInvestmentError creates a detailed investment error
func NewInvestmentError(campaignID, investorID uint64, amount, reason string, err error) error {
	return &InvestmentError{
		CampaignID: campaignID,
		InvestorID: investorID,
		Amount:     amount,
		Reason:     reason,
		Err:        err,
	}
}

// SelfInvestmentError reports an entrepreneur investing in their own campaign
type SelfInvestmentError struct {
	CampaignID uint64
	OwnerID    uint64
}

// Error implements the error interface
func (e *SelfInvestmentError) Error() string {
	return fmt.Sprintf("self-investment rejected: user %d owns campaign %d", e.OwnerID, e.CampaignID)
}

// Is checks if the target error is an ErrSelfInvestment
func (e *SelfInvestmentError) Is(target error) bool {
	return target == ErrSelfInvestment
}

// NewSelfInvestmentError creates a new detailed self-investment error
func NewSelfInvestmentError(campaignID, ownerID uint64) error {
	return &SelfInvestmentError{CampaignID: campaignID, OwnerID: ownerID}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCampaignNotFound) ||
		errors.Is(err, ErrInvestmentNotFound)
}

// IsForbiddenError checks if the error is a permission failure
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden) || errors.Is(err, ErrSelfInvestment)
}

// IsValidationError checks if the error stems from malformed input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidRequest)
}
