package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4001},
		{"NegativeAmount", ErrNegativeAmount, 4001},
		{"InvalidRole", ErrInvalidRole, 4002},
		{"InvalidStatus", ErrInvalidStatus, 4003},
		{"MissingField", ErrMissingField, 4004},
		{"Unauthenticated", ErrUnauthenticated, 4010},
		{"Forbidden", ErrForbidden, 4030},
		{"SelfInvestment", ErrSelfInvestment, 4031},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"CampaignNotFound", ErrCampaignNotFound, 4041},
		{"InvestmentNotFound", ErrInvestmentNotFound, 4042},
		{"DuplicateEmail", ErrDuplicateEmail, 4090},
		{"CampaignNotActive", ErrCampaignNotActive, 4220},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrCampaignNotFound), 4041},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, http.StatusBadRequest},
		{"InvalidRole", ErrInvalidRole, http.StatusBadRequest},
		{"Unauthenticated", ErrUnauthenticated, http.StatusUnauthorized},
		{"Forbidden", ErrForbidden, http.StatusForbidden},
		{"SelfInvestment", ErrSelfInvestment, http.StatusForbidden},
		{"CampaignNotFound", ErrCampaignNotFound, http.StatusNotFound},
		{"DuplicateEmail", ErrDuplicateEmail, http.StatusConflict},
		{"CampaignNotActive", ErrCampaignNotActive, http.StatusUnprocessableEntity},
		{"DatabaseConnection", ErrDatabaseConnection, http.StatusInternalServerError},
		{"WrappedNotActive", fmt.Errorf("wrapped: %w", ErrCampaignNotActive), http.StatusUnprocessableEntity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status := HTTPStatus(tc.err)
			if status != tc.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, status, tc.expected)
			}
		})
	}
}

func TestInvestmentError(t *testing.T) {
	baseErr := ErrCampaignNotActive
	invErr := &InvestmentError{
		CampaignID: 12,
		InvestorID: 34,
		Amount:     "250.00",
		Reason:     "campaign closed",
		Err:        baseErr,
	}

	expectedErrMsg := "investment failed for campaign 12 (investor: 34, amount: 250.00): campaign closed - campaign is not accepting investments"
	if invErr.Error() != expectedErrMsg {
		t.Errorf("InvestmentError.Error() = %s, want %s", invErr.Error(), expectedErrMsg)
	}

	if !errors.Is(invErr, baseErr) {
		t.Errorf("errors.Is(invErr, baseErr) = false, want true")
	}

	fields := invErr.LogFields()
	if fields["campaign_id"] != uint64(12) {
		t.Errorf("LogFields campaign_id = %v, want 12", fields["campaign_id"])
	}
	if fields["error_code"] != 4220 {
		t.Errorf("LogFields error_code = %v, want 4220", fields["error_code"])
	}
}

func TestSelfInvestmentError(t *testing.T) {
	selfErr := NewSelfInvestmentError(5, 9)

	expectedErrMsg := "self-investment rejected: user 9 owns campaign 5"
	if selfErr.Error() != expectedErrMsg {
		t.Errorf("SelfInvestmentError.Error() = %s, want %s", selfErr.Error(), expectedErrMsg)
	}

	if !errors.Is(selfErr, ErrSelfInvestment) {
		t.Errorf("errors.Is(selfErr, ErrSelfInvestment) = false, want true")
	}

	if HTTPStatus(selfErr) != http.StatusForbidden {
		t.Errorf("HTTPStatus(selfErr) = %d, want %d", HTTPStatus(selfErr), http.StatusForbidden)
	}
}

func TestErrorClassifiers(t *testing.T) {
	if !IsNotFoundError(ErrCampaignNotFound) {
		t.Error("IsNotFoundError(ErrCampaignNotFound) = false, want true")
	}
	if IsNotFoundError(ErrForbidden) {
		t.Error("IsNotFoundError(ErrForbidden) = true, want false")
	}
	if !IsForbiddenError(NewSelfInvestmentError(1, 2)) {
		t.Error("IsForbiddenError(selfErr) = false, want true")
	}
	if !IsValidationError(fmt.Errorf("bad input: %w", ErrInvalidAmount)) {
		t.Error("IsValidationError(wrapped ErrInvalidAmount) = false, want true")
	}
	if IsValidationError(ErrDatabaseConnection) {
		t.Error("IsValidationError(ErrDatabaseConnection) = true, want false")
	}
}
