package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/launchvest/launchvest/internal/domain/error"
	mockcore "github.com/launchvest/launchvest/mocks/port/core"
)

func TestNewCampaign(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := mockcore.NewFixedTimeProvider(now)
	deadline := now.AddDate(0, 3, 0)

	t.Run("starts active with zeroed aggregates", func(t *testing.T) {
		campaign, err := NewCampaign(7, "Solar Microgrid", "Village-scale solar", "energy", 90000, deadline, "", tp)

		assert.NoError(t, err)
		assert.Equal(t, CampaignStatusActive, campaign.Status)
		assert.Equal(t, int64(0), campaign.CurrentAmount)
		assert.Equal(t, int64(0), campaign.InvestorCount)
		assert.Equal(t, now, campaign.CreatedAt)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		_, err := NewCampaign(7, "  ", "description", "energy", 90000, deadline, "", tp)
		assert.ErrorIs(t, err, errs.ErrMissingField)
	})

	t.Run("rejects non-positive target", func(t *testing.T) {
		_, err := NewCampaign(7, "Solar Microgrid", "description", "energy", 0, deadline, "", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestCampaignApplyInvestment(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := mockcore.NewFixedTimeProvider(now)

	newCampaign := func(target, current int64) *Campaign {
		return &Campaign{
			ID:            1,
			OwnerID:       7,
			TargetAmount:  target,
			CurrentAmount: current,
			Status:        CampaignStatusActive,
		}
	}

	t.Run("reaching target exactly flips status to funded", func(t *testing.T) {
		campaign := newCampaign(100000, 90000)

		campaign.ApplyInvestment(10000, tp)

		assert.Equal(t, int64(100000), campaign.CurrentAmount)
		assert.Equal(t, int64(1), campaign.InvestorCount)
		assert.Equal(t, CampaignStatusFunded, campaign.Status)
	})

	t.Run("exceeding target flips status to funded", func(t *testing.T) {
		campaign := newCampaign(100000, 90000)

		campaign.ApplyInvestment(25000, tp)

		assert.Equal(t, int64(115000), campaign.CurrentAmount)
		assert.Equal(t, CampaignStatusFunded, campaign.Status)
	})

	t.Run("one cent short stays active", func(t *testing.T) {
		campaign := newCampaign(100000, 90000)

		campaign.ApplyInvestment(9999, tp)

		assert.Equal(t, int64(99999), campaign.CurrentAmount)
		assert.Equal(t, CampaignStatusActive, campaign.Status)
	})

	t.Run("each investment increments the investor count", func(t *testing.T) {
		campaign := newCampaign(1000000, 0)

		campaign.ApplyInvestment(5000, tp)
		campaign.ApplyInvestment(5000, tp)
		campaign.ApplyInvestment(5000, tp)

		assert.Equal(t, int64(3), campaign.InvestorCount)
		assert.Equal(t, int64(15000), campaign.CurrentAmount)
	})
}

func TestParseCampaignStatus(t *testing.T) {
	for _, valid := range []string{"draft", "active", "funded", "closed", "failed"} {
		status, err := ParseCampaignStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, status.String())
	}

	_, err := ParseCampaignStatus("archived")
	assert.ErrorIs(t, err, errs.ErrInvalidStatus)
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"entrepreneur", "investor", "admin"} {
		role, err := ParseRole(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := ParseRole("superuser")
	assert.ErrorIs(t, err, errs.ErrInvalidRole)
}
