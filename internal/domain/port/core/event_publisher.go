package core

import (
	"context"
	"time"
)

// InvestmentCompletedEvent is emitted after an investment transaction
// commits. Amount is a two decimal place string.
type InvestmentCompletedEvent struct {
	TransactionID  string    `json:"transactionId"`
	CampaignID     uint64    `json:"campaignId"`
	InvestorID     uint64    `json:"investorId"`
	Amount         string    `json:"amount"`
	CampaignStatus string    `json:"campaignStatus"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// EventPublisher publishes domain events to interested consumers.
// Publishing is best effort: a failed publish never rolls back the
// transaction that produced the event.
type EventPublisher interface {
	// PublishInvestmentCompleted announces a committed investment
	PublishInvestmentCompleted(ctx context.Context, event InvestmentCompletedEvent) error

	// Close releases the underlying connection
	Close() error
}
