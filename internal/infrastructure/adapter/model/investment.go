package model

import (
	"time"
)

// Investment represents the database model for investments
type Investment struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	CampaignID    uint64    `gorm:"not null;index"`
	InvestorID    uint64    `gorm:"not null;index"`
	Amount        int64     `gorm:"not null"` // cents
	Status        string    `gorm:"not null;size:50;index"`
	TransactionID string    `gorm:"uniqueIndex;not null;size:255"`
	CreatedAt     time.Time `gorm:"not null;index"`
	UpdatedAt     time.Time `gorm:"not null"`

	// Define relationships
	Campaign Campaign `gorm:"foreignKey:CampaignID;references:ID"`
	Investor User     `gorm:"foreignKey:InvestorID;references:ID"`
}

// TableName specifies the table name for Investment
func (Investment) TableName() string {
	return "investments"
}
